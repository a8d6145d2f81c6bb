/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: window.go
Description: Window feature generator. Replays a nested generator over a
window of positions around the current token, tagging each neighbor's
features with its offset so the model can tell context apart from the
position itself.
*/

package featuregen

import "fmt"

// WindowFeatureGenerator wraps one nested generator and emits its features
// for the current position, prevLength positions back, and nextLength
// positions ahead. Neighbor features are prefixed with their offset
// ("p1w=..." one back, "n2w=..." two ahead).
type WindowFeatureGenerator struct {
	inner      FeatureGenerator
	prevLength int
	nextLength int
	scratch    []string
}

// NewWindowFeatureGenerator creates a window around the nested generator.
// Negative lengths are clamped to zero.
func NewWindowFeatureGenerator(inner FeatureGenerator, prevLength, nextLength int) *WindowFeatureGenerator {
	if prevLength < 0 {
		prevLength = 0
	}
	if nextLength < 0 {
		nextLength = 0
	}
	return &WindowFeatureGenerator{
		inner:      inner,
		prevLength: prevLength,
		nextLength: nextLength,
	}
}

// AppendFeatures emits the nested generator's features for the window.
func (g *WindowFeatureGenerator) AppendFeatures(features []string, tokens []string, index int, previousOutcomes []string) []string {
	// Current position, untagged.
	features = g.inner.AppendFeatures(features, tokens, index, previousOutcomes)

	for dist := 1; dist <= g.prevLength && index-dist >= 0; dist++ {
		g.scratch = g.inner.AppendFeatures(g.scratch[:0], tokens, index-dist, previousOutcomes)
		for _, f := range g.scratch {
			features = append(features, fmt.Sprintf("p%d%s", dist, f))
		}
	}
	for dist := 1; dist <= g.nextLength && index+dist < len(tokens); dist++ {
		g.scratch = g.inner.AppendFeatures(g.scratch[:0], tokens, index+dist, previousOutcomes)
		for _, f := range g.scratch {
			features = append(features, fmt.Sprintf("n%d%s", dist, f))
		}
	}
	return features
}

// UpdateAdaptiveData forwards to the nested generator when it is adaptive.
func (g *WindowFeatureGenerator) UpdateAdaptiveData(tokens []string, outcomes []string) {
	if adaptive, ok := g.inner.(AdaptiveFeatureGenerator); ok {
		adaptive.UpdateAdaptiveData(tokens, outcomes)
	}
}

// ClearAdaptiveData forwards to the nested generator when it is adaptive.
func (g *WindowFeatureGenerator) ClearAdaptiveData() error {
	if adaptive, ok := g.inner.(AdaptiveFeatureGenerator); ok {
		return adaptive.ClearAdaptiveData()
	}
	return nil
}
