/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: aggregate.go
Description: Aggregated feature generator. Runs an ordered set of child
generators as a single generator, concatenating their features in document
order and broadcasting adaptive lifecycle calls to every child.
*/

package featuregen

import "errors"

// AggregatedFeatureGenerator composes child generators into one. Feature
// output is the ordered concatenation of each child's output; the order is
// the descriptor's document order and never changes after construction.
type AggregatedFeatureGenerator struct {
	generators []FeatureGenerator
}

// NewAggregatedFeatureGenerator creates an aggregate over the given
// generators, in the given order.
func NewAggregatedFeatureGenerator(generators ...FeatureGenerator) *AggregatedFeatureGenerator {
	owned := make([]FeatureGenerator, len(generators))
	copy(owned, generators)
	return &AggregatedFeatureGenerator{generators: owned}
}

// Generators returns the child generators in aggregation order.
func (a *AggregatedFeatureGenerator) Generators() []FeatureGenerator {
	out := make([]FeatureGenerator, len(a.generators))
	copy(out, a.generators)
	return out
}

// AppendFeatures invokes each child in order, concatenating their features.
func (a *AggregatedFeatureGenerator) AppendFeatures(features []string, tokens []string, index int, previousOutcomes []string) []string {
	for _, gen := range a.generators {
		features = gen.AppendFeatures(features, tokens, index, previousOutcomes)
	}
	return features
}

// UpdateAdaptiveData broadcasts the decoded sentence to every adaptive child
// in order.
func (a *AggregatedFeatureGenerator) UpdateAdaptiveData(tokens []string, outcomes []string) {
	for _, gen := range a.generators {
		if adaptive, ok := gen.(AdaptiveFeatureGenerator); ok {
			adaptive.UpdateAdaptiveData(tokens, outcomes)
		}
	}
}

// ClearAdaptiveData resets every adaptive child. A failing child never
// prevents delivery to the rest; failures are collected and reported
// joined.
func (a *AggregatedFeatureGenerator) ClearAdaptiveData() error {
	var errs []error
	for _, gen := range a.generators {
		if adaptive, ok := gen.(AdaptiveFeatureGenerator); ok {
			if err := adaptive.ClearAdaptiveData(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
