/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: finder.go
Description: Name finder decoding. Tags each token with a start/cont/other
outcome from the trained model, constrained so continuations only follow a
name of the same type, converts the outcome sequence to spans, and feeds
decoded sentences back into the adaptive feature generators.
*/

package namefind

import (
	"strings"

	"github.com/kleascm/maylee-nlp/pkg/featuregen"
	"github.com/kleascm/maylee-nlp/pkg/train"
)

const (
	otherOutcome = "other"
	startSuffix  = "-start"
	contSuffix   = "-cont"
)

// startOutcome returns the outcome tagging the first token of a name.
func startOutcome(nameType string) string {
	return nameType + startSuffix
}

// contOutcome returns the outcome tagging a continuation token of a name.
func contOutcome(nameType string) string {
	return nameType + contSuffix
}

// outcomesForSample expands a sample's spans into the per-token gold
// outcome sequence the model trains on.
func outcomesForSample(sample NameSample) []string {
	outcomes := make([]string, len(sample.Tokens))
	for i := range outcomes {
		outcomes[i] = otherOutcome
	}
	for _, span := range sample.Names {
		outcomes[span.Start] = startOutcome(span.Type)
		for i := span.Start + 1; i < span.End; i++ {
			outcomes[i] = contOutcome(span.Type)
		}
	}
	return outcomes
}

// Finder tags token sequences with name spans.
type Finder struct {
	model     *train.Model
	generator featuregen.FeatureGenerator

	features []string
}

// NewFinder creates a finder over a trained model and the feature generator
// its descriptor built.
func NewFinder(m *train.Model, generator featuregen.FeatureGenerator) *Finder {
	return &Finder{model: m, generator: generator}
}

// Find decodes the name spans of one sentence and updates the adaptive
// feature data with the decoded outcomes. Call ClearAdaptiveData between
// documents.
func (f *Finder) Find(tokens []string) []Span {
	outcomes := make([]string, 0, len(tokens))
	for i := range tokens {
		f.features = f.generator.AppendFeatures(f.features[:0], tokens, i, outcomes)
		outcomes = append(outcomes, f.bestValidOutcome(f.features, outcomes))
	}

	if adaptive, ok := f.generator.(featuregen.AdaptiveFeatureGenerator); ok {
		adaptive.UpdateAdaptiveData(tokens, outcomes)
	}
	return spansFromOutcomes(outcomes)
}

// ClearAdaptiveData resets the adaptive feature generators at a document
// boundary.
func (f *Finder) ClearAdaptiveData() error {
	if adaptive, ok := f.generator.(featuregen.AdaptiveFeatureGenerator); ok {
		return adaptive.ClearAdaptiveData()
	}
	return nil
}

// bestValidOutcome picks the highest scoring outcome whose transition from
// the previous outcome is legal. Scoring every outcome and filtering keeps
// the decode greedy but never emits a dangling continuation.
func (f *Finder) bestValidOutcome(features, previous []string) string {
	scores := f.model.Eval(features)
	best := -1
	for i, outcome := range f.model.Outcomes {
		if !validOutcome(outcome, previous) {
			continue
		}
		if best < 0 || scores[i] > scores[best] {
			best = i
		}
	}
	if best < 0 {
		return otherOutcome
	}
	return f.model.Outcomes[best]
}

// validOutcome reports whether outcome may follow the sequence decoded so
// far: continuations require the previous token to open or continue a name
// of the same type, everything else is always legal.
func validOutcome(outcome string, previous []string) bool {
	if !strings.HasSuffix(outcome, contSuffix) {
		return true
	}
	if len(previous) == 0 {
		return false
	}
	nameType := strings.TrimSuffix(outcome, contSuffix)
	last := previous[len(previous)-1]
	return last == startOutcome(nameType) || last == contOutcome(nameType)
}

// spansFromOutcomes folds a decoded outcome sequence back into spans.
func spansFromOutcomes(outcomes []string) []Span {
	var spans []Span
	start := -1
	nameType := ""

	flush := func(end int) {
		if start >= 0 {
			spans = append(spans, NewSpan(start, end, nameType))
			start = -1
		}
	}

	for i, outcome := range outcomes {
		switch {
		case strings.HasSuffix(outcome, startSuffix):
			flush(i)
			start = i
			nameType = strings.TrimSuffix(outcome, startSuffix)
		case strings.HasSuffix(outcome, contSuffix):
			// The validator guarantees this continues the open span.
		default:
			flush(i)
		}
	}
	flush(len(outcomes))
	return spans
}
