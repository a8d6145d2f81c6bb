/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: prevmap.go
Description: Adaptive feature generator mapping tokens to the outcomes they
were previously assigned within the current document. The classic adaptive
signal for name finding: once a token has been tagged, later mentions in the
same document see that decision as a feature.
*/

package featuregen

// PreviousMapFeatureGenerator remembers, per document, the last outcome
// assigned to each token and emits it as a feature on later mentions.
// It is not safe for concurrent use: one instance belongs to one decoding
// pipeline.
type PreviousMapFeatureGenerator struct {
	previous map[string]string
}

// NewPreviousMapFeatureGenerator creates an empty previous-outcome map.
func NewPreviousMapFeatureGenerator() *PreviousMapFeatureGenerator {
	return &PreviousMapFeatureGenerator{previous: make(map[string]string)}
}

// AppendFeatures emits "pd=<outcome>" when the token has been seen before
// in the current document.
func (g *PreviousMapFeatureGenerator) AppendFeatures(features []string, tokens []string, index int, previousOutcomes []string) []string {
	if outcome, ok := g.previous[tokens[index]]; ok {
		features = append(features, "pd="+outcome)
	}
	return features
}

// UpdateAdaptiveData records the outcome assigned to each token of the
// decoded sentence. Later sentences in the same document observe them.
func (g *PreviousMapFeatureGenerator) UpdateAdaptiveData(tokens []string, outcomes []string) {
	for i := 0; i < len(tokens) && i < len(outcomes); i++ {
		g.previous[tokens[i]] = outcomes[i]
	}
}

// ClearAdaptiveData forgets everything, typically at a document boundary.
func (g *PreviousMapFeatureGenerator) ClearAdaptiveData() error {
	g.previous = make(map[string]string)
	return nil
}
