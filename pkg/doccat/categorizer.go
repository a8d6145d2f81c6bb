/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: categorizer.go
Description: Statistical document categorizer. Scores a tokenized document
against a trained perceptron using bag-of-words features, one outcome per
category.
*/

package doccat

import (
	"strings"

	"github.com/kleascm/maylee-nlp/pkg/train"
)

// Categorizer assigns categories to tokenized documents.
type Categorizer struct {
	model *train.Model
}

// NewCategorizer creates a categorizer over a trained model.
func NewCategorizer(model *train.Model) *Categorizer {
	return &Categorizer{model: model}
}

// Categorize scores every category for the document.
func (c *Categorizer) Categorize(tokens []string) map[string]float64 {
	scores := c.model.Eval(bagOfWords(tokens))
	result := make(map[string]float64, len(scores))
	for i, category := range c.model.Outcomes {
		result[category] = scores[i]
	}
	return result
}

// BestCategory returns the highest-scoring category and its score.
func (c *Categorizer) BestCategory(tokens []string) (string, float64) {
	return c.model.BestOutcome(bagOfWords(tokens))
}

// Categories returns the categories the model was trained on.
func (c *Categorizer) Categories() []string {
	categories := make([]string, len(c.model.Outcomes))
	copy(categories, c.model.Outcomes)
	return categories
}

// bagOfWords emits one "bow=" feature per token, case-folded so surface
// casing does not fragment the feature space.
func bagOfWords(tokens []string) []string {
	features := make([]string, 0, len(tokens))
	for _, token := range tokens {
		features = append(features, "bow="+strings.ToLower(token))
	}
	return features
}
