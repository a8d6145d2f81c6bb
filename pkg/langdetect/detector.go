/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: detector.go
Description: Statistical language detector. Normalizes the document text,
extracts character n-grams, and scores them against a trained perceptron,
one outcome per supported language.
*/

package langdetect

import (
	"fmt"
	"strings"

	"github.com/kleascm/maylee-nlp/pkg/train"
)

// Default character n-gram lengths used for detection features.
const (
	DefaultMinNgram = 1
	DefaultMaxNgram = 3
)

// Detector predicts the language of a document from its character n-grams.
type Detector struct {
	model     *train.Model
	minLength int
	maxLength int
}

// NewDetector creates a detector over a trained model and an n-gram range.
func NewDetector(model *train.Model, minLength, maxLength int) (*Detector, error) {
	if minLength <= 0 || maxLength <= 0 || minLength > maxLength {
		return nil, fmt.Errorf("invalid ngram range %d..%d", minLength, maxLength)
	}
	return &Detector{model: model, minLength: minLength, maxLength: maxLength}, nil
}

// Predict returns the most likely language of text together with the score
// of every supported language, indexed like SupportedLanguages.
func (d *Detector) Predict(text string) (string, []float64) {
	features := contextNgrams(text, d.minLength, d.maxLength)
	scores := d.model.Eval(features)

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	if len(d.model.Outcomes) == 0 {
		return "", scores
	}
	return d.model.Outcomes[best], scores
}

// SupportedLanguages returns the languages the model was trained on.
func (d *Detector) SupportedLanguages() []string {
	languages := make([]string, len(d.model.Outcomes))
	copy(languages, d.model.Outcomes)
	return languages
}

// contextNgrams normalizes text and extracts its character n-grams. Runs of
// whitespace collapse to a single space so formatting does not leak into
// the features.
func contextNgrams(text string, minLength, maxLength int) []string {
	normalized := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	runes := []rune(normalized)

	var features []string
	for n := minLength; n <= maxLength && n <= len(runes); n++ {
		for i := 0; i+n <= len(runes); i++ {
			features = append(features, "ng="+string(runes[i:i+n]))
		}
	}
	return features
}
