/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: trainer.go
Description: Language detector training and packaging. Turns each sample
into one training event of character n-gram features, fits the perceptron,
and records the n-gram range in the package so loading rebuilds the same
feature space.
*/

package langdetect

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/kleascm/maylee-nlp/pkg/corpus"
	"github.com/kleascm/maylee-nlp/pkg/model"
	"github.com/kleascm/maylee-nlp/pkg/train"
)

// ModelType is the package type of trained language detector models.
const ModelType = "langdetect"

// EntryModel is the package entry holding the perceptron weights.
const EntryModel = "langdetector.model"

// Manifest property keys for the n-gram range.
const (
	propertyMinNgram = "min_ngram"
	propertyMaxNgram = "max_ngram"
)

// Trainer fits and packages language detector models.
type Trainer struct {
	params    train.Params
	minLength int
	maxLength int
	logger    *logrus.Logger
}

// NewTrainer creates a trainer with the default n-gram range. A nil logger
// trains silently.
func NewTrainer(params train.Params, logger *logrus.Logger) *Trainer {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.PanicLevel)
	}
	return &Trainer{
		params:    params,
		minLength: DefaultMinNgram,
		maxLength: DefaultMaxNgram,
		logger:    logger,
	}
}

// SetNgramRange overrides the character n-gram lengths used as features.
func (t *Trainer) SetNgramRange(minLength, maxLength int) error {
	if minLength <= 0 || maxLength <= 0 || minLength > maxLength {
		return fmt.Errorf("invalid ngram range %d..%d", minLength, maxLength)
	}
	t.minLength = minLength
	t.maxLength = maxLength
	return nil
}

// Train fits a detector on language-labelled documents and returns the
// model package. The package language is "mul" since the model spans
// multiple languages.
func (t *Trainer) Train(samples corpus.Stream[Sample]) (*model.Package, error) {
	var events []train.Event
	documents := 0
	for {
		sample, err := samples.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read training samples: %w", err)
		}
		features := contextNgrams(sample.Text, t.minLength, t.maxLength)
		events = append(events, train.NewEvent(sample.Lang, features))
		documents++
	}
	if documents == 0 {
		return nil, fmt.Errorf("no training samples")
	}

	t.logger.WithFields(logrus.Fields{
		"documents": documents,
		"min_ngram": t.minLength,
		"max_ngram": t.maxLength,
	}).Info("Generated language detector training events")

	perceptron, err := train.NewTrainer(t.params, t.logger).Train(corpus.NewSliceStream(events...))
	if err != nil {
		return nil, err
	}

	p := model.NewPackage(ModelType, "mul")
	p.Manifest.Properties["iterations"] = strconv.Itoa(t.params.Iterations)
	p.Manifest.Properties["cutoff"] = strconv.Itoa(t.params.Cutoff)
	p.Manifest.Properties[propertyMinNgram] = strconv.Itoa(t.minLength)
	p.Manifest.Properties[propertyMaxNgram] = strconv.Itoa(t.maxLength)
	p.Add(EntryModel, train.SerializerTypePerceptron, perceptron)
	return p, nil
}

// Load rebuilds a detector from a trained model package.
func Load(p *model.Package) (*Detector, error) {
	if p.Manifest.Type != ModelType {
		return nil, fmt.Errorf("package is a %q model, want %q", p.Manifest.Type, ModelType)
	}

	rawModel, ok := p.Artifact(EntryModel)
	if !ok {
		return nil, fmt.Errorf("model package has no %s entry", EntryModel)
	}
	perceptron, ok := rawModel.(*train.Model)
	if !ok {
		return nil, fmt.Errorf("model entry is %T, want *train.Model", rawModel)
	}

	minLength, err := ngramProperty(p, propertyMinNgram, DefaultMinNgram)
	if err != nil {
		return nil, err
	}
	maxLength, err := ngramProperty(p, propertyMaxNgram, DefaultMaxNgram)
	if err != nil {
		return nil, err
	}
	return NewDetector(perceptron, minLength, maxLength)
}

func ngramProperty(p *model.Package, key string, fallback int) (int, error) {
	raw, ok := p.Manifest.Properties[key]
	if !ok {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s property %q: %w", key, raw, err)
	}
	return value, nil
}
