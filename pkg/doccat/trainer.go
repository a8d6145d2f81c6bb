/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: trainer.go
Description: Document categorizer training and packaging. Turns each sample
into one training event of bag-of-words features and fits the perceptron.
*/

package doccat

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/kleascm/maylee-nlp/pkg/corpus"
	"github.com/kleascm/maylee-nlp/pkg/model"
	"github.com/kleascm/maylee-nlp/pkg/train"
)

// ModelType is the package type of trained categorizer models.
const ModelType = "doccat"

// EntryModel is the package entry holding the perceptron weights.
const EntryModel = "doccat.model"

// Trainer fits and packages document categorizer models.
type Trainer struct {
	params train.Params
	logger *logrus.Logger
}

// NewTrainer creates a trainer. A nil logger trains silently.
func NewTrainer(params train.Params, logger *logrus.Logger) *Trainer {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.PanicLevel)
	}
	return &Trainer{params: params, logger: logger}
}

// Train fits a categorizer on labelled documents and returns the model
// package.
func (t *Trainer) Train(language string, samples corpus.Stream[Sample]) (*model.Package, error) {
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
		events = append(events, train.NewEvent(sample.Category, bagOfWords(sample.Tokens)))
		documents++
	}
	if documents == 0 {
		return nil, fmt.Errorf("no training samples")
	}

	t.logger.WithFields(logrus.Fields{
		"documents": documents,
	}).Info("Generated categorizer training events")

	perceptron, err := train.NewTrainer(t.params, t.logger).Train(corpus.NewSliceStream(events...))
	if err != nil {
		return nil, err
	}

	p := model.NewPackage(ModelType, language)
	p.Manifest.Properties["iterations"] = strconv.Itoa(t.params.Iterations)
	p.Manifest.Properties["cutoff"] = strconv.Itoa(t.params.Cutoff)
	p.Add(EntryModel, train.SerializerTypePerceptron, perceptron)
	return p, nil
}

// Load rebuilds a categorizer from a trained model package.
func Load(p *model.Package) (*Categorizer, error) {
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
	return NewCategorizer(perceptron), nil
}
