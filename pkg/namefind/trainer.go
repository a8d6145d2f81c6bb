/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: trainer.go
Description: Name finder training and packaging. Generates per-token events
through the descriptor-built feature generator, fits the perceptron, and
packages the descriptor, the weights, and every resource the descriptor's
serializer mappings declare into one model file.
*/

package namefind

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/kleascm/maylee-nlp/pkg/corpus"
	"github.com/kleascm/maylee-nlp/pkg/featuregen"
	"github.com/kleascm/maylee-nlp/pkg/model"
	"github.com/kleascm/maylee-nlp/pkg/train"
)

// ModelType is the package type of trained name finder models.
const ModelType = "namefind"

// Package entry names.
const (
	EntryDescriptor = "descriptor.xml"
	EntryModel      = "namefinder.model"
)

// Trainer fits and packages name finder models.
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

// Train fits a name finder on annotated samples and returns the complete
// model package: descriptor, perceptron weights, and the resources the
// descriptor declares serializers for. Resources the descriptor needs but
// the caller did not supply fail the run before any training happens.
func (t *Trainer) Train(language string, samples corpus.Stream[NameSample], descriptor []byte, resources map[string]interface{}) (*model.Package, error) {
	generator, err := featuregen.BuildBytes(descriptor, featuregen.MapResourceProvider(resources))
	if err != nil {
		return nil, fmt.Errorf("failed to build feature generator: %w", err)
	}

	events, err := t.generateEvents(samples, generator)
	if err != nil {
		return nil, err
	}

	perceptron, err := train.NewTrainer(t.params, t.logger).Train(corpus.NewSliceStream(events...))
	if err != nil {
		return nil, err
	}

	mappings, err := featuregen.ExtractSerializerMappingsBytes(descriptor)
	if err != nil {
		return nil, fmt.Errorf("failed to discover resource serializers: %w", err)
	}

	p := model.NewPackage(ModelType, language)
	p.Manifest.Properties["iterations"] = strconv.Itoa(t.params.Iterations)
	p.Manifest.Properties["cutoff"] = strconv.Itoa(t.params.Cutoff)
	p.Add(EntryDescriptor, model.SerializerTypeRaw, descriptor)
	p.Add(EntryModel, train.SerializerTypePerceptron, perceptron)

	for key, serializer := range mappings {
		artifact, ok := resources[key]
		if !ok {
			return nil, fmt.Errorf("%w: descriptor declares resource %q", featuregen.ErrResourceMissing, key)
		}
		typeName, ok := model.TypeNameFor(serializer)
		if !ok {
			return nil, fmt.Errorf("no registered serializer type for resource %q (%T)", key, serializer)
		}
		p.Add(key, typeName, artifact)
	}

	return p, nil
}

// generateEvents runs every sample through the feature generator with gold
// outcomes, honoring document boundaries in the adaptive data.
func (t *Trainer) generateEvents(samples corpus.Stream[NameSample], generator featuregen.FeatureGenerator) ([]train.Event, error) {
	adaptive, _ := generator.(featuregen.AdaptiveFeatureGenerator)

	var events []train.Event
	sentences := 0
	for {
		sample, err := samples.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read training samples: %w", err)
		}

		if sample.ClearAdaptive && adaptive != nil {
			if err := adaptive.ClearAdaptiveData(); err != nil {
				return nil, fmt.Errorf("failed to clear adaptive data: %w", err)
			}
		}

		outcomes := outcomesForSample(sample)
		for i := range sample.Tokens {
			features := generator.AppendFeatures(nil, sample.Tokens, i, outcomes[:i])
			events = append(events, train.NewEvent(outcomes[i], features))
		}
		if adaptive != nil {
			adaptive.UpdateAdaptiveData(sample.Tokens, outcomes)
		}
		sentences++
	}

	if sentences == 0 {
		return nil, fmt.Errorf("no training samples")
	}

	t.logger.WithFields(logrus.Fields{
		"sentences": sentences,
		"events":    len(events),
	}).Info("Generated name finder training events")
	return events, nil
}

// Load rebuilds a finder from a trained model package.
func Load(p *model.Package) (*Finder, error) {
	if p.Manifest.Type != ModelType {
		return nil, fmt.Errorf("package is a %q model, want %q", p.Manifest.Type, ModelType)
	}

	rawDescriptor, ok := p.Artifact(EntryDescriptor)
	if !ok {
		return nil, fmt.Errorf("model package has no %s entry", EntryDescriptor)
	}
	descriptor, ok := rawDescriptor.([]byte)
	if !ok {
		return nil, fmt.Errorf("descriptor entry is %T, want []byte", rawDescriptor)
	}

	rawModel, ok := p.Artifact(EntryModel)
	if !ok {
		return nil, fmt.Errorf("model package has no %s entry", EntryModel)
	}
	perceptron, ok := rawModel.(*train.Model)
	if !ok {
		return nil, fmt.Errorf("model entry is %T, want *train.Model", rawModel)
	}

	// Every other entry is a feature generator resource
	resources := make(map[string]interface{})
	for _, name := range p.Names() {
		if name == EntryDescriptor || name == EntryModel {
			continue
		}
		artifact, _ := p.Artifact(name)
		resources[name] = artifact
	}

	generator, err := featuregen.BuildBytes(descriptor, featuregen.MapResourceProvider(resources))
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild feature generator: %w", err)
	}
	return NewFinder(perceptron, generator), nil
}
