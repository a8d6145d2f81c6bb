/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: doccat_test.go
Description: Tests for the document categorizer: sample parsing, training,
categorization, packaging round-trips, and accuracy evaluation.
*/

package doccat_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kleascm/maylee-nlp/pkg/corpus"
	"github.com/kleascm/maylee-nlp/pkg/doccat"
	"github.com/kleascm/maylee-nlp/pkg/model"
	"github.com/kleascm/maylee-nlp/pkg/train"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trainingSamples builds a small two-category corpus.
func trainingSamples() []doccat.Sample {
	docs := map[string][][]string{
		"sports": {
			{"the", "team", "won", "the", "match"},
			{"the", "striker", "scored", "a", "goal"},
			{"the", "coach", "praised", "the", "defence"},
		},
		"politics": {
			{"the", "senate", "passed", "the", "bill"},
			{"the", "minister", "announced", "a", "reform"},
			{"the", "parliament", "debated", "the", "budget"},
		},
	}

	var samples []doccat.Sample
	for i := 0; i < 10; i++ {
		for category, documents := range docs {
			for _, tokens := range documents {
				samples = append(samples, doccat.Sample{Category: category, Tokens: tokens})
			}
		}
	}
	return samples
}

func trainCategorizer(t *testing.T) *doccat.Categorizer {
	t.Helper()
	trainer := doccat.NewTrainer(train.Params{Iterations: 50, Cutoff: 1}, nil)
	p, err := trainer.Train("en", corpus.NewSliceStream(trainingSamples()...))
	require.NoError(t, err)
	categorizer, err := doccat.Load(p)
	require.NoError(t, err)
	return categorizer
}

// TestParseSample tests the whitespace line format
func TestParseSample(t *testing.T) {
	sample, err := doccat.ParseSample("sports the team won")
	require.NoError(t, err)
	assert.Equal(t, "sports", sample.Category)
	assert.Equal(t, []string{"the", "team", "won"}, sample.Tokens)
}

// TestParseSampleErrors tests lines without category or tokens
func TestParseSampleErrors(t *testing.T) {
	_, err := doccat.ParseSample("sports")
	assert.Error(t, err)
	_, err = doccat.ParseSample("   ")
	assert.Error(t, err)
}

// TestSampleStream tests line reading with blank lines skipped
func TestSampleStream(t *testing.T) {
	input := "sports the team won\n\npolitics the senate passed\n"
	stream := doccat.NewSampleStreamReader(strings.NewReader(input))

	samples, err := corpus.Collect[doccat.Sample](stream)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, "sports", samples[0].Category)
	assert.Equal(t, []string{"the", "senate", "passed"}, samples[1].Tokens)
}

// TestBestCategory tests categorization on the training distribution
func TestBestCategory(t *testing.T) {
	categorizer := trainCategorizer(t)

	category, _ := categorizer.BestCategory([]string{"the", "striker", "scored", "a", "goal"})
	assert.Equal(t, "sports", category)

	category, _ = categorizer.BestCategory([]string{"the", "senate", "passed", "the", "bill"})
	assert.Equal(t, "politics", category)

	// Casing does not change the features
	category, _ = categorizer.BestCategory([]string{"The", "STRIKER", "Scored", "A", "Goal"})
	assert.Equal(t, "sports", category)
}

// TestCategorize tests the full score map
func TestCategorize(t *testing.T) {
	categorizer := trainCategorizer(t)

	scores := categorizer.Categorize([]string{"the", "coach", "praised", "the", "defence"})
	require.Len(t, scores, 2)
	assert.Greater(t, scores["sports"], scores["politics"])

	assert.Equal(t, []string{"politics", "sports"}, categorizer.Categories())
}

// TestTrainerPackaging tests the manifest contents and the zip round-trip
func TestTrainerPackaging(t *testing.T) {
	trainer := doccat.NewTrainer(train.Params{Iterations: 30, Cutoff: 1}, nil)
	p, err := trainer.Train("en", corpus.NewSliceStream(trainingSamples()...))
	require.NoError(t, err)

	assert.Equal(t, doccat.ModelType, p.Manifest.Type)
	assert.Equal(t, "en", p.Manifest.Language)
	assert.Equal(t, []string{doccat.EntryModel}, p.Names())
	assert.Equal(t, train.SerializerTypePerceptron, p.Manifest.Serializers[doccat.EntryModel])

	var buf bytes.Buffer
	require.NoError(t, model.WritePackage(&buf, p))
	restored, err := model.ReadPackage(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	categorizer, err := doccat.Load(restored)
	require.NoError(t, err)
	category, _ := categorizer.BestCategory([]string{"the", "minister", "announced", "a", "reform"})
	assert.Equal(t, "politics", category)
}

// TestTrainerNoSamples tests the empty stream error
func TestTrainerNoSamples(t *testing.T) {
	trainer := doccat.NewTrainer(train.DefaultParams(), nil)
	_, err := trainer.Train("en", corpus.NewSliceStream[doccat.Sample]())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no training samples")
}

// TestLoadRejectsWrongPackageType tests the package type gate
func TestLoadRejectsWrongPackageType(t *testing.T) {
	p := model.NewPackage("langdetect", "mul")
	_, err := doccat.Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "langdetect")
}

// TestEvaluator tests accuracy accumulation
func TestEvaluator(t *testing.T) {
	categorizer := trainCategorizer(t)

	samples := []doccat.Sample{
		{Category: "sports", Tokens: []string{"the", "team", "won", "the", "match"}},
		{Category: "politics", Tokens: []string{"the", "parliament", "debated", "the", "budget"}},
		// Mislabelled on purpose
		{Category: "politics", Tokens: []string{"the", "striker", "scored", "a", "goal"}},
	}

	evaluator := doccat.NewEvaluator(categorizer)
	require.NoError(t, evaluator.Evaluate(corpus.NewSliceStream(samples...)))

	assert.Equal(t, int64(3), evaluator.Count())
	assert.InDelta(t, 2.0/3.0, evaluator.Accuracy(), 1e-9)

	report := evaluator.Report()
	assert.Equal(t, doccat.ModelType, report.Task)
	assert.InDelta(t, 2.0/3.0, report.Scores["accuracy"], 1e-9)
	assert.Contains(t, evaluator.String(), "Number of documents: 3")
}
