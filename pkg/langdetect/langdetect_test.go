/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: langdetect_test.go
Description: Tests for the language detector: sample parsing, the tab
corpus format, training, prediction, packaging round-trips, and accuracy
evaluation.
*/

package langdetect_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kleascm/maylee-nlp/pkg/corpus"
	"github.com/kleascm/maylee-nlp/pkg/langdetect"
	"github.com/kleascm/maylee-nlp/pkg/model"
	"github.com/kleascm/maylee-nlp/pkg/train"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trainingSamples builds a small three-language corpus with distinctive
// character patterns, repeated enough for the perceptron to settle.
func trainingSamples() []langdetect.Sample {
	texts := map[string][]string{
		"eng": {
			"the quick brown fox jumps over the lazy dog",
			"she sells sea shells by the sea shore",
		},
		"deu": {
			"der schnelle braune fuchs springt über den faulen hund",
			"die würde des menschen ist unantastbar",
		},
		"fra": {
			"le renard brun rapide saute par dessus le chien paresseux",
			"la liberté guide nos pas vers la lumière",
		},
	}

	var samples []langdetect.Sample
	for i := 0; i < 10; i++ {
		for lang, docs := range texts {
			for _, text := range docs {
				samples = append(samples, langdetect.Sample{Lang: lang, Text: text})
			}
		}
	}
	return samples
}

func trainDetector(t *testing.T) *langdetect.Detector {
	t.Helper()
	trainer := langdetect.NewTrainer(train.Params{Iterations: 50, Cutoff: 1}, nil)
	p, err := trainer.Train(corpus.NewSliceStream(trainingSamples()...))
	require.NoError(t, err)
	detector, err := langdetect.Load(p)
	require.NoError(t, err)
	return detector
}

// TestParseSample tests the tab-separated line format
func TestParseSample(t *testing.T) {
	sample, err := langdetect.ParseSample("eng\tthe quick brown fox")
	require.NoError(t, err)
	assert.Equal(t, "eng", sample.Lang)
	assert.Equal(t, "the quick brown fox", sample.Text)

	// Surrounding whitespace is trimmed from both fields
	sample, err = langdetect.ParseSample("  deu \t  der fuchs  ")
	require.NoError(t, err)
	assert.Equal(t, "deu", sample.Lang)
	assert.Equal(t, "der fuchs", sample.Text)
}

// TestParseSampleErrors tests the malformed line cases
func TestParseSampleErrors(t *testing.T) {
	cases := map[string]string{
		"no tab":     "eng the quick brown fox",
		"empty lang": "\tthe quick brown fox",
		"empty text": "eng\t   ",
	}
	for name, line := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := langdetect.ParseSample(line)
			assert.Error(t, err)
		})
	}
}

// TestSampleStream tests line reading with blank lines skipped
func TestSampleStream(t *testing.T) {
	input := "eng\tthe fox\n\ndeu\tder fuchs\n\n\nfra\tle renard\n"
	stream := langdetect.NewSampleStreamReader(strings.NewReader(input))

	samples, err := corpus.Collect[langdetect.Sample](stream)
	require.NoError(t, err)
	require.Len(t, samples, 3)
	assert.Equal(t, langdetect.Sample{Lang: "eng", Text: "the fox"}, samples[0])
	assert.Equal(t, langdetect.Sample{Lang: "deu", Text: "der fuchs"}, samples[1])
	assert.Equal(t, langdetect.Sample{Lang: "fra", Text: "le renard"}, samples[2])
}

// TestSampleStreamBadLine tests parse error propagation
func TestSampleStreamBadLine(t *testing.T) {
	stream := langdetect.NewSampleStreamReader(strings.NewReader("not a sample\n"))
	_, err := stream.Read()
	assert.Error(t, err)
}

// TestDetectorPredict tests language prediction on the training distribution
func TestDetectorPredict(t *testing.T) {
	detector := trainDetector(t)

	lang, _ := detector.Predict("the quick brown fox jumps over the lazy dog")
	assert.Equal(t, "eng", lang)

	lang, _ = detector.Predict("der schnelle braune fuchs springt über den faulen hund")
	assert.Equal(t, "deu", lang)

	lang, _ = detector.Predict("la liberté guide nos pas vers la lumière")
	assert.Equal(t, "fra", lang)
}

// TestDetectorNormalization tests that case and whitespace do not change predictions
func TestDetectorNormalization(t *testing.T) {
	detector := trainDetector(t)

	plain, _ := detector.Predict("she sells sea shells by the sea shore")
	shouty, _ := detector.Predict("  SHE   SELLS\tSEA  SHELLS BY THE SEA SHORE ")
	assert.Equal(t, plain, shouty)
	assert.Equal(t, "eng", shouty)
}

// TestSupportedLanguages tests the outcome listing
func TestSupportedLanguages(t *testing.T) {
	detector := trainDetector(t)
	assert.Equal(t, []string{"deu", "eng", "fra"}, detector.SupportedLanguages())

	lang, scores := detector.Predict("the quick brown fox jumps over the lazy dog")
	require.Len(t, scores, 3)

	// The predicted language carries the highest score
	best := 0
	for i, score := range scores {
		if score > scores[best] {
			best = i
		}
	}
	assert.Equal(t, lang, detector.SupportedLanguages()[best])
}

// TestNewDetectorInvalidRange tests n-gram range validation
func TestNewDetectorInvalidRange(t *testing.T) {
	_, err := langdetect.NewDetector(&train.Model{}, 3, 1)
	assert.Error(t, err)
	_, err = langdetect.NewDetector(&train.Model{}, 0, 2)
	assert.Error(t, err)
}

// TestTrainerPackaging tests the manifest contents and the zip round-trip
func TestTrainerPackaging(t *testing.T) {
	trainer := langdetect.NewTrainer(train.Params{Iterations: 30, Cutoff: 1}, nil)
	require.NoError(t, trainer.SetNgramRange(2, 4))

	p, err := trainer.Train(corpus.NewSliceStream(trainingSamples()...))
	require.NoError(t, err)

	assert.Equal(t, langdetect.ModelType, p.Manifest.Type)
	assert.Equal(t, "mul", p.Manifest.Language)
	assert.Equal(t, []string{langdetect.EntryModel}, p.Names())
	assert.Equal(t, train.SerializerTypePerceptron, p.Manifest.Serializers[langdetect.EntryModel])
	assert.Equal(t, "2", p.Manifest.Properties["min_ngram"])
	assert.Equal(t, "4", p.Manifest.Properties["max_ngram"])

	var buf bytes.Buffer
	require.NoError(t, model.WritePackage(&buf, p))
	restored, err := model.ReadPackage(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	detector, err := langdetect.Load(restored)
	require.NoError(t, err)
	lang, _ := detector.Predict("der schnelle braune fuchs springt über den faulen hund")
	assert.Equal(t, "deu", lang)
}

// TestTrainerInvalidNgramRange tests the range setter
func TestTrainerInvalidNgramRange(t *testing.T) {
	trainer := langdetect.NewTrainer(train.DefaultParams(), nil)
	assert.Error(t, trainer.SetNgramRange(5, 2))
	assert.Error(t, trainer.SetNgramRange(0, 3))
}

// TestTrainerNoSamples tests the empty stream error
func TestTrainerNoSamples(t *testing.T) {
	trainer := langdetect.NewTrainer(train.DefaultParams(), nil)
	_, err := trainer.Train(corpus.NewSliceStream[langdetect.Sample]())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no training samples")
}

// TestLoadRejectsWrongPackageType tests the package type gate
func TestLoadRejectsWrongPackageType(t *testing.T) {
	p := model.NewPackage("namefind", "en")
	_, err := langdetect.Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "namefind")
}

// TestLoadBadNgramProperty tests corrupted manifest properties
func TestLoadBadNgramProperty(t *testing.T) {
	trainer := langdetect.NewTrainer(train.Params{Iterations: 5, Cutoff: 1}, nil)
	p, err := trainer.Train(corpus.NewSliceStream(trainingSamples()...))
	require.NoError(t, err)

	p.Manifest.Properties["min_ngram"] = "three"
	_, err = langdetect.Load(p)
	assert.Error(t, err)
}

// TestEvaluator tests accuracy accumulation and listener notification
func TestEvaluator(t *testing.T) {
	detector := trainDetector(t)

	var notified int
	var incorrect int
	listener := func(sample langdetect.Sample, predicted string, correct bool) {
		notified++
		if !correct {
			incorrect++
		}
	}

	evaluator := langdetect.NewEvaluator(detector, listener)
	samples := []langdetect.Sample{
		{Lang: "eng", Text: "the quick brown fox jumps over the lazy dog"},
		{Lang: "deu", Text: "die würde des menschen ist unantastbar"},
		// Deliberately mislabelled: prediction says fra, reference says eng
		{Lang: "eng", Text: "le renard brun rapide saute par dessus le chien paresseux"},
	}
	require.NoError(t, evaluator.Evaluate(corpus.NewSliceStream(samples...)))

	assert.Equal(t, 3, notified)
	assert.Equal(t, 1, incorrect)
	assert.Equal(t, int64(3), evaluator.Count())
	assert.InDelta(t, 2.0/3.0, evaluator.Accuracy(), 1e-9)

	report := evaluator.Report()
	assert.Equal(t, langdetect.ModelType, report.Task)
	assert.Equal(t, int64(3), report.Samples)
	assert.InDelta(t, 2.0/3.0, report.Scores["accuracy"], 1e-9)

	assert.Contains(t, evaluator.String(), "Number of documents: 3")
}
