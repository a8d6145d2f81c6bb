/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: perceptron.go
Description: Averaged perceptron classifier for Maylee NLP. Trains a linear
model over sparse string features with feature cutoff and iteration control,
and evaluates contexts to per-outcome scores for the sequence and document
classifiers.
*/

package train

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/kleascm/maylee-nlp/pkg/corpus"
)

// Model is a trained linear classifier: one weight per feature and outcome.
type Model struct {
	Outcomes []string             `json:"outcomes"`
	Weights  map[string][]float64 `json:"weights"`

	outcomeIndex map[string]int
}

// indexOutcomes builds the outcome lookup. Called after construction and
// after deserialization.
func (m *Model) indexOutcomes() {
	m.outcomeIndex = make(map[string]int, len(m.Outcomes))
	for i, outcome := range m.Outcomes {
		m.outcomeIndex[outcome] = i
	}
}

// OutcomeIndex returns the index of an outcome, -1 when unknown.
func (m *Model) OutcomeIndex(outcome string) int {
	if m.outcomeIndex == nil {
		m.indexOutcomes()
	}
	if i, ok := m.outcomeIndex[outcome]; ok {
		return i
	}
	return -1
}

// Eval scores a feature context against every outcome. Unknown features
// contribute nothing.
func (m *Model) Eval(features []string) []float64 {
	scores := make([]float64, len(m.Outcomes))
	for _, feature := range features {
		weights, ok := m.Weights[feature]
		if !ok {
			continue
		}
		for i, w := range weights {
			scores[i] += w
		}
	}
	return scores
}

// BestOutcome returns the highest scoring outcome for a context. Ties keep
// the earlier outcome, which makes decoding deterministic.
func (m *Model) BestOutcome(features []string) (string, float64) {
	scores := m.Eval(features)
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	if len(m.Outcomes) == 0 {
		return "", 0
	}
	return m.Outcomes[best], scores[best]
}

// Params controls training.
type Params struct {
	Iterations int // Perceptron passes over the data
	Cutoff     int // Minimum feature frequency; rarer features are dropped
}

// DefaultParams returns the conventional training configuration.
func DefaultParams() Params {
	return Params{Iterations: 100, Cutoff: 5}
}

// Trainer fits models with the averaged perceptron update.
type Trainer struct {
	params Params
	logger *logrus.Logger
}

// NewTrainer creates a trainer. A nil logger trains silently.
func NewTrainer(params Params, logger *logrus.Logger) *Trainer {
	if params.Iterations <= 0 {
		params.Iterations = DefaultParams().Iterations
	}
	if params.Cutoff < 0 {
		params.Cutoff = 0
	}
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.PanicLevel)
	}
	return &Trainer{params: params, logger: logger}
}

// Train fits a model on the event stream. Features occurring fewer than
// cutoff times are dropped before the first pass; the returned weights are
// the running average over every update step, which is what makes the
// perceptron stable enough to use.
func (t *Trainer) Train(events corpus.Stream[Event]) (*Model, error) {
	data, err := corpus.Collect[Event](events)
	if err != nil {
		return nil, fmt.Errorf("failed to read training events: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("no training events")
	}

	// Count feature frequencies and collect outcomes
	frequency := make(map[string]int)
	outcomeSet := make(map[string]struct{})
	for _, event := range data {
		outcomeSet[event.Outcome] = struct{}{}
		for _, feature := range event.Features {
			frequency[feature]++
		}
	}

	outcomes := make([]string, 0, len(outcomeSet))
	for outcome := range outcomeSet {
		outcomes = append(outcomes, outcome)
	}
	sort.Strings(outcomes)

	kept := 0
	for _, count := range frequency {
		if count >= t.params.Cutoff {
			kept++
		}
	}

	t.logger.WithFields(logrus.Fields{
		"events":   len(data),
		"outcomes": len(outcomes),
		"features": len(frequency),
		"kept":     kept,
		"cutoff":   t.params.Cutoff,
	}).Info("Training perceptron model")

	model := &Model{
		Outcomes: outcomes,
		Weights:  make(map[string][]float64, kept),
	}
	model.indexOutcomes()

	// Averaged perceptron: weights plus an update-time-weighted shadow, so
	// the average over all steps falls out at the end without storing every
	// intermediate weight vector.
	shadow := make(map[string][]float64, kept)
	step := 1

	touch := func(feature string) ([]float64, []float64, bool) {
		weights, ok := model.Weights[feature]
		if !ok {
			if frequency[feature] < t.params.Cutoff {
				return nil, nil, false
			}
			weights = make([]float64, len(outcomes))
			model.Weights[feature] = weights
			shadow[feature] = make([]float64, len(outcomes))
		}
		return weights, shadow[feature], true
	}

	for iteration := 1; iteration <= t.params.Iterations; iteration++ {
		mistakes := 0
		for _, event := range data {
			predicted, _ := model.BestOutcome(event.Features)
			if predicted == event.Outcome {
				step++
				continue
			}

			mistakes++
			actual := model.OutcomeIndex(event.Outcome)
			wrong := model.OutcomeIndex(predicted)
			for _, feature := range event.Features {
				weights, shadowWeights, ok := touch(feature)
				if !ok {
					continue
				}
				weights[actual]++
				weights[wrong]--
				shadowWeights[actual] += float64(step)
				shadowWeights[wrong] -= float64(step)
			}
			step++
		}

		accuracy := 1 - float64(mistakes)/float64(len(data))
		if iteration%10 == 0 || mistakes == 0 {
			t.logger.WithFields(logrus.Fields{
				"iteration": iteration,
				"accuracy":  fmt.Sprintf("%.4f", accuracy),
			}).Debug("Training pass complete")
		}
		if mistakes == 0 {
			t.logger.Infof("Converged after %d iterations", iteration)
			break
		}
	}

	// Fold the shadow into the final averaged weights
	total := float64(step)
	for feature, weights := range model.Weights {
		shadowWeights := shadow[feature]
		for i := range weights {
			weights[i] -= shadowWeights[i] / total
		}
	}

	return model, nil
}
