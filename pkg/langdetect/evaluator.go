/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: evaluator.go
Description: Language detector evaluation. Predicts each reference sample,
accumulates accuracy, and notifies listeners with the outcome of every
document.
*/

package langdetect

import (
	"fmt"
	"io"

	"github.com/kleascm/maylee-nlp/pkg/corpus"
	"github.com/kleascm/maylee-nlp/pkg/eval"
)

// Listener is notified after each evaluated sample.
type Listener func(sample Sample, predicted string, correct bool)

// Evaluator measures detector accuracy over reference samples.
type Evaluator struct {
	detector  *Detector
	accuracy  eval.Mean
	listeners []Listener
}

// NewEvaluator creates an evaluator over a detector.
func NewEvaluator(detector *Detector, listeners ...Listener) *Evaluator {
	return &Evaluator{detector: detector, listeners: listeners}
}

// Evaluate predicts every sample and accumulates accuracy.
func (e *Evaluator) Evaluate(samples corpus.Stream[Sample]) error {
	for {
		sample, err := samples.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read evaluation samples: %w", err)
		}

		predicted, _ := e.detector.Predict(sample.Text)
		correct := predicted == sample.Lang
		if correct {
			e.accuracy.Add(1)
		} else {
			e.accuracy.Add(0)
		}
		for _, listener := range e.listeners {
			listener(sample, predicted, correct)
		}
	}
}

// Accuracy returns correctly detected documents over total documents.
func (e *Evaluator) Accuracy() float64 {
	return e.accuracy.Value()
}

// Count returns the number of evaluated documents.
func (e *Evaluator) Count() int64 {
	return e.accuracy.Count()
}

// Report summarizes the evaluation as a writable report document.
func (e *Evaluator) Report() *eval.EvaluationReport {
	report := eval.NewEvaluationReport(ModelType)
	report.Samples = e.accuracy.Count()
	report.Scores["accuracy"] = e.accuracy.Value()
	return report
}

// String renders the accuracy and document count.
func (e *Evaluator) String() string {
	return fmt.Sprintf("Accuracy: %f\nNumber of documents: %d", e.accuracy.Value(), e.accuracy.Count())
}
