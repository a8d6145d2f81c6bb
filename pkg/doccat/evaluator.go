/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: evaluator.go
Description: Document categorizer evaluation. Categorizes each reference
sample and accumulates accuracy.
*/

package doccat

import (
	"fmt"
	"io"

	"github.com/kleascm/maylee-nlp/pkg/corpus"
	"github.com/kleascm/maylee-nlp/pkg/eval"
)

// Evaluator measures categorizer accuracy over reference samples.
type Evaluator struct {
	categorizer *Categorizer
	accuracy    eval.Mean
}

// NewEvaluator creates an evaluator over a categorizer.
func NewEvaluator(categorizer *Categorizer) *Evaluator {
	return &Evaluator{categorizer: categorizer}
}

// Evaluate categorizes every sample and accumulates accuracy.
func (e *Evaluator) Evaluate(samples corpus.Stream[Sample]) error {
	for {
		sample, err := samples.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read evaluation samples: %w", err)
		}

		predicted, _ := e.categorizer.BestCategory(sample.Tokens)
		if predicted == sample.Category {
			e.accuracy.Add(1)
		} else {
			e.accuracy.Add(0)
		}
	}
}

// Accuracy returns correctly categorized documents over total documents.
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
