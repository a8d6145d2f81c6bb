/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: evaluator.go
Description: Name finder evaluation. Runs a finder over annotated samples,
scores predicted spans against the gold spans, and reports precision,
recall and F1.
*/

package namefind

import (
	"fmt"
	"io"

	"github.com/kleascm/maylee-nlp/pkg/corpus"
	"github.com/kleascm/maylee-nlp/pkg/eval"
)

// Listener observes each evaluated sample: the spans the finder predicted
// and whether they exactly matched the reference annotation.
type Listener func(sample NameSample, predicted []Span, correct bool)

// Evaluator scores a finder against annotated samples.
type Evaluator struct {
	finder    *Finder
	measure   eval.FMeasure[Span]
	samples   int64
	listeners []Listener
}

// NewEvaluator creates an evaluator over a finder.
func NewEvaluator(finder *Finder, listeners ...Listener) *Evaluator {
	return &Evaluator{finder: finder, listeners: listeners}
}

// Evaluate decodes every sample and accumulates span-level scores. Document
// boundaries clear the finder's adaptive data, same as during decoding.
func (e *Evaluator) Evaluate(samples corpus.Stream[NameSample]) error {
	for {
		sample, err := samples.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read evaluation samples: %w", err)
		}

		if sample.ClearAdaptive {
			if err := e.finder.ClearAdaptiveData(); err != nil {
				return fmt.Errorf("failed to clear adaptive data: %w", err)
			}
		}

		predicted := e.finder.Find(sample.Tokens)
		e.measure.UpdateScores(sample.Names, predicted)
		e.samples++

		for _, listener := range e.listeners {
			listener(sample, predicted, spanSetsEqual(sample.Names, predicted))
		}
	}
}

// spanSetsEqual reports whether the predicted spans match the reference
// exactly, ignoring order.
func spanSetsEqual(references, predictions []Span) bool {
	if len(references) != len(predictions) {
		return false
	}
	remaining := make(map[Span]int, len(references))
	for _, span := range references {
		remaining[span]++
	}
	for _, span := range predictions {
		remaining[span]--
		if remaining[span] < 0 {
			return false
		}
	}
	return true
}

// Measure returns the accumulated span scores.
func (e *Evaluator) Measure() *eval.FMeasure[Span] {
	return &e.measure
}

// Report summarizes the evaluation as a writable report document.
func (e *Evaluator) Report() *eval.EvaluationReport {
	report := eval.NewEvaluationReport(ModelType)
	report.Samples = e.samples
	report.Scores["precision"] = e.measure.Precision()
	report.Scores["recall"] = e.measure.Recall()
	report.Scores["f1"] = e.measure.Value()
	return report
}
