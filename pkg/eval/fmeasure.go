/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: fmeasure.go
Description: Precision, recall and F1 accumulation over reference and
predicted object sets. Generic over the compared object type so span-based
and label-based evaluators share one implementation.
*/

package eval

import "fmt"

// FMeasure accumulates precision and recall counts across evaluation samples
// and reports the harmonic mean of the two. Values follow the usual
// convention that an undefined ratio is -1: precision before anything was
// predicted, recall before anything was expected.
type FMeasure[T comparable] struct {
	selected      int64
	target        int64
	truePositives int64
}

// UpdateScores counts one sample: references are the gold objects,
// predictions the system output.
func (f *FMeasure[T]) UpdateScores(references, predictions []T) {
	f.truePositives += countTruePositives(references, predictions)
	f.selected += int64(len(predictions))
	f.target += int64(len(references))
}

// Merge folds another accumulator into this one.
func (f *FMeasure[T]) Merge(other *FMeasure[T]) {
	f.selected += other.selected
	f.target += other.target
	f.truePositives += other.truePositives
}

// countTruePositives counts predictions that match a reference, consuming
// each reference at most once so duplicated predictions are not over-counted.
func countTruePositives[T comparable](references, predictions []T) int64 {
	remaining := make(map[T]int, len(references))
	for _, ref := range references {
		remaining[ref]++
	}

	var matched int64
	for _, pred := range predictions {
		if remaining[pred] > 0 {
			remaining[pred]--
			matched++
		}
	}
	return matched
}

// Precision returns matched predictions over all predictions, -1 when
// nothing was predicted yet.
func (f *FMeasure[T]) Precision() float64 {
	if f.selected == 0 {
		return -1
	}
	return float64(f.truePositives) / float64(f.selected)
}

// Recall returns matched references over all references, -1 when nothing
// was expected yet.
func (f *FMeasure[T]) Recall() float64 {
	if f.target == 0 {
		return -1
	}
	return float64(f.truePositives) / float64(f.target)
}

// Value returns the F1 measure, -1 while undefined.
func (f *FMeasure[T]) Value() float64 {
	precision := f.Precision()
	recall := f.Recall()
	if precision+recall <= 0 {
		return -1
	}
	return 2 * precision * recall / (precision + recall)
}

// String formats the three scores for log lines and reports.
func (f *FMeasure[T]) String() string {
	return fmt.Sprintf("precision: %.4f, recall: %.4f, f-measure: %.4f",
		f.Precision(), f.Recall(), f.Value())
}
