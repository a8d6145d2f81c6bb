/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: mean.go
Description: Incremental arithmetic mean over a stream of observations.
Used by the evaluators to accumulate per-sample accuracy without holding
the samples.
*/

package eval

// Mean accumulates values one at a time and reports their arithmetic mean.
// The zero value is ready to use.
type Mean struct {
	sum   float64
	count int64
}

// Add records one observation.
func (m *Mean) Add(value float64) {
	m.AddN(value, 1)
}

// AddN records an observation that occurred n times.
func (m *Mean) AddN(value float64, n int64) {
	m.sum += value * float64(n)
	m.count += n
}

// Value returns the mean of everything recorded so far, 0 when nothing was.
func (m *Mean) Value() float64 {
	if m.count == 0 {
		return 0
	}
	return m.sum / float64(m.count)
}

// Count returns how many observations were recorded.
func (m *Mean) Count() int64 {
	return m.count
}
