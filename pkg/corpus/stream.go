/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: stream.go
Description: Typed sample streams for Maylee NLP. Trainers and evaluators
consume samples one at a time through the Stream interface; this file holds
the line, slice, and mapping primitives the format readers build on.
*/

package corpus

import (
	"bufio"
	"fmt"
	"io"
)

// Stream yields samples one at a time. Read returns io.EOF after the last
// sample; any other error is a real failure. Streams are not safe for
// concurrent use.
type Stream[T any] interface {
	Read() (T, error)
}

// SliceStream yields the elements of a slice in order.
type SliceStream[T any] struct {
	samples []T
	next    int
}

// NewSliceStream creates a stream over the given samples.
func NewSliceStream[T any](samples ...T) *SliceStream[T] {
	return &SliceStream[T]{samples: samples}
}

// Read returns the next element, io.EOF after the last.
func (s *SliceStream[T]) Read() (T, error) {
	var zero T
	if s.next >= len(s.samples) {
		return zero, io.EOF
	}
	sample := s.samples[s.next]
	s.next++
	return sample, nil
}

// Reset rewinds the stream to the first element. Trainers that iterate the
// data several times rely on this.
func (s *SliceStream[T]) Reset() {
	s.next = 0
}

// LineStream yields the lines of a reader, without the trailing newline.
type LineStream struct {
	scanner *bufio.Scanner
}

// NewLineStream creates a line stream over r. Lines up to 1 MiB are
// supported.
func NewLineStream(r io.Reader) *LineStream {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &LineStream{scanner: scanner}
}

// Read returns the next line, io.EOF at the end of the input.
func (s *LineStream) Read() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read line: %w", err)
	}
	return "", io.EOF
}

// MapStream converts a stream of A into a stream of B through fn. A nil
// error from fn keeps the sample; fn errors abort the stream.
type MapStream[A, B any] struct {
	inner Stream[A]
	fn    func(A) (B, error)
}

// NewMapStream wraps inner with a per-sample conversion.
func NewMapStream[A, B any](inner Stream[A], fn func(A) (B, error)) *MapStream[A, B] {
	return &MapStream[A, B]{inner: inner, fn: fn}
}

// Read converts the next inner sample.
func (s *MapStream[A, B]) Read() (B, error) {
	var zero B
	sample, err := s.inner.Read()
	if err != nil {
		return zero, err
	}
	return s.fn(sample)
}

// Collect drains a stream into a slice.
func Collect[T any](s Stream[T]) ([]T, error) {
	var samples []T
	for {
		sample, err := s.Read()
		if err == io.EOF {
			return samples, nil
		}
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}
}
