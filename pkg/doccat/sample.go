/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sample.go
Description: Document categorizer samples and the whitespace corpus format.
One document per line: the category, then the document tokens.
*/

package doccat

import (
	"fmt"
	"io"
	"strings"

	"github.com/kleascm/maylee-nlp/pkg/corpus"
)

// Sample pairs a tokenized document with its reference category.
type Sample struct {
	Category string
	Tokens   []string
}

// ParseSample parses one corpus line: the first field is the category, the
// remaining fields are the document tokens.
func ParseSample(line string) (Sample, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Sample{}, fmt.Errorf("line %q needs a category and at least one token", line)
	}
	return Sample{Category: fields[0], Tokens: fields[1:]}, nil
}

// SampleStream reads categorizer samples from a line stream, one document
// per line. Blank lines are skipped.
type SampleStream struct {
	lines corpus.Stream[string]
}

// NewSampleStream wraps a line stream.
func NewSampleStream(lines corpus.Stream[string]) *SampleStream {
	return &SampleStream{lines: lines}
}

// NewSampleStreamReader reads samples from r, one per line.
func NewSampleStreamReader(r io.Reader) *SampleStream {
	return &SampleStream{lines: corpus.NewLineStream(r)}
}

// Read returns the next sample, or io.EOF when the stream is exhausted.
func (s *SampleStream) Read() (Sample, error) {
	for {
		line, err := s.lines.Read()
		if err != nil {
			return Sample{}, err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		return ParseSample(line)
	}
}
