/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sample.go
Description: Name-annotated training samples. Parses the inline annotation
format where names are bracketed by <START:type> and <END> markers inside a
whitespace-tokenized sentence, and streams samples out of line-based corpora
with document boundary handling.
*/

package namefind

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kleascm/maylee-nlp/pkg/corpus"
)

// ErrInvalidAnnotation reports a sentence whose name markers do not pair up.
var ErrInvalidAnnotation = errors.New("invalid name annotation")

const (
	startMarkerPrefix = "<START"
	endMarker         = "<END>"
)

// NameSample is one annotated sentence: its tokens, the name spans over
// them, and whether adaptive feature data must be cleared before it (a new
// document starts here).
type NameSample struct {
	Tokens        []string
	Names         []Span
	ClearAdaptive bool
}

// ParseNameSample parses one annotated sentence. Tokens are whitespace
// separated; a name is opened by <START:type> (or <START> for the default
// type) and closed by <END>. Names cannot nest.
func ParseNameSample(line string, clearAdaptive bool) (NameSample, error) {
	parts := strings.Fields(line)

	sample := NameSample{ClearAdaptive: clearAdaptive}
	nameType := ""
	nameStart := -1

	for _, part := range parts {
		switch {
		case strings.HasPrefix(part, startMarkerPrefix) && strings.HasSuffix(part, ">"):
			if nameStart >= 0 {
				return NameSample{}, fmt.Errorf("%w: nested %s in %q", ErrInvalidAnnotation, part, line)
			}
			parsedType, err := parseStartMarker(part)
			if err != nil {
				return NameSample{}, fmt.Errorf("%w: %v in %q", ErrInvalidAnnotation, err, line)
			}
			nameType = parsedType
			nameStart = len(sample.Tokens)
		case part == endMarker:
			if nameStart < 0 {
				return NameSample{}, fmt.Errorf("%w: %s without %s:...> in %q", ErrInvalidAnnotation, endMarker, startMarkerPrefix, line)
			}
			if nameStart == len(sample.Tokens) {
				return NameSample{}, fmt.Errorf("%w: empty name in %q", ErrInvalidAnnotation, line)
			}
			sample.Names = append(sample.Names, NewSpan(nameStart, len(sample.Tokens), nameType))
			nameStart = -1
		default:
			sample.Tokens = append(sample.Tokens, part)
		}
	}

	if nameStart >= 0 {
		return NameSample{}, fmt.Errorf("%w: unclosed %s:...> in %q", ErrInvalidAnnotation, startMarkerPrefix, line)
	}
	return sample, nil
}

// parseStartMarker extracts the name type from <START:type> or <START>.
func parseStartMarker(marker string) (string, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(marker, startMarkerPrefix), ">")
	if inner == "" {
		return DefaultType, nil
	}
	if !strings.HasPrefix(inner, ":") {
		return "", fmt.Errorf("malformed start marker %q", marker)
	}
	nameType := inner[1:]
	if nameType == "" {
		return "", fmt.Errorf("missing name type in %q", marker)
	}
	return nameType, nil
}

// SampleStream converts annotated lines into name samples. Blank lines mark
// document boundaries: the next sample carries the clear-adaptive flag.
type SampleStream struct {
	lines         corpus.Stream[string]
	clearAdaptive bool
}

// NewSampleStream creates a sample stream over annotated lines.
func NewSampleStream(lines corpus.Stream[string]) *SampleStream {
	return &SampleStream{lines: lines}
}

// NewSampleStreamReader creates a sample stream over an annotated text file.
func NewSampleStreamReader(r io.Reader) *SampleStream {
	return NewSampleStream(corpus.NewLineStream(r))
}

// Read returns the next annotated sentence.
func (s *SampleStream) Read() (NameSample, error) {
	for {
		line, err := s.lines.Read()
		if err != nil {
			return NameSample{}, err
		}
		if strings.TrimSpace(line) == "" {
			s.clearAdaptive = true
			continue
		}

		sample, err := ParseNameSample(line, s.clearAdaptive)
		if err != nil {
			return NameSample{}, err
		}
		s.clearAdaptive = false
		return sample, nil
	}
}
