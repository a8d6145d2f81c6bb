/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sample.go
Description: Language detection samples and the tab-separated corpus format.
One line per document: the ISO language code, a tab, then the text.
*/

package langdetect

import (
	"fmt"
	"io"
	"strings"

	"github.com/kleascm/maylee-nlp/pkg/corpus"
)

// Sample pairs a document with its reference language.
type Sample struct {
	Lang string
	Text string
}

// ParseSample parses one corpus line of the form "lang<TAB>text".
func ParseSample(line string) (Sample, error) {
	lang, text, found := strings.Cut(line, "\t")
	if !found {
		return Sample{}, fmt.Errorf("no tab separator in line %q", line)
	}
	lang = strings.TrimSpace(lang)
	text = strings.TrimSpace(text)
	if lang == "" {
		return Sample{}, fmt.Errorf("empty language code in line %q", line)
	}
	if text == "" {
		return Sample{}, fmt.Errorf("empty text in line %q", line)
	}
	return Sample{Lang: lang, Text: text}, nil
}

// SampleStream reads language samples from a line stream, one document per
// line. Blank lines are skipped.
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
