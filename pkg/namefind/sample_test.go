/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sample_test.go
Description: Tests for name annotation parsing and the sample stream. Covers
typed and default markers, multiple names per sentence, malformed marker
pairs, span helpers, and document boundary handling.
*/

package namefind_test

import (
	"io"
	"strings"
	"testing"

	"github.com/kleascm/maylee-nlp/pkg/namefind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseNameSample tests a single typed name annotation
func TestParseNameSample(t *testing.T) {
	sample, err := namefind.ParseNameSample("<START:person> Alice Jones <END> visited Paris .", false)
	require.NoError(t, err)

	assert.Equal(t, []string{"Alice", "Jones", "visited", "Paris", "."}, sample.Tokens)
	require.Len(t, sample.Names, 1)
	assert.Equal(t, namefind.NewSpan(0, 2, "person"), sample.Names[0])
	assert.Equal(t, "Alice Jones", sample.Names[0].CoveredText(sample.Tokens))
	assert.False(t, sample.ClearAdaptive)
}

// TestParseNameSampleDefaultType tests the untyped start marker
func TestParseNameSampleDefaultType(t *testing.T) {
	sample, err := namefind.ParseNameSample("met <START> Bob <END> today", false)
	require.NoError(t, err)

	require.Len(t, sample.Names, 1)
	assert.Equal(t, namefind.DefaultType, sample.Names[0].Type)
	assert.Equal(t, namefind.NewSpan(1, 2, ""), sample.Names[0])
}

// TestParseNameSampleMultipleNames tests several names in one sentence
func TestParseNameSampleMultipleNames(t *testing.T) {
	line := "<START:person> Ada <END> wrote to <START:person> Charles <END> from <START:location> London <END>"
	sample, err := namefind.ParseNameSample(line, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"Ada", "wrote", "to", "Charles", "from", "London"}, sample.Tokens)
	require.Len(t, sample.Names, 3)
	assert.Equal(t, namefind.NewSpan(0, 1, "person"), sample.Names[0])
	assert.Equal(t, namefind.NewSpan(3, 4, "person"), sample.Names[1])
	assert.Equal(t, namefind.NewSpan(5, 6, "location"), sample.Names[2])
}

// TestParseNameSampleWithoutNames tests a plain unannotated sentence
func TestParseNameSampleWithoutNames(t *testing.T) {
	sample, err := namefind.ParseNameSample("Nothing to see here .", true)
	require.NoError(t, err)

	assert.Equal(t, []string{"Nothing", "to", "see", "here", "."}, sample.Tokens)
	assert.Empty(t, sample.Names)
	assert.True(t, sample.ClearAdaptive)
}

// TestParseNameSampleErrors tests the malformed marker failures
func TestParseNameSampleErrors(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"nested start", "<START:person> Alice <START:person> Bob <END>"},
		{"end without start", "Alice <END> spoke"},
		{"unclosed start", "<START:person> Alice spoke"},
		{"empty name", "saw <START:person> <END> it"},
		{"missing type", "saw <START:> Alice <END>"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := namefind.ParseNameSample(tc.line, false)
			require.Error(t, err)
			assert.ErrorIs(t, err, namefind.ErrInvalidAnnotation)
		})
	}
}

// TestSpanHelpers tests containment and intersection
func TestSpanHelpers(t *testing.T) {
	outer := namefind.NewSpan(1, 5, "a")
	inner := namefind.NewSpan(2, 4, "a")
	disjoint := namefind.NewSpan(5, 7, "a")

	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))
	assert.True(t, outer.Intersects(inner))
	assert.False(t, outer.Intersects(disjoint))
	assert.Equal(t, 4, outer.Length())
}

// TestSampleStream tests document boundary handling over annotated lines
func TestSampleStream(t *testing.T) {
	input := strings.Join([]string{
		"<START:person> Sam <END> spoke .",
		"He left .",
		"",
		"",
		"<START:person> Kim <END> arrived .",
	}, "\n")

	stream := namefind.NewSampleStreamReader(strings.NewReader(input))

	first, err := stream.Read()
	require.NoError(t, err)
	assert.False(t, first.ClearAdaptive)
	assert.Equal(t, []string{"Sam", "spoke", "."}, first.Tokens)

	second, err := stream.Read()
	require.NoError(t, err)
	assert.False(t, second.ClearAdaptive)

	// Blank lines mark a new document; consecutive blanks collapse
	third, err := stream.Read()
	require.NoError(t, err)
	assert.True(t, third.ClearAdaptive)
	assert.Equal(t, []string{"Kim", "arrived", "."}, third.Tokens)

	_, err = stream.Read()
	assert.Equal(t, io.EOF, err)
}

// TestSampleStreamPropagatesParseErrors tests that bad annotations fail the stream
func TestSampleStreamPropagatesParseErrors(t *testing.T) {
	stream := namefind.NewSampleStreamReader(strings.NewReader("Alice <END> spoke"))

	_, err := stream.Read()
	require.Error(t, err)
	assert.ErrorIs(t, err, namefind.ErrInvalidAnnotation)
}
