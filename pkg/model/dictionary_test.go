/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dictionary_test.go
Description: Tests for the dictionary artifact. Covers normalization rules,
membership lookups, the plain-text line format, and serializer round-trips.
*/

package model_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kleascm/maylee-nlp/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDictionaryNormalization tests case folding and whitespace collapsing
func TestDictionaryNormalization(t *testing.T) {
	dict := model.NewDictionary("New   York", "LONDON")

	assert.Equal(t, 2, dict.Len())
	assert.True(t, dict.Contains("new york"))
	assert.True(t, dict.Contains("New York"))
	assert.True(t, dict.Contains("NEW  YORK"))
	assert.True(t, dict.Contains("london"))
	assert.False(t, dict.Contains("york"))
}

// TestDictionaryPut tests insertion semantics
func TestDictionaryPut(t *testing.T) {
	dict := model.NewDictionary()

	dict.Put("Tokyo")
	dict.Put("tokyo")
	dict.Put("  ")
	dict.Put("")

	// Duplicates collapse, empty entries are ignored
	assert.Equal(t, 1, dict.Len())
	assert.Equal(t, []string{"tokyo"}, dict.Entries())
}

// TestReadDictionary tests the one-entry-per-line text format
func TestReadDictionary(t *testing.T) {
	input := "Alpha\n\nbeta gamma\n  \nDELTA\n"

	dict, err := model.ReadDictionary(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 3, dict.Len())
	assert.Equal(t, []string{"alpha", "beta gamma", "delta"}, dict.Entries())
}

// TestDictionarySerializerRoundTrip tests write-then-read through the serializer
func TestDictionarySerializerRoundTrip(t *testing.T) {
	original := model.NewDictionary("New York", "London", "San Francisco")
	serializer := model.DictionarySerializer{}

	var buf bytes.Buffer
	require.NoError(t, serializer.Serialize(&buf, original))

	artifact, err := serializer.Deserialize(&buf)
	require.NoError(t, err)

	restored, ok := artifact.(*model.Dictionary)
	require.True(t, ok)
	assert.Equal(t, original.Entries(), restored.Entries())
}

// TestDictionarySerializerRejectsWrongType tests the artifact type check
func TestDictionarySerializerRejectsWrongType(t *testing.T) {
	var buf bytes.Buffer
	err := model.DictionarySerializer{}.Serialize(&buf, "not a dictionary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "*Dictionary")
}
