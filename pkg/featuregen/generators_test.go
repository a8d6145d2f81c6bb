/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generators_test.go
Description: Tests for the atomic built-in feature generators. Covers the
emitted feature strings, shape classification, boundary positions, rune-aware
prefix and suffix slicing, n-gram ranges, and dictionary lookups.
*/

package featuregen_test

import (
	"testing"

	"github.com/kleascm/maylee-nlp/pkg/featuregen"
	"github.com/kleascm/maylee-nlp/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTokenFeatureGenerator tests the lower-cased token identity feature
func TestTokenFeatureGenerator(t *testing.T) {
	gen := featuregen.NewTokenFeatureGenerator()

	features := gen.AppendFeatures(nil, []string{"The", "CAT"}, 0, nil)
	assert.Equal(t, []string{"w=the"}, features)

	// Appends to what is already there
	features = gen.AppendFeatures(features, []string{"The", "CAT"}, 1, nil)
	assert.Equal(t, []string{"w=the", "w=cat"}, features)
}

// TestTokenClassFeatureGenerator tests shape classification of surface forms
func TestTokenClassFeatureGenerator(t *testing.T) {
	gen := featuregen.NewTokenClassFeatureGenerator(false)

	cases := []struct {
		token string
		shape string
	}{
		{"cat", "lc"},
		{"NASA", "uc"},
		{"Tokyo", "ic"},
		{"42", "2d"},
		{"1984", "4d"},
		{"123456", "num"},
		{"4x4", "alnum"},
		{"!?", "pct"},
		{"", "empty"},
		{"e.g", "other"},
	}

	for _, tc := range cases {
		features := gen.AppendFeatures(nil, []string{tc.token}, 0, nil)
		assert.Equal(t, []string{"wc=" + tc.shape}, features, "token %q", tc.token)
	}
}

// TestTokenClassWordAndClass tests the combined word-and-class feature
func TestTokenClassWordAndClass(t *testing.T) {
	gen := featuregen.NewTokenClassFeatureGenerator(true)

	features := gen.AppendFeatures(nil, []string{"Tokyo"}, 0, nil)
	assert.Equal(t, []string{"wc=ic", "w&c=tokyo,ic"}, features)
}

// TestBigramFeatureGenerator tests neighbor pairs at inner and boundary positions
func TestBigramFeatureGenerator(t *testing.T) {
	gen := featuregen.NewBigramFeatureGenerator()
	tokens := []string{"the", "cat", "sat"}

	// Inner position has both neighbors
	features := gen.AppendFeatures(nil, tokens, 1, nil)
	assert.Equal(t, []string{"pw,w=the,cat", "w,nw=cat,sat"}, features)

	// First position has no predecessor
	features = gen.AppendFeatures(nil, tokens, 0, nil)
	assert.Equal(t, []string{"w,nw=the,cat"}, features)

	// Last position has no successor
	features = gen.AppendFeatures(nil, tokens, 2, nil)
	assert.Equal(t, []string{"pw,w=cat,sat"}, features)

	// A single token has neither
	features = gen.AppendFeatures(nil, []string{"alone"}, 0, nil)
	assert.Empty(t, features)
}

// TestPrefixFeatureGenerator tests leading substrings up to the configured length
func TestPrefixFeatureGenerator(t *testing.T) {
	gen := featuregen.NewPrefixFeatureGenerator(3)

	features := gen.AppendFeatures(nil, []string{"Hello"}, 0, nil)
	assert.Equal(t, []string{"pre=h", "pre=he", "pre=hel"}, features)

	// Shorter tokens stop early
	features = gen.AppendFeatures(nil, []string{"ab"}, 0, nil)
	assert.Equal(t, []string{"pre=a", "pre=ab"}, features)

	// Multi-byte runes slice cleanly
	features = gen.AppendFeatures(nil, []string{"über"}, 0, nil)
	assert.Equal(t, []string{"pre=ü", "pre=üb", "pre=übe"}, features)
}

// TestSuffixFeatureGenerator tests trailing substrings up to the configured length
func TestSuffixFeatureGenerator(t *testing.T) {
	gen := featuregen.NewSuffixFeatureGenerator(3)

	features := gen.AppendFeatures(nil, []string{"Walking"}, 0, nil)
	assert.Equal(t, []string{"suf=g", "suf=ng", "suf=ing"}, features)
}

// TestPrefixSuffixDefaultLength tests that a non-positive length falls back to 4
func TestPrefixSuffixDefaultLength(t *testing.T) {
	features := featuregen.NewPrefixFeatureGenerator(0).AppendFeatures(nil, []string{"abcdef"}, 0, nil)
	assert.Len(t, features, 4)

	features = featuregen.NewSuffixFeatureGenerator(-2).AppendFeatures(nil, []string{"abcdef"}, 0, nil)
	assert.Len(t, features, 4)
}

// TestSentenceFeatureGenerator tests begin and end markers
func TestSentenceFeatureGenerator(t *testing.T) {
	tokens := []string{"the", "cat", "sat"}

	gen := featuregen.NewSentenceFeatureGenerator(true, true)
	assert.Equal(t, []string{"S=begin"}, gen.AppendFeatures(nil, tokens, 0, nil))
	assert.Empty(t, gen.AppendFeatures(nil, tokens, 1, nil))
	assert.Equal(t, []string{"S=end"}, gen.AppendFeatures(nil, tokens, 2, nil))

	// A one-token sentence is both begin and end
	assert.Equal(t, []string{"S=begin", "S=end"}, gen.AppendFeatures(nil, []string{"solo"}, 0, nil))

	// Markers can be disabled independently
	gen = featuregen.NewSentenceFeatureGenerator(false, true)
	assert.Empty(t, gen.AppendFeatures(nil, tokens, 0, nil))
	assert.Equal(t, []string{"S=end"}, gen.AppendFeatures(nil, tokens, 2, nil))
}

// TestOutcomePriorFeatureGenerator tests the constant prior feature
func TestOutcomePriorFeatureGenerator(t *testing.T) {
	gen := featuregen.NewOutcomePriorFeatureGenerator()

	features := gen.AppendFeatures(nil, []string{"anything"}, 0, nil)
	assert.Equal(t, []string{"def"}, features)
}

// TestCharacterNgramFeatureGenerator tests the n-gram range over the token
func TestCharacterNgramFeatureGenerator(t *testing.T) {
	gen, err := featuregen.NewCharacterNgramFeatureGenerator(2, 3)
	require.NoError(t, err)

	features := gen.AppendFeatures(nil, []string{"Cats"}, 0, nil)
	assert.Equal(t, []string{"ng=ca", "ng=at", "ng=ts", "ng=cat", "ng=ats"}, features)

	// Tokens shorter than min produce nothing
	features = gen.AppendFeatures(nil, []string{"a"}, 0, nil)
	assert.Empty(t, features)
}

// TestCharacterNgramInvalidRange tests the constructor's range validation
func TestCharacterNgramInvalidRange(t *testing.T) {
	_, err := featuregen.NewCharacterNgramFeatureGenerator(0, 3)
	assert.ErrorIs(t, err, featuregen.ErrInvalidFormat)

	_, err = featuregen.NewCharacterNgramFeatureGenerator(4, 2)
	assert.ErrorIs(t, err, featuregen.ErrInvalidFormat)
}

// TestDictionaryFeatureGenerator tests single and two-token entry hits
func TestDictionaryFeatureGenerator(t *testing.T) {
	dict := model.NewDictionary("York", "New York", "london")
	gen := featuregen.NewDictionaryFeatureGenerator(dict, "loc")

	// Single-token hit, case-insensitive
	features := gen.AppendFeatures(nil, []string{"in", "LONDON"}, 1, nil)
	assert.Equal(t, []string{"loc"}, features)

	// Two-token entry: the second token reports the continuation
	features = gen.AppendFeatures(nil, []string{"New", "York"}, 1, nil)
	assert.Equal(t, []string{"loc", "loc2"}, features)

	// Miss emits nothing
	features = gen.AppendFeatures(nil, []string{"Paris"}, 0, nil)
	assert.Empty(t, features)
}

// TestDictionaryFeatureGeneratorDefaultPrefix tests the fallback feature prefix
func TestDictionaryFeatureGeneratorDefaultPrefix(t *testing.T) {
	dict := model.NewDictionary("cat")
	gen := featuregen.NewDictionaryFeatureGenerator(dict, "")

	features := gen.AppendFeatures(nil, []string{"cat"}, 0, nil)
	assert.Equal(t, []string{"dict"}, features)
}
