/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generators.go
Description: Atomic built-in feature generators: token identity, token shape
class, bigrams, prefixes and suffixes, sentence position markers, the
outcome prior, and character n-grams. These are the leaf extractors
descriptors compose into pipelines.
*/

package featuregen

import (
	"fmt"
	"strings"
	"unicode"
)

// TokenFeatureGenerator emits the lower-cased token at the position.
type TokenFeatureGenerator struct{}

// NewTokenFeatureGenerator creates a token identity generator.
func NewTokenFeatureGenerator() *TokenFeatureGenerator {
	return &TokenFeatureGenerator{}
}

// AppendFeatures emits "w=<token>".
func (g *TokenFeatureGenerator) AppendFeatures(features []string, tokens []string, index int, previousOutcomes []string) []string {
	return append(features, "w="+strings.ToLower(tokens[index]))
}

// tokenShape classifies a token's surface form into a small closed set of
// shape classes used by the token class generator.
func tokenShape(token string) string {
	if token == "" {
		return "empty"
	}

	var hasLower, hasUpper, hasDigit, hasOther bool
	runes := []rune(token)
	for _, r := range runes {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasOther = true
		}
	}

	switch {
	case hasDigit && !hasLower && !hasUpper && !hasOther:
		switch len(runes) {
		case 2:
			return "2d"
		case 4:
			return "4d"
		default:
			return "num"
		}
	case hasDigit && (hasLower || hasUpper):
		return "alnum"
	case hasLower && !hasUpper && !hasDigit && !hasOther:
		return "lc"
	case hasUpper && !hasLower && !hasDigit && !hasOther:
		return "uc"
	case hasUpper && hasLower && !hasDigit && !hasOther && unicode.IsUpper(runes[0]):
		return "ic"
	case hasOther && !hasLower && !hasUpper && !hasDigit:
		return "pct"
	default:
		return "other"
	}
}

// TokenClassFeatureGenerator emits the shape class of the token, optionally
// cross-producted with the lower-cased token itself.
type TokenClassFeatureGenerator struct {
	wordAndClass bool
}

// NewTokenClassFeatureGenerator creates a token class generator.
// wordAndClass additionally emits the combined word-and-class feature.
func NewTokenClassFeatureGenerator(wordAndClass bool) *TokenClassFeatureGenerator {
	return &TokenClassFeatureGenerator{wordAndClass: wordAndClass}
}

// AppendFeatures emits "wc=<class>" and, when configured, "w&c=<token>,<class>".
func (g *TokenClassFeatureGenerator) AppendFeatures(features []string, tokens []string, index int, previousOutcomes []string) []string {
	shape := tokenShape(tokens[index])
	features = append(features, "wc="+shape)
	if g.wordAndClass {
		features = append(features, "w&c="+strings.ToLower(tokens[index])+","+shape)
	}
	return features
}

// BigramFeatureGenerator emits the adjacent token pairs around the position.
type BigramFeatureGenerator struct{}

// NewBigramFeatureGenerator creates a bigram generator.
func NewBigramFeatureGenerator() *BigramFeatureGenerator {
	return &BigramFeatureGenerator{}
}

// AppendFeatures emits "pw,w=<prev>,<token>" and "w,nw=<token>,<next>" where
// the neighbors exist.
func (g *BigramFeatureGenerator) AppendFeatures(features []string, tokens []string, index int, previousOutcomes []string) []string {
	if index > 0 {
		features = append(features, "pw,w="+tokens[index-1]+","+tokens[index])
	}
	if index+1 < len(tokens) {
		features = append(features, "w,nw="+tokens[index]+","+tokens[index+1])
	}
	return features
}

// PrefixFeatureGenerator emits the leading substrings of the token up to a
// configured length.
type PrefixFeatureGenerator struct {
	length int
}

// NewPrefixFeatureGenerator creates a prefix generator emitting prefixes of
// length 1 up to length.
func NewPrefixFeatureGenerator(length int) *PrefixFeatureGenerator {
	if length <= 0 {
		length = 4
	}
	return &PrefixFeatureGenerator{length: length}
}

// AppendFeatures emits "pre=<prefix>" per prefix length.
func (g *PrefixFeatureGenerator) AppendFeatures(features []string, tokens []string, index int, previousOutcomes []string) []string {
	runes := []rune(strings.ToLower(tokens[index]))
	for i := 1; i <= g.length && i <= len(runes); i++ {
		features = append(features, "pre="+string(runes[:i]))
	}
	return features
}

// SuffixFeatureGenerator emits the trailing substrings of the token up to a
// configured length.
type SuffixFeatureGenerator struct {
	length int
}

// NewSuffixFeatureGenerator creates a suffix generator emitting suffixes of
// length 1 up to length.
func NewSuffixFeatureGenerator(length int) *SuffixFeatureGenerator {
	if length <= 0 {
		length = 4
	}
	return &SuffixFeatureGenerator{length: length}
}

// AppendFeatures emits "suf=<suffix>" per suffix length.
func (g *SuffixFeatureGenerator) AppendFeatures(features []string, tokens []string, index int, previousOutcomes []string) []string {
	runes := []rune(strings.ToLower(tokens[index]))
	for i := 1; i <= g.length && i <= len(runes); i++ {
		features = append(features, "suf="+string(runes[len(runes)-i:]))
	}
	return features
}

// SentenceFeatureGenerator marks sentence begin and end positions.
type SentenceFeatureGenerator struct {
	begin bool
	end   bool
}

// NewSentenceFeatureGenerator creates a sentence position generator.
func NewSentenceFeatureGenerator(begin, end bool) *SentenceFeatureGenerator {
	return &SentenceFeatureGenerator{begin: begin, end: end}
}

// AppendFeatures emits "S=begin" at position 0 and "S=end" at the last
// position, as configured.
func (g *SentenceFeatureGenerator) AppendFeatures(features []string, tokens []string, index int, previousOutcomes []string) []string {
	if g.begin && index == 0 {
		features = append(features, "S=begin")
	}
	if g.end && index == len(tokens)-1 {
		features = append(features, "S=end")
	}
	return features
}

// OutcomePriorFeatureGenerator emits a constant feature so the model can
// learn per-outcome priors independent of context.
type OutcomePriorFeatureGenerator struct{}

// NewOutcomePriorFeatureGenerator creates the prior generator.
func NewOutcomePriorFeatureGenerator() *OutcomePriorFeatureGenerator {
	return &OutcomePriorFeatureGenerator{}
}

// AppendFeatures emits the constant "def".
func (g *OutcomePriorFeatureGenerator) AppendFeatures(features []string, tokens []string, index int, previousOutcomes []string) []string {
	return append(features, "def")
}

// CharacterNgramFeatureGenerator emits the character n-grams of the token
// between a minimum and maximum length.
type CharacterNgramFeatureGenerator struct {
	minLength int
	maxLength int
}

// NewCharacterNgramFeatureGenerator creates a character n-gram generator
// over lengths min through max inclusive.
func NewCharacterNgramFeatureGenerator(min, max int) (*CharacterNgramFeatureGenerator, error) {
	if min <= 0 || max <= 0 || min > max {
		return nil, fmt.Errorf("%w: character ngram range %d..%d", ErrInvalidFormat, min, max)
	}
	return &CharacterNgramFeatureGenerator{minLength: min, maxLength: max}, nil
}

// AppendFeatures emits "ng=<gram>" for every n-gram of the lower-cased token.
func (g *CharacterNgramFeatureGenerator) AppendFeatures(features []string, tokens []string, index int, previousOutcomes []string) []string {
	runes := []rune(strings.ToLower(tokens[index]))
	for n := g.minLength; n <= g.maxLength && n <= len(runes); n++ {
		for i := 0; i+n <= len(runes); i++ {
			features = append(features, "ng="+string(runes[i:i+n]))
		}
	}
	return features
}
