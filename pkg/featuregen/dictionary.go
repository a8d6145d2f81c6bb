/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dictionary.go
Description: Dictionary feature generator. Emits a membership feature for
tokens found in a named dictionary resource, the canonical example of a
generator that depends on a packaged artifact and therefore declares a
serializer mapping.
*/

package featuregen

import (
	"github.com/kleascm/maylee-nlp/pkg/model"
)

// DictionaryFeatureGenerator marks tokens that appear in a dictionary
// resolved through the build's resource provider.
type DictionaryFeatureGenerator struct {
	dict   *model.Dictionary
	prefix string
}

// NewDictionaryFeatureGenerator creates a membership generator over dict,
// emitting features tagged with prefix.
func NewDictionaryFeatureGenerator(dict *model.Dictionary, prefix string) *DictionaryFeatureGenerator {
	if prefix == "" {
		prefix = "dict"
	}
	return &DictionaryFeatureGenerator{dict: dict, prefix: prefix}
}

// AppendFeatures emits "<prefix>" for a single-token hit and additionally
// "<prefix>2" when the token continues a two-token entry started by its
// predecessor.
func (g *DictionaryFeatureGenerator) AppendFeatures(features []string, tokens []string, index int, previousOutcomes []string) []string {
	if g.dict.Contains(tokens[index]) {
		features = append(features, g.prefix)
	}
	if index > 0 && g.dict.Contains(tokens[index-1]+" "+tokens[index]) {
		features = append(features, g.prefix+"2")
	}
	return features
}
