/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: factories.go
Description: Built-in factory implementations and their registry entries.
Each factory turns one initialized descriptor node into its generator,
reading typed parameters through the BuildContext accessors. The dictionary
factory additionally declares the serializer mapping for its resource.
*/

package featuregen

import (
	"fmt"

	"github.com/kleascm/maylee-nlp/pkg/model"
)

type tokenFactory struct{}

func (tokenFactory) Create(ctx *BuildContext) (FeatureGenerator, error) {
	return NewTokenFeatureGenerator(), nil
}

type tokenClassFactory struct{}

func (tokenClassFactory) Create(ctx *BuildContext) (FeatureGenerator, error) {
	wordAndClass, err := ctx.BoolDefault("wordAndClass", false)
	if err != nil {
		return nil, err
	}
	return NewTokenClassFeatureGenerator(wordAndClass), nil
}

type bigramFactory struct{}

func (bigramFactory) Create(ctx *BuildContext) (FeatureGenerator, error) {
	return NewBigramFeatureGenerator(), nil
}

type prefixFactory struct{}

func (prefixFactory) Create(ctx *BuildContext) (FeatureGenerator, error) {
	length, err := ctx.IntDefault("length", 4)
	if err != nil {
		return nil, err
	}
	return NewPrefixFeatureGenerator(length), nil
}

type suffixFactory struct{}

func (suffixFactory) Create(ctx *BuildContext) (FeatureGenerator, error) {
	length, err := ctx.IntDefault("length", 4)
	if err != nil {
		return nil, err
	}
	return NewSuffixFeatureGenerator(length), nil
}

type sentenceFactory struct{}

func (sentenceFactory) Create(ctx *BuildContext) (FeatureGenerator, error) {
	begin, err := ctx.BoolDefault("begin", true)
	if err != nil {
		return nil, err
	}
	end, err := ctx.BoolDefault("end", false)
	if err != nil {
		return nil, err
	}
	return NewSentenceFeatureGenerator(begin, end), nil
}

type outcomePriorFactory struct{}

func (outcomePriorFactory) Create(ctx *BuildContext) (FeatureGenerator, error) {
	return NewOutcomePriorFeatureGenerator(), nil
}

type previousMapFactory struct{}

func (previousMapFactory) Create(ctx *BuildContext) (FeatureGenerator, error) {
	return NewPreviousMapFeatureGenerator(), nil
}

type charNgramFactory struct{}

func (charNgramFactory) Create(ctx *BuildContext) (FeatureGenerator, error) {
	min, err := ctx.IntDefault("min", 2)
	if err != nil {
		return nil, err
	}
	max, err := ctx.IntDefault("max", 5)
	if err != nil {
		return nil, err
	}
	return NewCharacterNgramFeatureGenerator(min, max)
}

type windowFactory struct{}

func (windowFactory) Create(ctx *BuildContext) (FeatureGenerator, error) {
	inner, err := ctx.Generator(GeneratorKey(0))
	if err != nil {
		return nil, err
	}
	prevLength, err := ctx.IntDefault("prevLength", 2)
	if err != nil {
		return nil, err
	}
	nextLength, err := ctx.IntDefault("nextLength", 2)
	if err != nil {
		return nil, err
	}
	return NewWindowFeatureGenerator(inner, prevLength, nextLength), nil
}

type cacheFactory struct{}

func (cacheFactory) Create(ctx *BuildContext) (FeatureGenerator, error) {
	inner, err := ctx.Generator(GeneratorKey(0))
	if err != nil {
		return nil, err
	}
	return NewCachedFeatureGenerator(inner), nil
}

type dictionaryFactory struct{}

func (dictionaryFactory) Create(ctx *BuildContext) (FeatureGenerator, error) {
	key, err := ctx.Str("dict")
	if err != nil {
		return nil, err
	}
	prefix, err := ctx.StrDefault("prefix", "dict")
	if err != nil {
		return nil, err
	}
	resource, err := ctx.Resource(key)
	if err != nil {
		return nil, err
	}
	dict, ok := resource.(*model.Dictionary)
	if !ok {
		return nil, fmt.Errorf("%w: resource %q is %T, want *model.Dictionary", ErrInvalidFormat, key, resource)
	}
	return NewDictionaryFeatureGenerator(dict, prefix), nil
}

// SerializerMapping declares the dictionary serializer for the resource key
// the node names. Discovery calls this without a resource provider, so only
// the key parameter is read, never the resource itself.
func (dictionaryFactory) SerializerMapping(ctx *BuildContext) (map[string]model.ArtifactSerializer, error) {
	key, err := ctx.Str("dict")
	if err != nil {
		return nil, err
	}
	return map[string]model.ArtifactSerializer{key: model.DictionarySerializer{}}, nil
}

func init() {
	Register("token", func() (Factory, error) { return tokenFactory{}, nil })
	Register("tokenclass", func() (Factory, error) { return tokenClassFactory{}, nil })
	Register("bigram", func() (Factory, error) { return bigramFactory{}, nil })
	Register("prefix", func() (Factory, error) { return prefixFactory{}, nil })
	Register("suffix", func() (Factory, error) { return suffixFactory{}, nil })
	Register("sentence", func() (Factory, error) { return sentenceFactory{}, nil })
	Register("outcomeprior", func() (Factory, error) { return outcomePriorFactory{}, nil })
	Register("prevmap", func() (Factory, error) { return previousMapFactory{}, nil })
	Register("charngram", func() (Factory, error) { return charNgramFactory{}, nil })
	Register("window", func() (Factory, error) { return windowFactory{}, nil })
	Register("cache", func() (Factory, error) { return cacheFactory{}, nil })
	Register("dictionary", func() (Factory, error) { return dictionaryFactory{}, nil })
}
