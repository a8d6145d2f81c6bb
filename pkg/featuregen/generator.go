/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generator.go
Description: Core contracts of the feature generator composition engine: the
feature generator interfaces, the resource provider collaborator, and the
factory lifecycle descriptors are resolved against.
*/

package featuregen

import (
	"github.com/kleascm/maylee-nlp/pkg/model"
)

// FeatureGenerator produces feature strings for one token position. The
// features slice is appended to and returned, so callers can collect the
// output of several generators without intermediate allocations.
type FeatureGenerator interface {
	AppendFeatures(features []string, tokens []string, index int, previousOutcomes []string) []string
}

// AdaptiveFeatureGenerator is a FeatureGenerator that accumulates state
// across sentences within one document. Adaptivity is detected by interface
// assertion; plain generators simply never receive lifecycle calls.
type AdaptiveFeatureGenerator interface {
	FeatureGenerator

	// UpdateAdaptiveData feeds the generator one decoded sentence and the
	// outcomes assigned to its tokens.
	UpdateAdaptiveData(tokens []string, outcomes []string)

	// ClearAdaptiveData drops all accumulated state, typically at document
	// boundaries. Resets are best-effort cleanup: callers broadcasting to
	// several generators must deliver to all of them and report failures
	// collected, not fail-fast.
	ClearAdaptiveData() error
}

// ResourceProvider resolves named external artifacts (dictionaries, cluster
// maps) needed by some generators. Returning nil means the resource is not
// available. Thread-safety of a provider is the caller's concern; the
// engine never mutates one.
type ResourceProvider interface {
	Resource(name string) interface{}
}

// ResourceProviderFunc adapts a plain function to ResourceProvider.
type ResourceProviderFunc func(name string) interface{}

// Resource calls f.
func (f ResourceProviderFunc) Resource(name string) interface{} {
	return f(name)
}

// MapResourceProvider serves resources from an in-memory map. This is the
// provider shape produced by loading a model package.
type MapResourceProvider map[string]interface{}

// Resource returns the mapped artifact, or nil when absent.
func (m MapResourceProvider) Resource(name string) interface{} {
	return m[name]
}

// Factory builds the feature generator of one descriptor node. A fresh
// factory is constructed per node, initialized by the engine into a
// BuildContext, and asked once for its generator. Create may return a nil
// generator when the node exists purely to contribute serializer mappings.
type Factory interface {
	Create(ctx *BuildContext) (FeatureGenerator, error)
}

// FactoryConstructor produces a fresh Factory for one descriptor node.
// Constructors take no arguments; everything a factory needs arrives
// through the BuildContext.
type FactoryConstructor func() (Factory, error)

// SerializerMappingProvider is implemented by factories whose generators
// reference packaged resources. The mapping associates resource names with
// the serializers that persist and restore them, and must be computable
// without live resources: discovery runs it against a context built with no
// resource provider.
type SerializerMappingProvider interface {
	SerializerMapping(ctx *BuildContext) (map[string]model.ArtifactSerializer, error)
}
