/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: build.go
Description: Descriptor-driven assembly for the composition engine. Resolves
each generator element to a registered factory, initializes it with typed
parameters and recursively built children, folds multiple children into one
aggregate, and produces the final feature generator. Also hosts the
construction-independent serializer mapping discovery walk.
*/

package featuregen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kleascm/maylee-nlp/pkg/model"
)

// Build assembles the feature generator a parsed descriptor describes.
// A root tagged featureGenerators builds each of its generator children:
// a single child passes through unchanged, several children fold into one
// aggregate in document order, none is a format error. Any other root tag
// is treated as a generator element itself. Construction is all-or-nothing:
// the first failing node aborts the build.
func Build(root *Element, resources ResourceProvider) (FeatureGenerator, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: empty descriptor", ErrMalformedDescriptor)
	}

	if root.Name == RootElementName {
		return buildDocumentRoot(root, resources)
	}

	gen, err := buildGenerator(root, resources)
	if err != nil {
		return nil, err
	}
	if gen == nil {
		return nil, fmt.Errorf("%w: descriptor produced no feature generator", ErrInvalidFormat)
	}
	return gen, nil
}

// BuildReader parses a descriptor from r and builds its generator. The
// reader stays open: the caller owns and closes it.
func BuildReader(r io.Reader, resources ResourceProvider) (FeatureGenerator, error) {
	root, err := ParseDescriptor(r)
	if err != nil {
		return nil, err
	}
	return Build(root, resources)
}

// BuildBytes builds the generator of an in-memory descriptor document.
func BuildBytes(descriptor []byte, resources ResourceProvider) (FeatureGenerator, error) {
	return BuildReader(bytes.NewReader(descriptor), resources)
}

// buildDocumentRoot builds the generator children of a featureGenerators
// root. Elements with other tags at the root level carry no generator
// semantics and are skipped.
func buildDocumentRoot(root *Element, resources ResourceProvider) (FeatureGenerator, error) {
	var produced []FeatureGenerator
	for _, child := range root.Children {
		if !child.IsGenerator() {
			continue
		}
		gen, err := buildGenerator(child, resources)
		if err != nil {
			return nil, err
		}
		if gen != nil {
			produced = append(produced, gen)
		}
	}

	switch len(produced) {
	case 0:
		return nil, fmt.Errorf("%w: descriptor contains no feature generators", ErrInvalidFormat)
	case 1:
		return produced[0], nil
	default:
		return NewAggregatedFeatureGenerator(produced...), nil
	}
}

// buildGenerator resolves one generator element bottom-up: class attribute,
// factory constructor, initialized context, Create. A nil result means the
// node contributes only serializer mappings.
func buildGenerator(el *Element, resources ResourceProvider) (FeatureGenerator, error) {
	class := strings.TrimSpace(el.Attr("class"))
	if class == "" {
		return nil, fmt.Errorf("%w on element <%s>", ErrMissingClassAttribute, el.Name)
	}

	ctor, ok := lookupFactory(class)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGeneratorClass, class)
	}

	factory, err := ctor()
	if err != nil {
		return nil, fmt.Errorf("%w: class %q: %v", ErrFactoryInstantiation, class, err)
	}

	ctx, err := newBuildContext(el, resources)
	if err != nil {
		return nil, err
	}

	gen, err := factory.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("create %q: %w", class, err)
	}
	return gen, nil
}

// newBuildContext initializes one node: child generators are built first,
// depth-first in document order, and stored under dense synthetic keys;
// typed leaves are parsed by tag into the same store. More than one produced
// child is folded into a single aggregate under GeneratorKey(0), which is
// how factories address their children afterwards.
func newBuildContext(el *Element, resources ResourceProvider) (*BuildContext, error) {
	params := newParamStore()

	var produced []FeatureGenerator
	for _, child := range el.Children {
		if child.IsGenerator() {
			gen, err := buildGenerator(child, resources)
			if err != nil {
				return nil, err
			}
			if gen == nil {
				continue
			}
			params.put(GeneratorKey(len(produced)), generatorValue(gen))
			produced = append(produced, gen)
			continue
		}
		if err := putLeafParam(params, child); err != nil {
			return nil, err
		}
	}

	if len(produced) > 1 {
		for i := range produced {
			params.remove(GeneratorKey(i))
		}
		params.put(GeneratorKey(0), generatorValue(NewAggregatedFeatureGenerator(produced...)))
	}

	return &BuildContext{element: el, params: params, resources: resources}, nil
}

// putLeafParam parses one typed leaf element into the store. The tag selects
// the type, the name attribute the key, the trimmed text the literal.
func putLeafParam(params *paramStore, leaf *Element) error {
	name := strings.TrimSpace(leaf.Attr("name"))
	if name == "" {
		return fmt.Errorf("%w: <%s> element without a name attribute", ErrInvalidFormat, leaf.Name)
	}
	text := strings.TrimSpace(leaf.Text)

	switch leaf.Name {
	case "int":
		v, err := strconv.Atoi(text)
		if err != nil {
			return fmt.Errorf("%w: parameter %q is not an int: %q", ErrInvalidParameterType, name, text)
		}
		params.put(name, intValue(v))
	case "long":
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: parameter %q is not a long: %q", ErrInvalidParameterType, name, text)
		}
		params.put(name, longValue(v))
	case "float":
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return fmt.Errorf("%w: parameter %q is not a float: %q", ErrInvalidParameterType, name, text)
		}
		params.put(name, floatValue(float32(v)))
	case "double":
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("%w: parameter %q is not a double: %q", ErrInvalidParameterType, name, text)
		}
		params.put(name, doubleValue(v))
	case "str":
		params.put(name, strValue(text))
	case "bool":
		v, err := strconv.ParseBool(text)
		if err != nil {
			return fmt.Errorf("%w: parameter %q is not a bool: %q", ErrInvalidParameterType, name, text)
		}
		params.put(name, boolValue(v))
	default:
		return fmt.Errorf("%w: unexpected element <%s>", ErrInvalidParameterType, leaf.Name)
	}
	return nil
}

// ExtractSerializerMappings discovers the artifact serializers a descriptor
// needs, without constructing the final generator and without a resource
// provider: mappings must be discoverable before resources exist, at model
// packaging time. The walk visits every generator element at any depth in
// document order, independent of whether a parent factory would consume it.
// Nodes whose dry-run initialization fails with a format-family error
// contribute nothing and are skipped; unknown classes and constructor
// failures abort the extraction. Later nodes overwrite earlier entries
// sharing a key.
func ExtractSerializerMappings(r io.Reader) (map[string]model.ArtifactSerializer, error) {
	root, err := ParseDescriptor(r)
	if err != nil {
		return nil, err
	}
	if root.Name != RootElementName {
		return nil, fmt.Errorf("%w: root element <%s>, want <%s>",
			ErrUnsupportedDescriptorFormat, root.Name, RootElementName)
	}

	mappings := make(map[string]model.ArtifactSerializer)
	var walk func(e *Element) error
	walk = func(e *Element) error {
		if e.IsGenerator() {
			if err := nodeSerializerMapping(e, mappings); err != nil {
				return err
			}
		}
		for _, child := range e.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return mappings, nil
}

// ExtractSerializerMappingsBytes runs discovery over an in-memory document.
func ExtractSerializerMappingsBytes(descriptor []byte) (map[string]model.ArtifactSerializer, error) {
	return ExtractSerializerMappings(bytes.NewReader(descriptor))
}

// nodeSerializerMapping collects one node's contribution. A blank class
// contributes nothing; the walk still descends into the children. The only
// swallowed failures are ErrInvalidFormat ones: many nodes are meaningful
// only with live resources and are expected to fail in this dry run.
func nodeSerializerMapping(el *Element, mappings map[string]model.ArtifactSerializer) error {
	class := strings.TrimSpace(el.Attr("class"))
	if class == "" {
		return nil
	}

	ctor, ok := lookupFactory(class)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGeneratorClass, class)
	}
	factory, err := ctor()
	if err != nil {
		return fmt.Errorf("%w: class %q: %v", ErrFactoryInstantiation, class, err)
	}

	provider, ok := factory.(SerializerMappingProvider)
	if !ok {
		return nil
	}

	ctx, err := newBuildContext(el, nil)
	if err != nil {
		if errors.Is(err, ErrInvalidFormat) {
			return nil
		}
		return err
	}

	contributed, err := provider.SerializerMapping(ctx)
	if err != nil {
		if errors.Is(err, ErrInvalidFormat) {
			return nil
		}
		return err
	}
	for key, serializer := range contributed {
		mappings[key] = serializer
	}
	return nil
}
