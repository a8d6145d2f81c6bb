/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Error taxonomy for the feature generator composition engine.
Descriptor format problems form one error family rooted at ErrInvalidFormat
so callers can classify with errors.Is; registry and instantiation failures
sit outside the family and always propagate.
*/

package featuregen

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is the root of the descriptor format error family. Every
// error a descriptor's own content can cause wraps it. Serializer discovery
// swallows exactly this family per node, nothing else.
var ErrInvalidFormat = errors.New("invalid descriptor format")

var (
	// ErrMalformedDescriptor reports input that is not well-formed markup.
	ErrMalformedDescriptor = fmt.Errorf("%w: malformed descriptor", ErrInvalidFormat)

	// ErrUnsupportedDescriptorFormat reports a document whose root shape is
	// wrong for the requested entry point.
	ErrUnsupportedDescriptorFormat = fmt.Errorf("%w: unsupported descriptor", ErrInvalidFormat)

	// ErrMissingClassAttribute reports a generator element without a class.
	ErrMissingClassAttribute = fmt.Errorf("%w: missing class attribute", ErrInvalidFormat)

	// ErrInvalidParameterType reports an unrecognized leaf tag or a literal
	// that does not parse as its declared type.
	ErrInvalidParameterType = fmt.Errorf("%w: invalid parameter type", ErrInvalidFormat)

	// ErrMissingParameter reports a required parameter absent from the node.
	ErrMissingParameter = fmt.Errorf("%w: missing parameter", ErrInvalidFormat)

	// ErrParameterTypeMismatch reports a typed accessor called for a name
	// declared with a different type. No numeric coercion is performed.
	ErrParameterTypeMismatch = fmt.Errorf("%w: parameter type mismatch", ErrInvalidFormat)

	// ErrResourceMissing reports a named resource the provider could not
	// supply, including the nil-provider dry run used during serializer
	// discovery.
	ErrResourceMissing = fmt.Errorf("%w: resource missing", ErrInvalidFormat)
)

var (
	// ErrUnknownGeneratorClass reports a class attribute with no registered
	// factory. Not part of the format family: discovery never swallows it.
	ErrUnknownGeneratorClass = errors.New("unknown feature generator class")

	// ErrFactoryInstantiation reports a factory constructor that failed.
	// Not part of the format family: discovery never swallows it.
	ErrFactoryInstantiation = errors.New("feature generator factory instantiation failed")
)
