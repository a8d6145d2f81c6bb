/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: context.go
Description: BuildContext carries one initialized descriptor node to its
factory: the typed parameter store, the node's element, and the resource
provider of the surrounding build. Typed accessors come in a required form
and a defaulted form; both enforce exact type tags.
*/

package featuregen

import "fmt"

// GeneratorKey returns the synthetic parameter key of the i-th produced
// generator child. After initialization at most GeneratorKey(0) is
// populated: multiple children are replaced by one aggregate under it.
func GeneratorKey(i int) string {
	return fmt.Sprintf("generator#%d", i)
}

// BuildContext is the initialized view of one descriptor node, handed to
// its factory's Create call. It is valid only for the duration of that
// call; factories must not retain it.
type BuildContext struct {
	element   *Element
	params    *paramStore
	resources ResourceProvider
}

// Element returns the descriptor node this context was built from.
func (c *BuildContext) Element() *Element {
	return c.element
}

// ParameterNames returns the declared parameter names in document order,
// including synthetic generator keys.
func (c *BuildContext) ParameterNames() []string {
	return c.params.orderedNames()
}

// HasParameter reports whether a parameter was declared on the node.
func (c *BuildContext) HasParameter(name string) bool {
	_, ok := c.params.get(name)
	return ok
}

func missingErr(name string) error {
	return fmt.Errorf("%w: %q", ErrMissingParameter, name)
}

func mismatchErr(name string, want, got paramKind) error {
	return fmt.Errorf("%w: parameter %q declared as %s, requested as %s",
		ErrParameterTypeMismatch, name, got, want)
}

// Int returns a required int parameter.
func (c *BuildContext) Int(name string) (int, error) {
	v, ok := c.params.get(name)
	if !ok {
		return 0, missingErr(name)
	}
	if v.kind != kindInt {
		return 0, mismatchErr(name, kindInt, v.kind)
	}
	return v.i, nil
}

// IntDefault returns an int parameter, or def when absent.
func (c *BuildContext) IntDefault(name string, def int) (int, error) {
	v, ok := c.params.get(name)
	if !ok {
		return def, nil
	}
	if v.kind != kindInt {
		return 0, mismatchErr(name, kindInt, v.kind)
	}
	return v.i, nil
}

// Long returns a required long parameter.
func (c *BuildContext) Long(name string) (int64, error) {
	v, ok := c.params.get(name)
	if !ok {
		return 0, missingErr(name)
	}
	if v.kind != kindLong {
		return 0, mismatchErr(name, kindLong, v.kind)
	}
	return v.i64, nil
}

// LongDefault returns a long parameter, or def when absent.
func (c *BuildContext) LongDefault(name string, def int64) (int64, error) {
	v, ok := c.params.get(name)
	if !ok {
		return def, nil
	}
	if v.kind != kindLong {
		return 0, mismatchErr(name, kindLong, v.kind)
	}
	return v.i64, nil
}

// Float returns a required float parameter.
func (c *BuildContext) Float(name string) (float32, error) {
	v, ok := c.params.get(name)
	if !ok {
		return 0, missingErr(name)
	}
	if v.kind != kindFloat {
		return 0, mismatchErr(name, kindFloat, v.kind)
	}
	return v.f32, nil
}

// FloatDefault returns a float parameter, or def when absent.
func (c *BuildContext) FloatDefault(name string, def float32) (float32, error) {
	v, ok := c.params.get(name)
	if !ok {
		return def, nil
	}
	if v.kind != kindFloat {
		return 0, mismatchErr(name, kindFloat, v.kind)
	}
	return v.f32, nil
}

// Double returns a required double parameter.
func (c *BuildContext) Double(name string) (float64, error) {
	v, ok := c.params.get(name)
	if !ok {
		return 0, missingErr(name)
	}
	if v.kind != kindDouble {
		return 0, mismatchErr(name, kindDouble, v.kind)
	}
	return v.f64, nil
}

// DoubleDefault returns a double parameter, or def when absent.
func (c *BuildContext) DoubleDefault(name string, def float64) (float64, error) {
	v, ok := c.params.get(name)
	if !ok {
		return def, nil
	}
	if v.kind != kindDouble {
		return 0, mismatchErr(name, kindDouble, v.kind)
	}
	return v.f64, nil
}

// Str returns a required string parameter.
func (c *BuildContext) Str(name string) (string, error) {
	v, ok := c.params.get(name)
	if !ok {
		return "", missingErr(name)
	}
	if v.kind != kindStr {
		return "", mismatchErr(name, kindStr, v.kind)
	}
	return v.s, nil
}

// StrDefault returns a string parameter, or def when absent.
func (c *BuildContext) StrDefault(name string, def string) (string, error) {
	v, ok := c.params.get(name)
	if !ok {
		return def, nil
	}
	if v.kind != kindStr {
		return "", mismatchErr(name, kindStr, v.kind)
	}
	return v.s, nil
}

// Bool returns a required bool parameter.
func (c *BuildContext) Bool(name string) (bool, error) {
	v, ok := c.params.get(name)
	if !ok {
		return false, missingErr(name)
	}
	if v.kind != kindBool {
		return false, mismatchErr(name, kindBool, v.kind)
	}
	return v.b, nil
}

// BoolDefault returns a bool parameter, or def when absent.
func (c *BuildContext) BoolDefault(name string, def bool) (bool, error) {
	v, ok := c.params.get(name)
	if !ok {
		return def, nil
	}
	if v.kind != kindBool {
		return false, mismatchErr(name, kindBool, v.kind)
	}
	return v.b, nil
}

// Generator returns a required nested generator parameter. Factories address
// children through GeneratorKey; after initialization, several children have
// already been folded into one aggregate under GeneratorKey(0).
func (c *BuildContext) Generator(name string) (FeatureGenerator, error) {
	v, ok := c.params.get(name)
	if !ok {
		return nil, missingErr(name)
	}
	if v.kind != kindGenerator {
		return nil, mismatchErr(name, kindGenerator, v.kind)
	}
	return v.gen, nil
}

// Resource resolves a named artifact through the provider this build was
// started with. A nil provider or an unresolvable name fails with
// ErrResourceMissing, so resource-dependent nodes degrade into a typed
// format error during discovery dry runs instead of dereferencing nil.
func (c *BuildContext) Resource(name string) (interface{}, error) {
	if c.resources == nil {
		return nil, fmt.Errorf("%w: no resource provider for %q", ErrResourceMissing, name)
	}
	resource := c.resources.Resource(name)
	if resource == nil {
		return nil, fmt.Errorf("%w: %q", ErrResourceMissing, name)
	}
	return resource, nil
}
