/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: params.go
Description: Typed parameter store for descriptor node initialization. Values
are a tagged union over the six primitive leaf types plus nested generators;
the tag is fixed at insertion and retrieval is exact-match only, never a
coercion. Insertion order is preserved.
*/

package featuregen

import "fmt"

type paramKind uint8

const (
	kindInt paramKind = iota
	kindLong
	kindFloat
	kindDouble
	kindStr
	kindBool
	kindGenerator
)

// String returns the leaf tag spelling of the kind, as used in descriptors
// and error messages.
func (k paramKind) String() string {
	switch k {
	case kindInt:
		return "int"
	case kindLong:
		return "long"
	case kindFloat:
		return "float"
	case kindDouble:
		return "double"
	case kindStr:
		return "str"
	case kindBool:
		return "bool"
	case kindGenerator:
		return "generator"
	default:
		return fmt.Sprintf("paramKind(%d)", uint8(k))
	}
}

// paramValue is the tagged union behind the store. Exactly one field besides
// kind is meaningful, selected by kind.
type paramValue struct {
	kind paramKind
	i    int
	i64  int64
	f32  float32
	f64  float64
	s    string
	b    bool
	gen  FeatureGenerator
}

func intValue(v int) paramValue        { return paramValue{kind: kindInt, i: v} }
func longValue(v int64) paramValue     { return paramValue{kind: kindLong, i64: v} }
func floatValue(v float32) paramValue  { return paramValue{kind: kindFloat, f32: v} }
func doubleValue(v float64) paramValue { return paramValue{kind: kindDouble, f64: v} }
func strValue(v string) paramValue     { return paramValue{kind: kindStr, s: v} }
func boolValue(v bool) paramValue      { return paramValue{kind: kindBool, b: v} }
func generatorValue(g FeatureGenerator) paramValue {
	return paramValue{kind: kindGenerator, gen: g}
}

// paramStore is an insertion-ordered name to value mapping, created fresh
// for one node initialization and discarded once its factory has produced
// a result.
type paramStore struct {
	names  []string
	values map[string]paramValue
}

func newParamStore() *paramStore {
	return &paramStore{values: make(map[string]paramValue)}
}

// put inserts or replaces a value. A replaced name keeps its original
// position in the order.
func (s *paramStore) put(name string, v paramValue) {
	if _, exists := s.values[name]; !exists {
		s.names = append(s.names, name)
	}
	s.values[name] = v
}

func (s *paramStore) get(name string) (paramValue, bool) {
	v, ok := s.values[name]
	return v, ok
}

// remove deletes a name and closes the gap in the order.
func (s *paramStore) remove(name string) {
	if _, exists := s.values[name]; !exists {
		return
	}
	delete(s.values, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
}

// orderedNames returns the parameter names in insertion order.
func (s *paramStore) orderedNames() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}
