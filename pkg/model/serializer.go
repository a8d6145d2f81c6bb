/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: serializer.go
Description: Artifact serializer contract and the process-wide serializer type
registry for Maylee NLP. Serializers encode and decode the opaque resources a
model package carries: dictionaries, weight tables, raw descriptor bytes.
*/

package model

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"sync"
)

// ArtifactSerializer encodes and decodes one kind of model artifact.
// Implementations must be safe to use from a zero value.
type ArtifactSerializer interface {
	Serialize(w io.Writer, artifact interface{}) error
	Deserialize(r io.Reader) (interface{}, error)
}

// SerializerConstructor produces a fresh serializer for a registered type name.
type SerializerConstructor func() ArtifactSerializer

var (
	serializerMu    sync.RWMutex
	serializerTypes = make(map[string]SerializerConstructor)
)

// RegisterSerializerType installs a serializer constructor under a type name.
// Type names are written into package manifests, so they must stay stable
// across releases. Panics on duplicate registration: installing the same
// name twice is a programming error, not a runtime condition.
func RegisterSerializerType(name string, ctor SerializerConstructor) {
	serializerMu.Lock()
	defer serializerMu.Unlock()

	if name == "" {
		panic("model: RegisterSerializerType with empty type name")
	}
	if ctor == nil {
		panic("model: RegisterSerializerType with nil constructor")
	}
	if _, dup := serializerTypes[name]; dup {
		panic("model: RegisterSerializerType called twice for type " + name)
	}
	serializerTypes[name] = ctor
}

// SerializerForType returns a serializer for a manifest type name.
func SerializerForType(name string) (ArtifactSerializer, bool) {
	serializerMu.RLock()
	defer serializerMu.RUnlock()

	ctor, ok := serializerTypes[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// SerializerTypes returns the registered type names in sorted order.
func SerializerTypes() []string {
	serializerMu.RLock()
	defer serializerMu.RUnlock()

	names := make([]string, 0, len(serializerTypes))
	for name := range serializerTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TypeNameFor returns the registered type name of a serializer instance.
// Packaging uses it to record the manifest type for serializers discovered
// from descriptors.
func TypeNameFor(serializer ArtifactSerializer) (string, bool) {
	serializerMu.RLock()
	defer serializerMu.RUnlock()

	want := reflect.TypeOf(serializer)
	for name, ctor := range serializerTypes {
		if reflect.TypeOf(ctor()) == want {
			return name, true
		}
	}
	return "", false
}

// RawSerializer passes artifact bytes through untouched. Used for descriptor
// documents and any other entry a package stores verbatim.
type RawSerializer struct{}

// Serialize writes the artifact bytes to w.
func (RawSerializer) Serialize(w io.Writer, artifact interface{}) error {
	data, ok := artifact.([]byte)
	if !ok {
		return fmt.Errorf("raw serializer expects []byte, got %T", artifact)
	}
	_, err := w.Write(data)
	return err
}

// Deserialize reads the entry back as raw bytes.
func (RawSerializer) Deserialize(r io.Reader) (interface{}, error) {
	return io.ReadAll(r)
}

func init() {
	RegisterSerializerType(SerializerTypeRaw, func() ArtifactSerializer { return RawSerializer{} })
	RegisterSerializerType(SerializerTypeDictionary, func() ArtifactSerializer { return DictionarySerializer{} })
}

// Built-in serializer type names, as recorded in package manifests.
const (
	SerializerTypeRaw        = "raw"
	SerializerTypeDictionary = "dictionary"
)
