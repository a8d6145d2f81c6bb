/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: registry.go
Description: Process-wide factory registry for the composition engine.
Descriptors name components by string; the registry maps those class names
to factory constructors. Built-ins register themselves at init, embedding
applications add their own before building.
*/

package featuregen

import (
	"sort"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]FactoryConstructor)
)

// Register installs a factory constructor under a class name, making it
// resolvable from descriptors. Registration happens at process startup;
// the registry is read-only during builds. Panics on empty or duplicate
// names: that is a programming error, not a runtime condition.
func Register(name string, ctor FactoryConstructor) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if name == "" {
		panic("featuregen: Register with empty class name")
	}
	if ctor == nil {
		panic("featuregen: Register with nil constructor")
	}
	if _, dup := registry[name]; dup {
		panic("featuregen: Register called twice for class " + name)
	}
	registry[name] = ctor
}

// lookupFactory resolves a class name to its registered constructor.
func lookupFactory(name string) (FactoryConstructor, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	ctor, ok := registry[name]
	return ctor, ok
}

// RegisteredClasses returns all registered class names in sorted order.
func RegisteredClasses() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
