/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: package.go
Description: Model package container for Maylee NLP. A package is a zip file
holding a JSON manifest plus one entry per artifact, each encoded by a
registered serializer type. Provides atomic file helpers for saving and
loading trained models.
*/

package model

import (
	"archive/zip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
)

// ManifestEntry is the zip entry name of the package manifest.
const ManifestEntry = "manifest.json"

// FormatVersion is the package format this release reads and writes.
const FormatVersion = 1

var (
	// ErrInvalidPackage reports a container that is not a readable model package.
	ErrInvalidPackage = errors.New("invalid model package")

	// ErrUnknownSerializerType reports a manifest entry whose serializer
	// type has no registered implementation.
	ErrUnknownSerializerType = errors.New("unknown artifact serializer type")
)

// Manifest describes a model package: identity, provenance, and the
// serializer type of every artifact entry.
type Manifest struct {
	FormatVersion int               `json:"format_version"`
	ID            string            `json:"id"`
	Created       time.Time         `json:"created"`
	Language      string            `json:"language"`
	Type          string            `json:"type"`
	Serializers   map[string]string `json:"serializers"`
	Properties    map[string]string `json:"properties,omitempty"`
}

// Package is an in-memory model package: a manifest plus its artifacts.
type Package struct {
	Manifest  Manifest
	artifacts map[string]interface{}
}

// NewPackage creates an empty package with a fresh ID.
func NewPackage(modelType, language string) *Package {
	return &Package{
		Manifest: Manifest{
			FormatVersion: FormatVersion,
			ID:            uuid.New().String(),
			Created:       time.Now().UTC(),
			Language:      language,
			Type:          modelType,
			Serializers:   make(map[string]string),
			Properties:    make(map[string]string),
		},
		artifacts: make(map[string]interface{}),
	}
}

// Add stores an artifact under an entry name with the serializer type used
// to encode it. Adding the same name twice replaces the previous artifact.
func (p *Package) Add(name, serializerType string, artifact interface{}) {
	if p.artifacts == nil {
		p.artifacts = make(map[string]interface{})
	}
	if p.Manifest.Serializers == nil {
		p.Manifest.Serializers = make(map[string]string)
	}
	p.Manifest.Serializers[name] = serializerType
	p.artifacts[name] = artifact
}

// Artifact returns the artifact stored under name.
func (p *Package) Artifact(name string) (interface{}, bool) {
	artifact, ok := p.artifacts[name]
	return artifact, ok
}

// Names returns the artifact entry names in sorted order.
func (p *Package) Names() []string {
	names := make([]string, 0, len(p.artifacts))
	for name := range p.artifacts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WritePackage writes the package as a zip container: the manifest first,
// then each artifact through its serializer.
func WritePackage(w io.Writer, p *Package) error {
	zw := zip.NewWriter(w)

	mw, err := zw.Create(ManifestEntry)
	if err != nil {
		return fmt.Errorf("failed to create manifest entry: %w", err)
	}
	data, err := json.MarshalIndent(p.Manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if _, err := mw.Write(data); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	for _, name := range p.Names() {
		serializerType := p.Manifest.Serializers[name]
		serializer, ok := SerializerForType(serializerType)
		if !ok {
			return fmt.Errorf("%w: %q for entry %q", ErrUnknownSerializerType, serializerType, name)
		}
		ew, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("failed to create entry %q: %w", name, err)
		}
		if err := serializer.Serialize(ew, p.artifacts[name]); err != nil {
			return fmt.Errorf("failed to serialize entry %q: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize package: %w", err)
	}
	return nil
}

// ReadPackage reads a package back, decoding every artifact through the
// serializer type its manifest records.
func ReadPackage(r io.ReaderAt, size int64) (*Package, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPackage, err)
	}

	mf, err := zr.Open(ManifestEntry)
	if err != nil {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidPackage, ManifestEntry)
	}
	var manifest Manifest
	decodeErr := json.NewDecoder(mf).Decode(&manifest)
	mf.Close()
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: unreadable manifest: %v", ErrInvalidPackage, decodeErr)
	}
	if manifest.FormatVersion != FormatVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d", ErrInvalidPackage, manifest.FormatVersion)
	}

	p := &Package{
		Manifest:  manifest,
		artifacts: make(map[string]interface{}),
	}
	for _, f := range zr.File {
		if f.Name == ManifestEntry {
			continue
		}
		serializerType, ok := manifest.Serializers[f.Name]
		if !ok {
			return nil, fmt.Errorf("%w: entry %q not declared in manifest", ErrInvalidPackage, f.Name)
		}
		serializer, ok := SerializerForType(serializerType)
		if !ok {
			return nil, fmt.Errorf("%w: %q for entry %q", ErrUnknownSerializerType, serializerType, f.Name)
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open entry %q: %w", f.Name, err)
		}
		artifact, err := serializer.Deserialize(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to deserialize entry %q: %w", f.Name, err)
		}
		p.artifacts[f.Name] = artifact
	}
	return p, nil
}

// WritePackageFile saves the package to path, writing through a temp file
// and renaming so readers never observe a half-written model.
func WritePackageFile(path string, p *Package) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".maylee-model-*")
	if err != nil {
		return fmt.Errorf("failed to create temp model file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := WritePackage(tmp, p); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp model file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move model into place: %w", err)
	}
	return nil
}

// ReadPackageFile loads a package from path.
func ReadPackageFile(path string) (*Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat model file: %w", err)
	}
	return ReadPackage(f, stat.Size())
}
