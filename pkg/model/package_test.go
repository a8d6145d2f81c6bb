/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: package_test.go
Description: Tests for the zip model package container and the serializer
type registry. Covers manifest round-trips, atomic file saves, undeclared
entries, and unknown serializer types.
*/

package model_test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kleascm/maylee-nlp/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSerializerRegistry tests lookup of the built-in serializer types
func TestSerializerRegistry(t *testing.T) {
	raw, ok := model.SerializerForType(model.SerializerTypeRaw)
	require.True(t, ok)
	assert.IsType(t, model.RawSerializer{}, raw)

	dict, ok := model.SerializerForType(model.SerializerTypeDictionary)
	require.True(t, ok)
	assert.IsType(t, model.DictionarySerializer{}, dict)

	_, ok = model.SerializerForType("no-such-type")
	assert.False(t, ok)

	// Built-ins appear in the sorted type listing
	types := model.SerializerTypes()
	assert.Contains(t, types, model.SerializerTypeRaw)
	assert.Contains(t, types, model.SerializerTypeDictionary)
}

// TestRegisterSerializerTypePanics tests the registration guards
func TestRegisterSerializerTypePanics(t *testing.T) {
	assert.Panics(t, func() { model.RegisterSerializerType("", func() model.ArtifactSerializer { return model.RawSerializer{} }) })
	assert.Panics(t, func() { model.RegisterSerializerType("nil-ctor", nil) })
	assert.Panics(t, func() {
		model.RegisterSerializerType(model.SerializerTypeRaw, func() model.ArtifactSerializer { return model.RawSerializer{} })
	})
}

// TestPackageRoundTrip tests writing a package and reading it back
func TestPackageRoundTrip(t *testing.T) {
	p := model.NewPackage("name-finder", "en")
	p.Manifest.Properties["trained_on"] = "conll"
	p.Add("descriptor.xml", model.SerializerTypeRaw, []byte("<featureGenerators/>"))
	p.Add("surnames.dict", model.SerializerTypeDictionary, model.NewDictionary("Smith", "Jones"))

	var buf bytes.Buffer
	require.NoError(t, model.WritePackage(&buf, p))

	restored, err := model.ReadPackage(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	// Manifest survives intact
	assert.Equal(t, p.Manifest.ID, restored.Manifest.ID)
	assert.Equal(t, "name-finder", restored.Manifest.Type)
	assert.Equal(t, "en", restored.Manifest.Language)
	assert.Equal(t, "conll", restored.Manifest.Properties["trained_on"])
	assert.Equal(t, []string{"descriptor.xml", "surnames.dict"}, restored.Names())

	// Artifacts decode through their declared serializers
	descriptor, ok := restored.Artifact("descriptor.xml")
	require.True(t, ok)
	assert.Equal(t, []byte("<featureGenerators/>"), descriptor)

	artifact, ok := restored.Artifact("surnames.dict")
	require.True(t, ok)
	dict, ok := artifact.(*model.Dictionary)
	require.True(t, ok)
	assert.True(t, dict.Contains("smith"))
	assert.True(t, dict.Contains("Jones"))
}

// TestPackageFileRoundTrip tests the atomic save and load helpers
func TestPackageFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.maylee")

	p := model.NewPackage("langdetect", "")
	p.Add("data", model.SerializerTypeRaw, []byte{1, 2, 3})
	require.NoError(t, model.WritePackageFile(path, p))

	// No temp files remain next to the model
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "test.maylee", entries[0].Name())

	restored, err := model.ReadPackageFile(path)
	require.NoError(t, err)
	data, ok := restored.Artifact("data")
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, data)
}

// TestReadPackageRejectsGarbage tests the container validation
func TestReadPackageRejectsGarbage(t *testing.T) {
	junk := []byte("this is not a zip file")
	_, err := model.ReadPackage(bytes.NewReader(junk), int64(len(junk)))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidPackage)
}

// TestReadPackageRejectsMissingManifest tests a zip without the manifest entry
func TestReadPackageRejectsMissingManifest(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	ew, err := zw.Create("payload.bin")
	require.NoError(t, err)
	_, err = ew.Write([]byte("no manifest here"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = model.ReadPackage(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidPackage)
}

// TestReadPackageRejectsWrongVersion tests the format version gate
func TestReadPackageRejectsWrongVersion(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	mw, err := zw.Create(model.ManifestEntry)
	require.NoError(t, err)
	manifest := model.Manifest{FormatVersion: 99, ID: "future", Serializers: map[string]string{}}
	require.NoError(t, json.NewEncoder(mw).Encode(manifest))
	require.NoError(t, zw.Close())

	_, err = model.ReadPackage(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidPackage)
	assert.Contains(t, err.Error(), "99")
}

// TestWritePackageUnknownSerializer tests writing with an unregistered type
func TestWritePackageUnknownSerializer(t *testing.T) {
	p := model.NewPackage("x", "")
	p.Add("data", "no-such-type", []byte("payload"))

	var buf bytes.Buffer
	err := model.WritePackage(&buf, p)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnknownSerializerType)
}

// TestReadPackageUndeclaredEntry tests that stray zip entries are rejected
func TestReadPackageUndeclaredEntry(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	mw, err := zw.Create(model.ManifestEntry)
	require.NoError(t, err)
	manifest := model.Manifest{FormatVersion: model.FormatVersion, ID: "stray", Serializers: map[string]string{}}
	require.NoError(t, json.NewEncoder(mw).Encode(manifest))
	ew, err := zw.Create("undeclared.bin")
	require.NoError(t, err)
	_, err = ew.Write([]byte("junk"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = model.ReadPackage(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidPackage)
	assert.Contains(t, err.Error(), "undeclared.bin")
}
