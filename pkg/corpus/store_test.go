/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: store_test.go
Description: Tests for the document store and the collector. Covers checksum
deduplication, eviction of the oldest documents, statistics, and concurrent
collection runs with failing sources.
*/

package corpus_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"github.com/kleascm/maylee-nlp/pkg/corpus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDocument tests ID and checksum assignment
func TestNewDocument(t *testing.T) {
	doc := corpus.NewDocument("some text", "test")

	assert.NotEmpty(t, doc.ID)
	assert.Len(t, doc.Checksum, 64)
	assert.Equal(t, "test", doc.Source)
	assert.False(t, doc.Collected.IsZero())

	// Same text, same checksum; different ID
	other := corpus.NewDocument("some text", "test")
	assert.Equal(t, doc.Checksum, other.Checksum)
	assert.NotEqual(t, doc.ID, other.ID)
}

// TestStoreAddDeduplicates tests that identical content is stored once
func TestStoreAddDeduplicates(t *testing.T) {
	store := corpus.NewStore()

	assert.True(t, store.Add(corpus.NewDocument("hello world", "a")))
	assert.False(t, store.Add(corpus.NewDocument("hello world", "b")))
	assert.True(t, store.Add(corpus.NewDocument("different", "a")))

	assert.Equal(t, 2, store.Size())
	stats := store.GetStats()
	assert.Equal(t, int64(1), stats["duplicates_rejected"])
}

// TestStoreGetRemove tests lookup and removal round-trips
func TestStoreGetRemove(t *testing.T) {
	store := corpus.NewStore()
	doc := corpus.NewDocument("content", "test")
	store.Add(doc)

	assert.Equal(t, doc, store.Get(doc.ID))
	assert.Nil(t, store.Get("missing"))

	assert.True(t, store.Remove(doc.ID))
	assert.False(t, store.Remove(doc.ID))
	assert.Equal(t, 0, store.Size())

	// Removal frees the checksum for re-adding
	assert.True(t, store.Add(corpus.NewDocument("content", "test")))
}

// TestStoreEvictsOldest tests size-bounded cleanup order
func TestStoreEvictsOldest(t *testing.T) {
	store := corpus.NewStore()

	oldest := corpus.NewDocument("doc 0", "test")
	oldest.Collected = time.Now().UTC().Add(-time.Hour)
	store.Add(oldest)
	for i := 1; i < 4; i++ {
		store.Add(corpus.NewDocument(fmt.Sprintf("doc %d", i), "test"))
	}

	store.SetMaxSize(2)
	assert.Equal(t, 2, store.Size())
	assert.Nil(t, store.Get(oldest.ID), "the oldest document should be evicted first")
}

// TestStoreGetRandom tests sampling bounds
func TestStoreGetRandom(t *testing.T) {
	store := corpus.NewStore()
	for i := 0; i < 5; i++ {
		store.Add(corpus.NewDocument(fmt.Sprintf("doc %d", i), "test"))
	}

	assert.Len(t, store.GetRandom(3), 3)
	assert.Len(t, store.GetRandom(50), 5)
	assert.Nil(t, store.GetRandom(0))
}

// TestStoreStats tests the composition statistics
func TestStoreStats(t *testing.T) {
	store := corpus.NewStore()
	store.Add(corpus.NewDocument("aaaa", "web"))
	store.Add(corpus.NewDocument("bb", "web"))
	store.Add(corpus.NewDocument("c", "file"))

	stats := store.GetStats()
	assert.Equal(t, 3, stats["size"])
	assert.Equal(t, 7, stats["total_bytes"])

	distribution := stats["source_distribution"].(map[string]int)
	assert.Equal(t, 2, distribution["web"])
	assert.Equal(t, 1, distribution["file"])
}

// failingSource always fails its fetch.
type failingSource struct{}

func (failingSource) Name() string        { return "broken" }
func (failingSource) Description() string { return "always fails" }

func (failingSource) Fetch(ctx context.Context) ([]*corpus.Document, error) {
	return nil, errors.New("connection refused")
}

// testLogger returns a logger that stays quiet during tests.
func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// TestCollector tests a full collection run with duplicates across sources
func TestCollector(t *testing.T) {
	store := corpus.NewStore()
	collector := corpus.NewCollector(store, testLogger(), 2)

	sources := []corpus.Source{
		corpus.NewStaticSource("one", "alpha", "beta"),
		corpus.NewStaticSource("two", "beta", "gamma"),
	}

	stats := collector.Collect(context.Background(), sources)

	assert.Equal(t, 2, stats.Sources)
	assert.Equal(t, int64(4), stats.Documents)
	assert.Equal(t, int64(3), stats.Added)
	assert.Equal(t, int64(1), stats.Duplicates)
	assert.Equal(t, int64(0), stats.Failures)
	assert.Equal(t, 3, store.Size())
}

// TestCollectorSourceFailure tests that failing sources are counted, not fatal
func TestCollectorSourceFailure(t *testing.T) {
	store := corpus.NewStore()
	collector := corpus.NewCollector(store, testLogger(), 1)

	stats := collector.Collect(context.Background(), []corpus.Source{
		failingSource{},
		corpus.NewStaticSource("good", "delta"),
	})

	assert.Equal(t, int64(1), stats.Failures)
	assert.Equal(t, int64(1), stats.Added)
	assert.Equal(t, 1, store.Size())
}

// TestFileSource tests reading documents from a glob pattern
func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeTestFile(dir+"/a.txt", "first file"))
	require.NoError(t, writeTestFile(dir+"/b.txt", "second file"))
	require.NoError(t, writeTestFile(dir+"/skip.md", "not matched"))

	source := corpus.NewFileSource("files", dir+"/*.txt")
	documents, err := source.Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, documents, 2)
	texts := []string{documents[0].Text, documents[1].Text}
	assert.Contains(t, texts, "first file")
	assert.Contains(t, texts, "second file")
}

func writeTestFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
