/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: store.go
Description: Corpus management system for Maylee NLP. Provides efficient
storage and retrieval of collected documents with checksum deduplication
and size-bounded cleanup. Implements thread-safe operations for concurrent
collectors.
*/

package corpus

import (
	"crypto/sha256"
	"encoding/hex"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Document is one collected text with its provenance.
type Document struct {
	ID        string            // Unique document ID
	Text      string            // Document text content
	Source    string            // Name of the source that produced it
	URL       string            // Origin URL when fetched from the web
	Language  string            // Language tag when known
	Collected time.Time         // Collection timestamp
	Checksum  string            // SHA-256 of the text, hex encoded
	Metadata  map[string]string // Source-specific extras
}

// NewDocument creates a document with a fresh ID and its content checksum.
func NewDocument(text, source string) *Document {
	sum := sha256.Sum256([]byte(text))
	return &Document{
		ID:        uuid.New().String(),
		Text:      text,
		Source:    source,
		Collected: time.Now().UTC(),
		Checksum:  hex.EncodeToString(sum[:]),
	}
}

// Store manages the collection of documents
// Provides efficient storage, deduplication, and cleanup operations
type Store struct {
	documents  map[string]*Document // Map of document ID to document
	byChecksum map[string]string    // Map of checksum to document ID
	mu         sync.RWMutex         // Read-write mutex for thread safety

	// Statistics
	size       int
	maxSize    int
	duplicates int64
}

// NewStore creates a new document store
// Initializes the internal data structures for document management
func NewStore() *Store {
	return &Store{
		documents:  make(map[string]*Document),
		byChecksum: make(map[string]string),
		maxSize:    10000, // Default maximum size
	}
}

// Add adds a document to the store
// Returns false when an identical text is already stored
func (s *Store) Add(doc *Document) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Identical content is a duplicate regardless of source
	if _, exists := s.byChecksum[doc.Checksum]; exists {
		s.duplicates++
		return false
	}

	// Check if store is full
	if s.size >= s.maxSize {
		s.cleanupInternal()
	}

	s.documents[doc.ID] = doc
	s.byChecksum[doc.Checksum] = doc.ID
	s.size++
	return true
}

// Get retrieves a document by ID
// Returns nil if the document doesn't exist
func (s *Store) Get(id string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.documents[id]
}

// GetRandom returns a random selection of documents
// Useful for sampling training batches
func (s *Store) GetRandom(count int) []*Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if count <= 0 || s.size == 0 {
		return nil
	}

	documents := make([]*Document, 0, s.size)
	for _, doc := range s.documents {
		documents = append(documents, doc)
	}

	rand.Shuffle(len(documents), func(i, j int) {
		documents[i], documents[j] = documents[j], documents[i]
	})

	if count > len(documents) {
		count = len(documents)
	}
	return documents[:count]
}

// Remove removes a document from the store
// Returns true if the document was found and removed
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, exists := s.documents[id]
	if !exists {
		return false
	}
	delete(s.documents, id)
	delete(s.byChecksum, doc.Checksum)
	s.size--
	return true
}

// Size returns the current number of documents in the store
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size
}

// SetMaxSize sets the maximum size of the store
// Triggers cleanup if the current size exceeds the new maximum
func (s *Store) SetMaxSize(maxSize int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.maxSize = maxSize
	if s.size > maxSize {
		s.cleanupInternal()
	}
}

// cleanupInternal evicts the oldest documents until the store fits its
// maximum again. Callers must hold the write lock.
func (s *Store) cleanupInternal() int {
	if s.size <= s.maxSize {
		return 0
	}

	documents := make([]*Document, 0, s.size)
	for _, doc := range s.documents {
		documents = append(documents, doc)
	}

	// Sort by collection time, oldest first
	for i := 0; i < len(documents)-1; i++ {
		for j := i + 1; j < len(documents); j++ {
			if documents[j].Collected.Before(documents[i].Collected) {
				documents[i], documents[j] = documents[j], documents[i]
			}
		}
	}

	toRemove := s.size - s.maxSize
	if toRemove > len(documents) {
		toRemove = len(documents)
	}

	removed := 0
	for i := 0; i < toRemove; i++ {
		delete(s.documents, documents[i].ID)
		delete(s.byChecksum, documents[i].Checksum)
		removed++
	}

	s.size -= removed
	return removed
}

// GetAll returns all documents in the store
// Useful for corpus analysis and training set export
func (s *Store) GetAll() []*Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	documents := make([]*Document, 0, s.size)
	for _, doc := range s.documents {
		documents = append(documents, doc)
	}
	return documents
}

// GetStats returns store statistics
// Provides information about corpus composition
func (s *Store) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make(map[string]interface{})
	stats["size"] = s.size
	stats["max_size"] = s.maxSize
	stats["duplicates_rejected"] = s.duplicates

	// Calculate source distribution and text volume
	sourceCount := make(map[string]int)
	totalBytes := 0
	for _, doc := range s.documents {
		sourceCount[doc.Source]++
		totalBytes += len(doc.Text)
	}

	stats["source_distribution"] = sourceCount
	stats["total_bytes"] = totalBytes
	if s.size > 0 {
		stats["avg_bytes"] = float64(totalBytes) / float64(s.size)
	}

	return stats
}
