/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: source.go
Description: Document sources for corpus collection. A source knows how to
fetch a batch of raw documents; the collector drives sources concurrently
and feeds the store. Includes the filesystem source.
*/

package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Source produces documents for collection. Fetch is called once per
// collection run and must honor ctx cancellation.
type Source interface {
	Name() string
	Description() string
	Fetch(ctx context.Context) ([]*Document, error)
}

// FileSource reads every file matching a glob pattern as one document.
type FileSource struct {
	name    string
	pattern string
}

// NewFileSource creates a filesystem source over a glob pattern,
// e.g. "corpus/raw/*.txt".
func NewFileSource(name, pattern string) *FileSource {
	return &FileSource{name: name, pattern: pattern}
}

// Name returns the source name.
func (s *FileSource) Name() string {
	return s.name
}

// Description returns a human-readable description of the source.
func (s *FileSource) Description() string {
	return fmt.Sprintf("Files matching %s", s.pattern)
}

// Fetch reads all matching files.
func (s *FileSource) Fetch(ctx context.Context) ([]*Document, error) {
	paths, err := filepath.Glob(s.pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to expand pattern %q: %w", s.pattern, err)
	}

	var documents []*Document
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return documents, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		doc := NewDocument(string(data), s.name)
		doc.URL = path
		documents = append(documents, doc)
	}
	return documents, nil
}

// StaticSource serves a fixed set of texts. Used for seeding and in tests.
type StaticSource struct {
	name  string
	texts []string
}

// NewStaticSource creates a source over fixed texts.
func NewStaticSource(name string, texts ...string) *StaticSource {
	return &StaticSource{name: name, texts: texts}
}

// Name returns the source name.
func (s *StaticSource) Name() string {
	return s.name
}

// Description returns a human-readable description of the source.
func (s *StaticSource) Description() string {
	return fmt.Sprintf("%d static texts", len(s.texts))
}

// Fetch wraps every text in a document.
func (s *StaticSource) Fetch(ctx context.Context) ([]*Document, error) {
	documents := make([]*Document, 0, len(s.texts))
	for _, text := range s.texts {
		documents = append(documents, NewDocument(text, s.name))
	}
	return documents, nil
}
