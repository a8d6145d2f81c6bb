/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dictionary.go
Description: Dictionary artifact for Maylee NLP. A case-insensitive set of
token sequences with a plain-text line serialization, used by dictionary
feature generators and packaged alongside trained models.
*/

package model

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Dictionary is a case-insensitive set of token sequences. Entries are
// normalized on insertion: lower-cased, inner whitespace collapsed to a
// single space.
type Dictionary struct {
	entries map[string]struct{}
}

// NewDictionary creates a dictionary holding the given entries.
func NewDictionary(entries ...string) *Dictionary {
	d := &Dictionary{entries: make(map[string]struct{}, len(entries))}
	for _, entry := range entries {
		d.Put(entry)
	}
	return d
}

func normalizeEntry(entry string) string {
	return strings.ToLower(strings.Join(strings.Fields(entry), " "))
}

// Put adds an entry. Empty entries are ignored.
func (d *Dictionary) Put(entry string) {
	normalized := normalizeEntry(entry)
	if normalized == "" {
		return
	}
	d.entries[normalized] = struct{}{}
}

// Contains reports whether the entry is in the dictionary.
func (d *Dictionary) Contains(entry string) bool {
	_, ok := d.entries[normalizeEntry(entry)]
	return ok
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Entries returns all entries in sorted order.
func (d *Dictionary) Entries() []string {
	entries := make([]string, 0, len(d.entries))
	for entry := range d.entries {
		entries = append(entries, entry)
	}
	sort.Strings(entries)
	return entries
}

// ReadDictionary reads the plain-text format: one entry per line, blank
// lines skipped.
func ReadDictionary(r io.Reader) (*Dictionary, error) {
	d := NewDictionary()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		d.Put(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	return d, nil
}

// DictionarySerializer round-trips a Dictionary through its line format.
type DictionarySerializer struct{}

// Serialize writes the dictionary entries, one per line, in sorted order.
func (DictionarySerializer) Serialize(w io.Writer, artifact interface{}) error {
	d, ok := artifact.(*Dictionary)
	if !ok {
		return fmt.Errorf("dictionary serializer expects *Dictionary, got %T", artifact)
	}
	bw := bufio.NewWriter(w)
	for _, entry := range d.Entries() {
		if _, err := bw.WriteString(entry); err != nil {
			return fmt.Errorf("failed to write dictionary entry: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write dictionary entry: %w", err)
		}
	}
	return bw.Flush()
}

// Deserialize reads a dictionary back from its line format.
func (DictionarySerializer) Deserialize(r io.Reader) (interface{}, error) {
	return ReadDictionary(r)
}
