/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: descriptor.go
Description: Descriptor document parsing for the feature generator composition
engine. Parses the XML pipeline configuration into an immutable element tree
and provides the flat document-order enumeration used by inspection tooling.
*/

package featuregen

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const (
	// RootElementName is the document root tag of a generator descriptor.
	RootElementName = "featureGenerators"

	// GeneratorElementName tags an element resolved through the factory
	// registry.
	GeneratorElementName = "generator"
)

// Element is one node of a parsed descriptor: a tag, its attributes, its
// child elements in document order, and the text content of leaf elements.
// Elements are immutable once parsed.
type Element struct {
	Name       string
	Attributes map[string]string
	Children   []*Element
	Text       string
}

// Attr returns the named attribute value, or "" when absent.
func (e *Element) Attr(name string) string {
	return e.Attributes[name]
}

// IsGenerator reports whether the element is a generator node.
func (e *Element) IsGenerator() bool {
	return e.Name == GeneratorElementName
}

// ParseDescriptor parses a descriptor document into its element tree and
// returns the root. Input that is not well-formed markup fails with
// ErrMalformedDescriptor. The reader is never closed: the caller owns it.
func ParseDescriptor(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var root *Element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			if root == nil {
				return nil, fmt.Errorf("%w: document has no root element", ErrMalformedDescriptor)
			}
			return root, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDescriptor, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil {
				return nil, fmt.Errorf("%w: content after root element", ErrMalformedDescriptor)
			}
			root, err = parseElement(dec, t)
			if err != nil {
				return nil, err
			}
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return nil, fmt.Errorf("%w: text outside root element", ErrMalformedDescriptor)
			}
		}
	}
}

// ParseDescriptorBytes parses an in-memory descriptor document.
func ParseDescriptorBytes(descriptor []byte) (*Element, error) {
	return ParseDescriptor(bytes.NewReader(descriptor))
}

// parseElement consumes tokens up to the matching end element. Text content
// is kept only for leaf elements; whitespace between children is not text.
func parseElement(dec *xml.Decoder, start xml.StartElement) (*Element, error) {
	el := &Element{
		Name:       start.Name.Local,
		Attributes: make(map[string]string, len(start.Attr)),
	}
	for _, attr := range start.Attr {
		el.Attributes[attr.Name.Local] = attr.Value
	}

	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDescriptor, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := parseElement(dec, t)
			if err != nil {
				return nil, err
			}
			el.Children = append(el.Children, child)
		case xml.EndElement:
			if len(el.Children) == 0 {
				el.Text = text.String()
			}
			return el, nil
		case xml.CharData:
			text.Write(t)
		}
	}
}

// DescriptorElements parses a descriptor and returns every element in
// document order, parents before children. This is a flat introspection
// view independent of generator semantics.
func DescriptorElements(r io.Reader) ([]*Element, error) {
	root, err := ParseDescriptor(r)
	if err != nil {
		return nil, err
	}

	var elements []*Element
	var walk func(e *Element)
	walk = func(e *Element) {
		elements = append(elements, e)
		for _, child := range e.Children {
			walk(child)
		}
	}
	walk(root)
	return elements, nil
}
