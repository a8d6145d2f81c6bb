/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: descriptor_test.go
Description: Tests for descriptor parsing and element enumeration. Covers
nested generator trees, attribute and text capture, document-order walks,
and the malformed-input failure modes.
*/

package featuregen_test

import (
	"strings"
	"testing"

	"github.com/kleascm/maylee-nlp/pkg/featuregen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseDescriptor tests parsing of a nested descriptor tree
func TestParseDescriptor(t *testing.T) {
	descriptor := `
	<featureGenerators name="pipeline">
		<generator class="cache">
			<generator class="window">
				<generator class="token"/>
				<int name="prevLength">3</int>
				<int name="nextLength">3</int>
			</generator>
		</generator>
	</featureGenerators>`

	root, err := featuregen.ParseDescriptorBytes([]byte(descriptor))
	require.NoError(t, err)
	require.NotNil(t, root)

	// Verify root shape
	assert.Equal(t, featuregen.RootElementName, root.Name)
	assert.Equal(t, "pipeline", root.Attr("name"))
	require.Len(t, root.Children, 1)

	// Verify the nested generator chain
	cache := root.Children[0]
	assert.True(t, cache.IsGenerator())
	assert.Equal(t, "cache", cache.Attr("class"))
	require.Len(t, cache.Children, 1)

	window := cache.Children[0]
	assert.Equal(t, "window", window.Attr("class"))
	require.Len(t, window.Children, 3)

	// Children keep document order
	assert.Equal(t, "generator", window.Children[0].Name)
	assert.Equal(t, "int", window.Children[1].Name)
	assert.Equal(t, "prevLength", window.Children[1].Attr("name"))
	assert.Equal(t, "3", window.Children[1].Text)
	assert.Equal(t, "nextLength", window.Children[2].Attr("name"))
}

// TestParseDescriptorLeafText tests that leaf text survives surrounding whitespace
func TestParseDescriptorLeafText(t *testing.T) {
	descriptor := `<generator class="prefix"><int name="length">  7  </int></generator>`

	root, err := featuregen.ParseDescriptorBytes([]byte(descriptor))
	require.NoError(t, err)
	require.Len(t, root.Children, 1)

	// Raw text is kept; the build step trims it
	assert.Equal(t, "  7  ", root.Children[0].Text)
}

// TestParseDescriptorMalformed tests that broken markup fails with the format error
func TestParseDescriptorMalformed(t *testing.T) {
	cases := []struct {
		name       string
		descriptor string
	}{
		{"unclosed root", `<featureGenerators><generator class="token">`},
		{"mismatched tags", `<featureGenerators></generator>`},
		{"empty input", ``},
		{"junk after root", `<featureGenerators/><generator class="token"/>`},
		{"text after root", `<featureGenerators/>trailing`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := featuregen.ParseDescriptorBytes([]byte(tc.descriptor))
			require.Error(t, err)
			assert.ErrorIs(t, err, featuregen.ErrMalformedDescriptor)
			assert.ErrorIs(t, err, featuregen.ErrInvalidFormat)
		})
	}
}

// TestDescriptorElements tests the flat document-order enumeration of all elements
func TestDescriptorElements(t *testing.T) {
	descriptor := `
	<featureGenerators>
		<generator class="A">
			<generator class="B"/>
			<generator class="C"/>
		</generator>
	</featureGenerators>`

	elements, err := featuregen.DescriptorElements(strings.NewReader(descriptor))
	require.NoError(t, err)

	// Root plus three generators, in document order
	require.Len(t, elements, 4)
	assert.Equal(t, featuregen.RootElementName, elements[0].Name)
	assert.Equal(t, "A", elements[1].Attr("class"))
	assert.Equal(t, "B", elements[2].Attr("class"))
	assert.Equal(t, "C", elements[3].Attr("class"))
}

// TestDescriptorElementsIncludesLeaves tests that typed leaves appear in the walk
func TestDescriptorElementsIncludesLeaves(t *testing.T) {
	descriptor := `<generator class="prefix"><int name="length">4</int></generator>`

	elements, err := featuregen.DescriptorElements(strings.NewReader(descriptor))
	require.NoError(t, err)

	require.Len(t, elements, 2)
	assert.Equal(t, "generator", elements[0].Name)
	assert.Equal(t, "int", elements[1].Name)
	assert.False(t, elements[1].IsGenerator())
}
