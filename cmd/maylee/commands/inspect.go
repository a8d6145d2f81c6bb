/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: inspect.go
Description: Inspect command implementation. Parses a feature generator
descriptor and prints every element in document order, optionally with the
serializer mappings the descriptor declares for its resources.
*/

package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/kleascm/maylee-nlp/pkg/featuregen"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunInspect parses a descriptor file and prints its element listing
func RunInspect(cmd *cobra.Command, args []string) error {
	fmt.Println("🔎 Maylee - Descriptor Inspection")
	fmt.Println("=================================")
	fmt.Println()

	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	path := args[0]
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open descriptor: %w", err)
	}
	defer file.Close()

	elements, err := featuregen.DescriptorElements(file)
	if err != nil {
		return fmt.Errorf("failed to parse descriptor: %w", err)
	}

	fmt.Printf("Descriptor: %s\n", path)
	fmt.Printf("Elements:   %d\n", len(elements))
	fmt.Println()

	generators := 0
	for i, el := range elements {
		line := fmt.Sprintf("%3d. <%s>", i+1, el.Name)
		if el.IsGenerator() {
			generators++
			if class := el.Attr("class"); class != "" {
				line += fmt.Sprintf(" class=%q", class)
			}
		}
		if name := el.Attr("name"); name != "" {
			line += fmt.Sprintf(" name=%q", name)
		}
		if el.Text != "" {
			line += fmt.Sprintf(" text=%q", el.Text)
		}
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Printf("📊 %d generator elements, %d parameter elements\n", generators, len(elements)-generators)

	if !viper.GetBool("inspect_serializers") {
		return nil
	}

	// Re-read for the discovery walk
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to rewind descriptor: %w", err)
	}
	mappings, err := featuregen.ExtractSerializerMappings(file)
	if err != nil {
		return fmt.Errorf("failed to discover serializer mappings: %w", err)
	}

	fmt.Println()
	fmt.Println("Serializer mappings:")
	if len(mappings) == 0 {
		fmt.Println("  (none)")
		return nil
	}

	keys := make([]string, 0, len(mappings))
	for key := range mappings {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("  %s -> %T\n", key, mappings[key])
	}
	return nil
}
