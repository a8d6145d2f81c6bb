/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: version.go
Description: Version command implementation. Prints toolkit version and
build environment details.
*/

package commands

import (
	"fmt"
	"runtime"

	maylee "github.com/kleascm/maylee-nlp"
	"github.com/spf13/cobra"
)

// RunVersion prints version and build information
func RunVersion(cmd *cobra.Command, args []string) {
	fmt.Println("Maylee NLP Toolkit")
	fmt.Printf("  Version:    %s\n", maylee.Version)
	fmt.Printf("  Go version: %s\n", runtime.Version())
	fmt.Printf("  Platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
