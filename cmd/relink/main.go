package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/relink/pkg/style"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", style.ErrorStyle.Render("Error:"), err)
		os.Exit(1)
	}
}
