package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/hexmark/cmd/hexmark"
	"github.com/arthur-debert/hexmark/internal/version"
)

func main() {
	rootCmd := hexmark.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "HEXMARK",
		Section: "1",
		Source:  "hexmark " + version.Version,
		Manual:  "hexmark manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
