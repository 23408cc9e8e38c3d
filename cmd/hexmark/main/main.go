package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/hexmark/cmd/hexmark"
	"github.com/arthur-debert/hexmark/pkg/logging"
	"github.com/arthur-debert/hexmark/pkg/output/styles"
)

func main() {
	rootCmd := hexmark.NewRootCmd()
	err := rootCmd.Execute()
	_ = logging.Close()
	if err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
