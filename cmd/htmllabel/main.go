// Command htmllabel converts HTML-subset markup into styled text runs.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/htmllabel/cmd/htmllabel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
