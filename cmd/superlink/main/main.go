package main

import (
	"fmt"
	"os"

	superlink "github.com/arthur-debert/superlink/cmd/superlink"
	"github.com/arthur-debert/superlink/pkg/ui/styles"
)

func main() {
	rootCmd := superlink.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.Get("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
