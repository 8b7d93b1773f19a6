package main

import (
	"fmt"
	"os"

	"compliance-ai/backend/cmd/findings/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
