package main

import (
	"fmt"
	"os"

	"perprunner-go/cmd/perprunner/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "perprunner: %v\n", err)
		os.Exit(1)
	}
}
