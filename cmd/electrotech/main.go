package main

import (
	"os"

	"github.com/electrotech-dev/electrotech/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
