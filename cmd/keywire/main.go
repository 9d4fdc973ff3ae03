package main

import (
	"os"

	"keywire/cmd/keywire/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
