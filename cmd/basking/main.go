package main

import (
	"os"

	"basking/cmd/basking/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
