package main

import (
	"os"

	"github.com/maxviazov/pagewindow/cmd/pagewindow/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
