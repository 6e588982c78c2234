package main

import (
	"os"

	"github.com/jstello/SMS-finance-sub000/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
