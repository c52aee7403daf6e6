package main

import (
	"os"

	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
