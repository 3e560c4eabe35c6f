package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hpungsan/toolshed/internal/config"
	"github.com/hpungsan/toolshed/internal/db"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// storelessCommands run without opening the database.
var storelessCommands = map[string]bool{
	"make-csv-template": true,
	"help":              true,
}

func isStoreless() bool {
	if len(os.Args) < 2 {
		return true
	}
	arg := os.Args[1]
	if storelessCommands[arg] {
		return true
	}
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v"
}

func main() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not determine home directory: %v\n", err)
		os.Exit(1)
	}

	baseDir := filepath.Join(homeDir, ".toolshed")

	cfg, err := config.Load(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	// make-csv-template, help, and version never touch storage
	if isStoreless() {
		app := newCLIApp(nil, cfg, baseDir)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	database, err := db.Init(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	db.ConfigurePool(database, cfg)

	app := newCLIApp(database, cfg, baseDir)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
