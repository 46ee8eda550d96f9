package main

import (
	"fmt"
	"os"

	"github.com/pulso-tools/pulso/internal/config"
	"github.com/pulso-tools/pulso/internal/db"
	"github.com/pulso-tools/pulso/internal/report"
	"github.com/pulso-tools/pulso/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	repo, err := db.New(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = repo.Close() }()

	app := ui.NewApp(repo, report.NewLoader(cfg.Reports.Dir), cfg)
	return app.Execute()
}
