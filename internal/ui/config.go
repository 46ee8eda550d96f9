package ui

import (
	"bufio"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pulso-tools/pulso/internal/config"
	"github.com/pulso-tools/pulso/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  pulso config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive()
		},
	}
}

func runConfigInteractive() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(cfg)

	// Ask if user wants to edit
	if !promptYesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	// Interactive editing
	reader := bufio.NewReader(os.Stdin)

	cfg.Reports.Dir = promptValue(reader, "Report directory", cfg.Reports.Dir)
	cfg.Storage.DBPath = promptValue(reader, "Database path", cfg.Storage.DBPath)
	cfg.AI.Model = promptValue(reader, "AI model", cfg.AI.Model)
	cfg.AI.BaseURL = promptValue(reader, "AI base URL (empty for OpenAI)", cfg.AI.BaseURL)
	cfg.UI.Theme = promptTheme(reader, cfg.UI.Theme)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("\nConfiguration saved!")
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Println("──────────────────────")
	fmt.Println("[reports]")
	fmt.Printf("  dir      = %s\n", cfg.Reports.Dir)
	fmt.Println("\n[storage]")
	fmt.Printf("  db_path  = %s\n", cfg.Storage.DBPath)
	fmt.Println("\n[ai]")
	fmt.Printf("  model    = %s\n", cfg.AI.Model)
	fmt.Printf("  base_url = %s\n", cfg.AI.BaseURL)
	fmt.Println("\n[ui]")
	fmt.Printf("  theme    = %s\n", cfg.UI.Theme)
}

func promptYesNo(question string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Printf("  %s: ", label)
	} else {
		fmt.Printf("  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptTheme(reader *bufio.Reader, current string) string {
	names := theme.Names()
	options := strings.Join(names, ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, label, current))
		if slices.Contains(names, value) {
			return value
		}
		fmt.Printf("  Invalid theme %q. Available: %s\n", value, options)
	}
}
