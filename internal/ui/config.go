package ui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tablero/internal/config"
	"github.com/javiermolinar/tablero/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the configuration",
		Long: `Show the active configuration and where it was loaded from.

If no config file exists yet, one is created with default values.

Example:
  tablero config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return showConfig(a.config)
		},
	}
}

func showConfig(cfg *config.Config) error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	printConfig(cfg)
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println(formatHeader("[schedule]"))
	fmt.Printf("  focus_start = %q\n", cfg.Schedule.FocusStart)
	fmt.Printf("  focus_end   = %q\n", cfg.Schedule.FocusEnd)
	fmt.Printf("  drop_policy = %q\n", cfg.Schedule.DropPolicy)

	fmt.Println(formatHeader("[storage]"))
	fmt.Printf("  db_path = %q\n", cfg.Storage.DBPath)

	fmt.Println(formatHeader("[ui]"))
	fmt.Printf("  theme = %q %s\n", cfg.UI.Theme, formatMuted(fmt.Sprintf("(available: %v)", theme.Names())))
}
