package cmd

import (
	"fmt"

	"github.com/corey/boli/internal/app"
	"github.com/corey/boli/internal/config"
	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagDataDir string
)

var rootCmd = &cobra.Command{
	Use:   "boli",
	Short: "boli — Hinglish–Kumaoni translation engine",
	Long:  "Rule-based translation, pattern mining and interactive teaching for the Kumaoni language.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves configuration with CLI flags taking precedence
// over file and environment.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagDataDir != "" {
		cfg.Data.Dir = flagDataDir
	}
	return cfg, nil
}

// newEngine builds the full engine for a command run. Callers must
// Close it.
func newEngine() (*app.Engine, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	engine, err := app.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("start engine: %w", err)
	}
	return engine, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (overrides config)")

	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(teachCmd)
	rootCmd.AddCommand(mineCmd)
	rootCmd.AddCommand(recognizeCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
}
