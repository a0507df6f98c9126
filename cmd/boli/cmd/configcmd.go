package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Printf("%sdata%s\n", colorBold, colorReset)
		fmt.Printf("  dir         %s%s%s\n", colorCyan, cfg.Data.Dir, colorReset)
		fmt.Printf("  history db  %s%s%s\n", colorCyan, cfg.HistoryPath(), colorReset)
		fmt.Printf("%sollama%s\n", colorBold, colorReset)
		fmt.Printf("  enabled     %s%t%s\n", colorCyan, cfg.Ollama.Enabled, colorReset)
		fmt.Printf("  base url    %s%s%s\n", colorCyan, cfg.Ollama.BaseURL, colorReset)
		fmt.Printf("  model       %s%s%s\n", colorCyan, cfg.Ollama.Model, colorReset)
		fmt.Printf("  timeout     %s%s%s\n", colorCyan, cfg.Ollama.Timeout, colorReset)
		fmt.Printf("%schat%s\n", colorBold, colorReset)
		fmt.Printf("  preference  %s%s%s\n", colorCyan, cfg.Chat.Preference, colorReset)
		return nil
	},
}
