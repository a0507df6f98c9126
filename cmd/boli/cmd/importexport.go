package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/corey/boli/internal/domain/trainer"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Bulk-import words, phrases and examples from a JSON file",
	Long: `Import a JSON document of the shape

  {"words": {...}, "phrases": {...}, "examples": [{"hinglish": ..., "kumaoni": ...}]}

Duplicates are skipped; a failing entry does not abort the rest.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var doc trainer.ImportDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		engine, err := newEngine()
		if err != nil {
			return err
		}
		defer engine.Close()

		stats := engine.Trainer.BulkImport(doc)
		fmt.Printf("%simported%s %d words, %d phrases, %d examples",
			colorGreen, colorReset, stats.Words, stats.Phrases, stats.Examples)
		if stats.Failed > 0 {
			fmt.Printf(" %s(%d failed)%s", colorYellow, stats.Failed, colorReset)
		}
		fmt.Println()
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [file.json]",
	Short: "Export all teachable data as one JSON document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		defer engine.Close()

		doc := engine.Trainer.Export()
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		out = append(out, '\n')

		if len(args) == 1 {
			if err := os.WriteFile(args[0], out, 0o644); err != nil {
				return err
			}
			fmt.Printf("%sexported to %s%s\n", colorGreen, args[0], colorReset)
			return nil
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}
