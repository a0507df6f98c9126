package cmd

import (
	"fmt"

	"github.com/corey/boli/internal/app"
	"github.com/spf13/cobra"
)

var (
	flagGrammarOnly  bool
	flagPatternsOnly bool
)

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine grammar rules and patterns from the corpus",
	Long: `Analyze the example corpus, derive grammar rules, idioms,
expressions and collocations, persist them and reload the engine.`,
	RunE: runMine,
}

func runMine(cmd *cobra.Command, args []string) error {
	if flagGrammarOnly && flagPatternsOnly {
		return fmt.Errorf("--grammar-only and --patterns-only are mutually exclusive")
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	report, err := engine.Mine(app.MineOptions{
		GrammarOnly:  flagGrammarOnly,
		PatternsOnly: flagPatternsOnly,
	})
	if err != nil {
		return err
	}
	fmt.Print(formatMineReport(report))
	return nil
}

func init() {
	mineCmd.Flags().BoolVar(&flagGrammarOnly, "grammar-only", false, "mine grammar rules, verb forms and structures only")
	mineCmd.Flags().BoolVar(&flagPatternsOnly, "patterns-only", false, "mine idioms, expressions and collocations only")
}
