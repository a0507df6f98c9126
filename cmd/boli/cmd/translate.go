package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/corey/boli/internal/domain/translator"
	"github.com/spf13/cobra"
)

var (
	flagDirection string
	flagPhrase    bool
	flagModel     bool
)

var translateCmd = &cobra.Command{
	Use:   "translate [text...]",
	Short: "Translate between Hinglish and Kumaoni",
	Long: `Translate text using the rule-based engine. Without --direction the
input language is detected and translation runs toward the other one.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranslate,
}

func runTranslate(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	text := strings.Join(args, " ")

	if flagModel {
		if engine.Generator == nil || !engine.Generator.Available() {
			return fmt.Errorf("generative backend not available; check ollama settings")
		}
		out, err := engine.Generator.Translate(context.Background(), text)
		if err != nil {
			return err
		}
		fmt.Print(formatTranslation(out, translator.HinglishToKumaoni))
		return nil
	}

	if flagDirection == "" {
		out, dir := engine.AutoTranslate(text)
		fmt.Print(formatTranslation(out, dir))
		return nil
	}

	dir, err := translator.ParseDirection(flagDirection)
	if err != nil {
		return err
	}
	var out string
	if flagPhrase {
		out = engine.Translator.TranslatePhrase(text, dir)
	} else {
		out = engine.Translator.Translate(text, dir)
	}
	fmt.Print(formatTranslation(out, dir))
	return nil
}

func init() {
	translateCmd.Flags().StringVarP(&flagDirection, "direction", "d", "", "hinglish_to_kumaoni or kumaoni_to_hinglish (default: auto-detect)")
	translateCmd.Flags().BoolVar(&flagPhrase, "phrase", false, "exact phrase lookup before word-by-word fallback")
	translateCmd.Flags().BoolVar(&flagModel, "model", false, "translate with the generative backend instead of the rule engine")
}
