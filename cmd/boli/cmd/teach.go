package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var teachCmd = &cobra.Command{
	Use:   "teach",
	Short: "Teach new vocabulary, phrases, idioms, examples and rules",
}

var teachWordCmd = &cobra.Command{
	Use:   "word <hinglish> <kumaoni>",
	Short: "Add or correct a word mapping",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		defer engine.Close()

		added, err := engine.Trainer.AddWord(args[0], args[1])
		if err != nil {
			return err
		}
		reportTaught("word", args[0], args[1], added)
		return nil
	},
}

var teachPhraseCmd = &cobra.Command{
	Use:   "phrase <hinglish> <kumaoni>",
	Short: "Add or correct a phrase mapping",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		defer engine.Close()

		added, err := engine.Trainer.AddPhrase(args[0], args[1])
		if err != nil {
			return err
		}
		reportTaught("phrase", args[0], args[1], added)
		return nil
	},
}

var teachIdiomCmd = &cobra.Command{
	Use:   "idiom <kumaoni> <meaning>",
	Short: "Add a Kumaoni idiom with its meaning",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		defer engine.Close()

		if err := engine.Trainer.AddIdiom(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("%slearned idiom: %s — %s%s\n", colorGreen, args[0], args[1], colorReset)
		return nil
	},
}

var teachExampleCmd = &cobra.Command{
	Use:   "example <hinglish> <kumaoni>",
	Short: "Add a sentence pair to the training corpus",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		defer engine.Close()

		added, err := engine.Trainer.AddExample(args[0], args[1])
		if err != nil {
			return err
		}
		if added {
			fmt.Printf("%sadded example (%d total)%s\n", colorGreen, len(engine.Corpus()), colorReset)
		} else {
			fmt.Printf("%sexample already in corpus%s\n", colorGray, colorReset)
		}
		return nil
	},
}

var teachRuleCmd = &cobra.Command{
	Use:   "rule <category> <hinglish> <kumaoni>",
	Short: "Add a grammar rule under a category",
	Long: `Add a grammar transformation rule, e.g.

  boli teach rule verb_endings ta to`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		defer engine.Close()

		if err := engine.Trainer.AddGrammarRule(args[0], args[1], args[2]); err != nil {
			return err
		}
		fmt.Printf("%slearned rule %s: %s → %s%s\n", colorGreen, args[0], args[1], args[2], colorReset)
		return nil
	},
}

func init() {
	teachCmd.AddCommand(teachWordCmd)
	teachCmd.AddCommand(teachPhraseCmd)
	teachCmd.AddCommand(teachIdiomCmd)
	teachCmd.AddCommand(teachExampleCmd)
	teachCmd.AddCommand(teachRuleCmd)
}
