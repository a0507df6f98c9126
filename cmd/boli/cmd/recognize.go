package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var recognizeCmd = &cobra.Command{
	Use:   "recognize [text...]",
	Short: "Scan text for known idioms, expressions and collocations",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		defer engine.Close()

		result := engine.Recognizer.Recognize(strings.Join(args, " "))
		fmt.Print(formatRecognition(result))
		return nil
	},
}
