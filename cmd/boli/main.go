// boli is a Hinglish–Kumaoni translation and language-learning engine.
// Single binary: translate, chat, teach, mine patterns from the corpus.
package main

import (
	"os"

	"github.com/corey/boli/cmd/boli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
