package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	fsw "github.com/corey/boli/internal/adapters/fsnotify"
	"github.com/corey/boli/internal/app"
	"github.com/spf13/cobra"
)

var flagWatch bool

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat interactively in Hinglish and Kumaoni",
	Long: `Interactive conversation. Special inputs:

  translate: <text>      translate instead of answering
  learn word: h = k      teach a word mid-conversation
  learn phrase: h = k    teach a phrase mid-conversation
  language: <pref>       switch reply language (kumaoni, hinglish, mixed)
  exit                   end the session`,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	if flagWatch {
		watcher, werr := fsw.Watch(engine.DataDir(), func() {
			if rerr := engine.Reload(); rerr != nil {
				fmt.Fprintf(os.Stderr, "boli: reload failed: %v\n", rerr)
			}
		})
		if werr != nil {
			fmt.Fprintf(os.Stderr, "boli: data watch unavailable: %v\n", werr)
		} else {
			defer watcher.Close()
		}
	}

	fmt.Printf("%sboli%s — namaskar! Type %sexit%s to leave.\n", colorBold, colorReset, colorCyan, colorReset)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%syou>%s ", colorGreen, colorReset)
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "exit") {
			break
		}

		if handled, herr := handleChatCommand(engine, input); handled {
			if herr != nil {
				fmt.Fprintf(os.Stderr, "%s%v%s\n", colorYellow, herr, colorReset)
			}
			continue
		}

		resp, rerr := engine.Responder.Respond(input)
		if rerr != nil {
			return rerr
		}
		fmt.Printf("%sboli>%s %s\n", colorMagenta, colorReset, resp.Text)
		fmt.Printf("      %s%s · %s%s\n", colorGray, resp.Language, resp.Translation, colorReset)
	}
	return scanner.Err()
}

// handleChatCommand intercepts the special chat inputs. Returns
// handled=false for ordinary conversation turns.
func handleChatCommand(engine *app.Engine, input string) (handled bool, err error) {
	switch {
	case strings.HasPrefix(input, "translate:"):
		text := strings.TrimSpace(strings.TrimPrefix(input, "translate:"))
		out, dir := engine.AutoTranslate(text)
		fmt.Print(formatTranslation(out, dir))
		return true, nil

	case strings.HasPrefix(input, "learn word:"):
		h, k, perr := splitTeaching(strings.TrimPrefix(input, "learn word:"))
		if perr != nil {
			return true, perr
		}
		added, aerr := engine.Trainer.AddWord(h, k)
		if aerr != nil {
			return true, aerr
		}
		reportTaught("word", h, k, added)
		return true, nil

	case strings.HasPrefix(input, "learn phrase:"):
		h, k, perr := splitTeaching(strings.TrimPrefix(input, "learn phrase:"))
		if perr != nil {
			return true, perr
		}
		added, aerr := engine.Trainer.AddPhrase(h, k)
		if aerr != nil {
			return true, aerr
		}
		reportTaught("phrase", h, k, added)
		return true, nil

	case strings.HasPrefix(input, "language:"):
		pref := strings.TrimSpace(strings.TrimPrefix(input, "language:"))
		if serr := engine.Responder.SetPreference(pref); serr != nil {
			return true, serr
		}
		fmt.Printf("%sreply language set to %s%s\n", colorGray, pref, colorReset)
		return true, nil
	}
	return false, nil
}

// splitTeaching parses "hinglish = kumaoni".
func splitTeaching(s string) (string, string, error) {
	parts := strings.SplitN(s, "=", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("expected 'hinglish = kumaoni', got %q", strings.TrimSpace(s))
	}
	h := strings.TrimSpace(parts[0])
	k := strings.TrimSpace(parts[1])
	if h == "" || k == "" {
		return "", "", fmt.Errorf("both sides are required in 'hinglish = kumaoni'")
	}
	return h, k, nil
}

func reportTaught(kind, h, k string, added bool) {
	if added {
		fmt.Printf("%slearned %s: %s → %s%s\n", colorGreen, kind, h, k, colorReset)
	} else {
		fmt.Printf("%salready knew %s: %s → %s%s\n", colorGray, kind, h, k, colorReset)
	}
}

func init() {
	chatCmd.Flags().BoolVar(&flagWatch, "watch", false, "reload resources when data files change")
}
