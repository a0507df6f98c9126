package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/corey/boli/internal/app"
	"github.com/corey/boli/internal/domain/recognizer"
	"github.com/corey/boli/internal/domain/trainer"
	"github.com/corey/boli/internal/domain/translator"
)

// ANSI color codes for terminal output.
const (
	colorReset   = "\033[0m"
	colorBold    = "\033[1m"
	colorCyan    = "\033[36m"
	colorMagenta = "\033[35m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorGray    = "\033[90m"
)

// formatTranslation renders one translation with its direction.
//
//	→ khano bado balo cha  (hinglish_to_kumaoni)
func formatTranslation(out string, dir translator.Direction) string {
	return fmt.Sprintf("%s→ %s%s  %s(%s)%s\n", colorBold, out, colorReset, colorGray, dir, colorReset)
}

// formatRecognition renders a pattern scan grouped by kind.
func formatRecognition(r recognizer.Recognition) string {
	if r.Empty() {
		return colorGray + "no patterns recognized" + colorReset + "\n"
	}

	var sb strings.Builder
	if len(r.Idioms) > 0 {
		sb.WriteString(colorBold + "Idioms:" + colorReset + "\n")
		for _, hit := range r.Idioms {
			sb.WriteString(fmt.Sprintf("  %s%s%s %s— %s%s\n",
				colorCyan, hit.Idiom, colorReset, colorGray, hit.Meaning, colorReset))
		}
	}
	if len(r.Expressions) > 0 {
		sb.WriteString(colorBold + "Expressions:" + colorReset + "\n")
		for _, hit := range r.Expressions {
			sb.WriteString(fmt.Sprintf("  %s%s%s %s@%s%s  %s\n",
				colorCyan, hit.Expression, colorReset, colorGreen, hit.Category, colorReset, hit.Hinglish))
		}
	}
	if len(r.Collocations) > 0 {
		sb.WriteString(colorBold + "Collocations:" + colorReset + "\n")
		for _, hit := range r.Collocations {
			sb.WriteString(fmt.Sprintf("  %s%s %s%s\n", colorCyan, hit.Word, hit.Collocate, colorReset))
		}
	}
	return sb.String()
}

// formatSearchResults renders search hits grouped by resource.
func formatSearchResults(r trainer.SearchResults) string {
	if r.Empty() {
		return colorGray + "no results" + colorReset + "\n"
	}

	var sb strings.Builder
	if len(r.Words) > 0 {
		sb.WriteString(colorBold + "Words:" + colorReset + "\n")
		for _, p := range r.Words {
			sb.WriteString(fmt.Sprintf("  %s%s%s → %s\n", colorCyan, p.Hinglish, colorReset, p.Kumaoni))
		}
	}
	if len(r.Phrases) > 0 {
		sb.WriteString(colorBold + "Phrases:" + colorReset + "\n")
		for _, p := range r.Phrases {
			sb.WriteString(fmt.Sprintf("  %s%s%s → %s\n", colorCyan, p.Hinglish, colorReset, p.Kumaoni))
		}
	}
	if len(r.Idioms) > 0 {
		sb.WriteString(colorBold + "Idioms:" + colorReset + "\n")
		for _, idiom := range r.Idioms {
			sb.WriteString(fmt.Sprintf("  %s%s%s %s— %s%s\n",
				colorCyan, idiom.Kumaoni, colorReset, colorGray, idiom.Meaning, colorReset))
		}
	}
	return sb.String()
}

// formatStats renders the store counters.
func formatStats(s app.Stats) string {
	var sb strings.Builder
	sb.WriteString(colorBold + "Store sizes" + colorReset + "\n")
	sb.WriteString(fmt.Sprintf("  vocabulary    %s%d%s\n", colorCyan, s.Vocabulary, colorReset))
	sb.WriteString(fmt.Sprintf("  phrases       %s%d%s\n", colorCyan, s.Phrases, colorReset))
	sb.WriteString(fmt.Sprintf("  idioms        %s%d%s\n", colorCyan, s.Idioms, colorReset))
	sb.WriteString(fmt.Sprintf("  examples      %s%d%s\n", colorCyan, s.Examples, colorReset))
	sb.WriteString(fmt.Sprintf("  expressions   %s%d%s\n", colorCyan, s.ExpressionCount, colorReset))
	sb.WriteString(fmt.Sprintf("  collocations  %s%d%s\n", colorCyan, s.Collocations, colorReset))

	sb.WriteString(colorBold + "Grammar rules" + colorReset + "\n")
	cats := make([]string, 0, len(s.GrammarRules))
	for cat := range s.GrammarRules {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	for _, cat := range cats {
		sb.WriteString(fmt.Sprintf("  %-13s %s%d%s\n", cat, colorCyan, s.GrammarRules[cat], colorReset))
	}

	sb.WriteString(colorBold + "Conversation" + colorReset + "\n")
	sb.WriteString(fmt.Sprintf("  response intents  %s%d%s\n", colorCyan, s.ResponseIntents, colorReset))
	sb.WriteString(fmt.Sprintf("  templates         %s%d%s\n", colorCyan, s.Templates, colorReset))
	sb.WriteString(fmt.Sprintf("  stored sessions   %s%d%s\n", colorCyan, s.StoredSessions, colorReset))
	return sb.String()
}

// formatMineReport renders what a mining run produced.
func formatMineReport(r app.MineReport) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ mined %d examples%s\n", colorBold, r.Examples, colorReset))

	if r.GrammarRules != nil {
		cats := make([]string, 0, len(r.GrammarRules))
		for cat := range r.GrammarRules {
			cats = append(cats, cat)
		}
		sort.Strings(cats)
		for _, cat := range cats {
			sb.WriteString(fmt.Sprintf("  %-20s %s%d%s\n", cat, colorCyan, r.GrammarRules[cat], colorReset))
		}
		sb.WriteString(fmt.Sprintf("  %-20s %s%d%s\n", "verb roots", colorCyan, r.VerbRoots, colorReset))
		sb.WriteString(fmt.Sprintf("  %-20s %s%d%s\n", "structures", colorCyan, r.Structures, colorReset))
	}
	if r.PatternBuckets != nil {
		sb.WriteString(fmt.Sprintf("  %-20s %s%d%s\n", "idioms", colorCyan, r.Idioms, colorReset))
		sb.WriteString(fmt.Sprintf("  %-20s %s%d%s\n", "collocation words", colorCyan, r.CollocationSources, colorReset))
		for _, name := range []string{"greetings", "farewells", "questions", "statements"} {
			if n, ok := r.PatternBuckets[name]; ok {
				sb.WriteString(fmt.Sprintf("  %-20s %s%d%s\n", name+" patterns", colorCyan, n, colorReset))
			}
		}
	}
	return sb.String()
}
