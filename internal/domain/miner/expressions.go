package miner

import (
	"strings"

	"github.com/corey/boli/internal/ports"
)

// Keyword inventories for expression categorization. Both Hinglish and
// Kumaoni surface forms appear so either side of a pair can trigger a
// category.
var (
	expressionGreetings    = []string{"namaste", "namaskar", "hello", "hi", "kaise", "kas", "shubh"}
	expressionFarewells    = []string{"alvida", "phir", "milenge", "bhetula", "shubh", "ratri", "rati"}
	expressionThanks       = []string{"dhanyavaad", "shukriya", "thanks"}
	expressionApologies    = []string{"maaf", "maph", "sorry", "kshama"}
	expressionQuestions    = []string{"kya", "kaun", "kahan", "kaise", "kyun", "kitna", "kitne", "kitni", "kab", "ke", "ko", "kakh", "kas", "kati"}
	expressionAffirmations = []string{"haan", "ho", "yes", "theek", "thik", "sahi"}
	expressionNegations    = []string{"nahi", "na", "no", "mat"}
)

func anySubstring(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// MineExpressions buckets corpus pairs into functional categories.
// Checks run in ports.ExpressionCategories order, first match wins,
// either side of the pair can match; pairs matching no category are
// dropped. The questions bucket also admits a Hinglish side ending in
// "?" regardless of keywords.
func MineExpressions(corpus ports.Corpus) ports.ExpressionSet {
	out := ports.ExpressionSet{}
	for _, cat := range ports.ExpressionCategories {
		out[cat] = []ports.Pair{}
	}

	keywords := map[string][]string{
		"greetings":    expressionGreetings,
		"farewells":    expressionFarewells,
		"thanks":       expressionThanks,
		"apologies":    expressionApologies,
		"questions":    expressionQuestions,
		"affirmations": expressionAffirmations,
		"negations":    expressionNegations,
	}

	for _, item := range corpus {
		h := strings.ToLower(item.Hinglish)
		k := strings.ToLower(item.Kumaoni)
		for _, cat := range ports.ExpressionCategories {
			hit := anySubstring(h, keywords[cat]) || anySubstring(k, keywords[cat])
			if cat == "questions" {
				hit = hit || strings.HasSuffix(h, "?")
			}
			if hit {
				out[cat] = append(out[cat], item)
				break
			}
		}
	}
	return out
}

// Pattern-bucket keywords check the Hinglish side only.
var (
	patternGreetings = expressionGreetings
	patternFarewells = expressionFarewells
)

// MinePatterns buckets corpus pairs into greetings, farewells,
// questions and statements by their Hinglish side, with statements as
// the catch-all. Unlike expressions, every pair lands somewhere.
func MinePatterns(corpus ports.Corpus) ports.PatternSet {
	out := ports.PatternSet{
		"greetings":  []ports.Pair{},
		"farewells":  []ports.Pair{},
		"questions":  []ports.Pair{},
		"statements": []ports.Pair{},
	}

	for _, item := range corpus {
		h := strings.ToLower(item.Hinglish)
		switch {
		case anySubstring(h, patternGreetings):
			out["greetings"] = append(out["greetings"], item)
		case anySubstring(h, patternFarewells):
			out["farewells"] = append(out["farewells"], item)
		case anySubstring(h, hinglishQuestionWords) || strings.HasSuffix(h, "?"):
			out["questions"] = append(out["questions"], item)
		default:
			out["statements"] = append(out["statements"], item)
		}
	}
	return out
}
