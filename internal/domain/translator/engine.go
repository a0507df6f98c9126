// Package translator implements the rule-based translation engine:
// a phrase-first substitution pass followed by a word-level cascade over
// the grammar correspondence tables and the vocabulary.
//
// The engine is deliberately literal about its lookup order. The phrase
// pass iterates the phrase mapping in stored order and replaces substrings
// without token-boundary checks — a phrase can match inside a larger word.
// That is long-standing behavior downstream data depends on, kept as is.
package translator

import (
	"strings"

	"github.com/corey/boli/internal/ports"
)

// punctCutset is stripped from both ends of a token before lookup.
const punctCutset = `.,?!"'`

// Engine translates between Hinglish and Kumaoni using shared lexical
// stores. The stores are referenced, not copied: trainer edits are
// visible immediately. Not safe for concurrent use.
type Engine struct {
	vocab   *ports.Dict
	phrases *ports.Dict
	grammar ports.GrammarRules
}

// New creates an engine over the given stores. Nil stores are replaced
// with empty ones so a partially seeded engine still degrades to
// identity translation instead of panicking.
func New(vocab, phrases *ports.Dict, grammar ports.GrammarRules) *Engine {
	if vocab == nil {
		vocab = ports.NewDict()
	}
	if phrases == nil {
		phrases = ports.NewDict()
	}
	if grammar == nil {
		grammar = ports.GrammarRules{}
	}
	return &Engine{vocab: vocab, phrases: phrases, grammar: grammar}
}

// Translate runs the phrase pass and then translates the remaining words
// independently, joining the results with single spaces.
func (e *Engine) Translate(text string, dir Direction) string {
	text = e.phrasePass(text, dir)

	words := strings.Fields(text)
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = e.TranslateWord(w, dir)
	}
	return strings.Join(out, " ")
}

// phrasePass substitutes every registered phrase that occurs in the text,
// in stored order. Matching is case-insensitive; on the first hit the
// working text becomes lowercase (the word pass is case-insensitive, so
// only untranslated passthrough tokens observe this).
func (e *Engine) phrasePass(text string, dir Direction) string {
	e.phrases.Range(func(h, k string) bool {
		var from, to string
		if dir == HinglishToKumaoni {
			from, to = strings.ToLower(h), k
		} else {
			from, to = strings.ToLower(k), h
		}
		if strings.Contains(strings.ToLower(text), from) {
			text = strings.ReplaceAll(strings.ToLower(text), from, to)
		}
		return true
	})
	return text
}

// TranslateWord translates a single token. Lookup is case-insensitive and
// ignores leading/trailing punctuation. Unknown tokens are returned
// unchanged — identity fallback, not an error.
//
// Forward order: pronouns, question words, postpositions, vocabulary,
// then the verb-ending suffix table (first suffix in stored order whose
// remainder is non-empty). Reverse order: vocabulary, pronouns, question
// words, postpositions, by value match.
func (e *Engine) TranslateWord(word string, dir Direction) string {
	w := strings.ToLower(strings.Trim(word, punctCutset))

	if dir == KumaoniToHinglish {
		if h, ok := e.vocab.FindValueFold(w); ok {
			return h
		}
		for _, cat := range []string{ports.CategoryPronouns, ports.CategoryQuestionWords, ports.CategoryPostpositions} {
			if h, ok := e.grammar.Category(cat).FindValueFold(w); ok {
				return h
			}
		}
		return word
	}

	for _, cat := range []string{ports.CategoryPronouns, ports.CategoryQuestionWords, ports.CategoryPostpositions} {
		if k, ok := e.grammar.Category(cat).Get(w); ok {
			return k
		}
	}
	if k, ok := e.vocab.Get(w); ok {
		return k
	}

	endings := e.grammar.Category(ports.CategoryVerbEndings)
	for _, suffix := range endings.Keys() {
		if strings.HasSuffix(w, suffix) && len(w) > len(suffix) {
			repl, _ := endings.Get(suffix)
			return w[:len(w)-len(suffix)] + repl
		}
	}

	return word
}

// TranslatePhrase translates a phrase by exact lookup first (forward: key
// match; reverse: value match), falling back to word-by-word translation.
func (e *Engine) TranslatePhrase(phrase string, dir Direction) string {
	if dir == HinglishToKumaoni {
		if k, ok := e.phrases.Get(strings.ToLower(phrase)); ok {
			return k
		}
	} else {
		if h, ok := e.phrases.FindValueFold(phrase); ok {
			return h
		}
	}

	words := strings.Fields(phrase)
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = e.TranslateWord(w, dir)
	}
	return strings.Join(out, " ")
}
