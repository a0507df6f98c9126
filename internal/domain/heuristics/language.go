// Package heuristics holds the lightweight classifiers used before any
// translation or response generation: language detection by lexical
// voting and intent detection by keyword lists.
package heuristics

import (
	"strings"

	"github.com/corey/boli/internal/ports"
)

// Language labels as they appear in conversation history documents.
const (
	LangHinglish = "hinglish"
	LangKumaoni  = "kumaoni"
)

const punctCutset = `.,?!"'`

// Detector votes each token against the vocabulary and each registered
// phrase against the whole input. Phrase hits weigh 3, word hits 1;
// Kumaoni must win strictly, ties fall back to Hinglish.
type Detector struct {
	vocab   *ports.Dict
	phrases *ports.Dict

	// Optional multi-pattern matchers over the phrase keys/values. When
	// nil, detection falls back to a linear substring scan.
	hinglishPhrases ports.TextMatcher
	kumaoniPhrases  ports.TextMatcher
}

// NewDetector creates a detector over the shared lexical stores.
func NewDetector(vocab, phrases *ports.Dict) *Detector {
	if vocab == nil {
		vocab = ports.NewDict()
	}
	if phrases == nil {
		phrases = ports.NewDict()
	}
	return &Detector{vocab: vocab, phrases: phrases}
}

// UseMatchers installs prebuilt phrase matchers. The hinglish matcher
// must be built over the phrase keys and the kumaoni matcher over the
// phrase values, both lowercased.
func (d *Detector) UseMatchers(hinglish, kumaoni ports.TextMatcher) {
	d.hinglishPhrases = hinglish
	d.kumaoniPhrases = kumaoni
}

// Detect classifies text as LangHinglish or LangKumaoni.
func (d *Detector) Detect(text string) string {
	lower := strings.ToLower(text)
	hinglish, kumaoni := 0, 0

	for _, word := range strings.Fields(lower) {
		word = strings.Trim(word, punctCutset)
		if _, ok := d.vocab.Get(word); ok {
			hinglish++
		} else if d.vocab.HasValueFold(word) {
			kumaoni++
		}
	}

	hinglish += 3 * d.countPhraseHits(lower, d.hinglishPhrases, func(h, k string) string { return h })
	kumaoni += 3 * d.countPhraseHits(lower, d.kumaoniPhrases, func(h, k string) string { return k })

	if kumaoni > hinglish {
		return LangKumaoni
	}
	return LangHinglish
}

// countPhraseHits counts registered phrases occurring in lower, via the
// matcher when available and by substring scan otherwise. side selects
// which side of each phrase pair to look for.
func (d *Detector) countPhraseHits(lower string, m ports.TextMatcher, side func(h, k string) string) int {
	if m != nil {
		return len(m.Match(lower))
	}
	n := 0
	d.phrases.Range(func(h, k string) bool {
		if strings.Contains(lower, strings.ToLower(side(h, k))) {
			n++
		}
		return true
	})
	return n
}
