// Package recognizer finds known idioms, expressions and collocations
// in free text. It reads the mined resources; it never modifies them.
package recognizer

import (
	"sort"
	"strings"

	"github.com/corey/boli/internal/ports"
)

// IdiomHit is a recognized idiom with its recorded meaning.
type IdiomHit struct {
	Idiom   string `json:"idiom"`
	Meaning string `json:"meaning"`
}

// ExpressionHit is a recognized categorized expression.
type ExpressionHit struct {
	Expression string `json:"expression"`
	Hinglish   string `json:"hinglish"`
	Category   string `json:"category"`
}

// CollocationHit is an adjacent word pair known to collocate.
type CollocationHit struct {
	Word      string `json:"word"`
	Collocate string `json:"collocate"`
}

// Recognition is the full scan result. Slices are empty, not nil, when
// nothing matched, so JSON output always carries all three keys.
type Recognition struct {
	Idioms       []IdiomHit       `json:"idioms"`
	Expressions  []ExpressionHit  `json:"expressions"`
	Collocations []CollocationHit `json:"collocations"`
}

// Empty reports whether the scan found nothing at all.
func (r Recognition) Empty() bool {
	return len(r.Idioms) == 0 && len(r.Expressions) == 0 && len(r.Collocations) == 0
}

// Recognizer scans text against the mined resources. An optional
// idiom matcher accelerates the idiom pass; without one, scanning
// degrades to a linear substring sweep with identical results.
type Recognizer struct {
	idioms       *ports.Dict
	expressions  ports.ExpressionSet
	collocations ports.CollocationTable

	idiomMatcher ports.TextMatcher
}

// New creates a recognizer over the given resources. Nil resources are
// treated as empty.
func New(idioms *ports.Dict, expressions ports.ExpressionSet, collocations ports.CollocationTable) *Recognizer {
	if idioms == nil {
		idioms = ports.NewDict()
	}
	return &Recognizer{idioms: idioms, expressions: expressions, collocations: collocations}
}

// UseIdiomMatcher installs a prebuilt matcher over the lowercased idiom
// keys.
func (r *Recognizer) UseIdiomMatcher(m ports.TextMatcher) {
	r.idiomMatcher = m
}

// Recognize scans text for idioms (substring, case-insensitive),
// expressions (Kumaoni side substring) and collocations (adjacent word
// pairs present in the collocation table). Hits are reported in stored
// resource order so output is stable across runs.
func (r *Recognizer) Recognize(text string) Recognition {
	lower := strings.ToLower(text)
	out := Recognition{
		Idioms:       []IdiomHit{},
		Expressions:  []ExpressionHit{},
		Collocations: []CollocationHit{},
	}

	matched := r.matchIdioms(lower)
	r.idioms.Range(func(idiom, meaning string) bool {
		if matched[strings.ToLower(idiom)] {
			out.Idioms = append(out.Idioms, IdiomHit{Idiom: idiom, Meaning: meaning})
		}
		return true
	})

	for _, cat := range r.expressionCategories() {
		for _, expr := range r.expressions[cat] {
			if strings.Contains(lower, strings.ToLower(expr.Kumaoni)) {
				out.Expressions = append(out.Expressions, ExpressionHit{
					Expression: expr.Kumaoni,
					Hinglish:   expr.Hinglish,
					Category:   cat,
				})
			}
		}
	}

	words := strings.Fields(lower)
	for i := 0; i+1 < len(words); i++ {
		for _, c := range r.collocations[words[i]] {
			if c.Word == words[i+1] {
				out.Collocations = append(out.Collocations, CollocationHit{Word: words[i], Collocate: words[i+1]})
				break
			}
		}
	}

	return out
}

// matchIdioms returns the set of lowercased idiom keys occurring in
// lower, via the matcher when installed.
func (r *Recognizer) matchIdioms(lower string) map[string]bool {
	matched := map[string]bool{}
	if r.idiomMatcher != nil {
		for _, hit := range r.idiomMatcher.Match(lower) {
			matched[hit] = true
		}
		return matched
	}
	r.idioms.Range(func(idiom, _ string) bool {
		if k := strings.ToLower(idiom); strings.Contains(lower, k) {
			matched[k] = true
		}
		return true
	})
	return matched
}

// expressionCategories yields the known categories first, in their
// fixed order, then any extra categories sorted by name.
func (r *Recognizer) expressionCategories() []string {
	known := map[string]bool{}
	out := make([]string, 0, len(r.expressions))
	for _, cat := range ports.ExpressionCategories {
		known[cat] = true
		if _, ok := r.expressions[cat]; ok {
			out = append(out, cat)
		}
	}
	var extra []string
	for cat := range r.expressions {
		if !known[cat] {
			extra = append(extra, cat)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}
