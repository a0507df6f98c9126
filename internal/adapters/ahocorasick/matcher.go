// Package ahocorasick provides multi-pattern substring matching over an
// Aho-Corasick automaton, used to find registered phrases and idioms in
// free text in one pass instead of one Contains scan per pattern.
package ahocorasick

import (
	aho "github.com/petar-dambovaliev/aho-corasick"

	"github.com/corey/boli/internal/ports"
)

// Matcher implements ports.TextMatcher. Build compiles an automaton;
// Match returns each built pattern occurring in the text, deduplicated,
// in pattern order.
type Matcher struct {
	automaton aho.AhoCorasick
	patterns  []string
	built     bool
}

var _ ports.TextMatcher = (*Matcher)(nil)

// FromKeys builds a matcher over the keys of a Dict, for phrase and
// idiom tables whose keys are the searchable side.
func FromKeys(d *ports.Dict) *Matcher {
	m := &Matcher{}
	m.Build(d.Keys())
	return m
}

// FromValues builds a matcher over the values of a Dict.
func FromValues(d *ports.Dict) *Matcher {
	vals := make([]string, 0, d.Len())
	d.Range(func(_, v string) bool {
		vals = append(vals, v)
		return true
	})
	m := &Matcher{}
	m.Build(vals)
	return m
}

// Build compiles the automaton from the given patterns. Callers pass
// patterns already lowercased; matching is byte-exact.
func (m *Matcher) Build(patterns []string) {
	m.patterns = make([]string, len(patterns))
	copy(m.patterns, patterns)

	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	m.automaton = builder.Build(m.patterns)
	m.built = true
}

// Match returns all patterns found in text. Iteration is overlapping:
// idiom and phrase tables hold prefix-nested n-grams ("ghar jaa",
// "ghar jaa ab"), and a nested shorter pattern must not swallow the
// longer one.
func (m *Matcher) Match(text string) []string {
	if !m.built || len(m.patterns) == 0 {
		return nil
	}

	iter := m.automaton.IterOverlappingByte([]byte(text))
	hit := make(map[int]bool)
	for next := iter.Next(); next != nil; next = iter.Next() {
		hit[(*next).Pattern()] = true
	}
	if len(hit) == 0 {
		return nil
	}

	// Deduplicate by pattern; report in pattern order so callers see
	// the same order the table stores.
	var result []string
	for i, p := range m.patterns {
		if hit[i] {
			result = append(result, p)
		}
	}
	return result
}
