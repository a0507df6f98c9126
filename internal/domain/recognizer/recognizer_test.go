package recognizer

import (
	"strings"
	"testing"

	acmatcher "github.com/corey/boli/internal/adapters/ahocorasick"
	"github.com/corey/boli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecognizer() *Recognizer {
	idioms := ports.NewDict()
	idioms.Set("bado balo", "bahut accha")
	idioms.Set("kas cha", "kaise ho")

	exprs := ports.ExpressionSet{
		"greetings": {{Hinglish: "namaste", Kumaoni: "namaskar"}},
		"thanks":    {{Hinglish: "dhanyavaad", Kumaoni: "dhanyavaad"}},
	}

	colls := ports.CollocationTable{
		"bado": {{Word: "balo", Count: 3}, {Word: "mitho", Count: 2}},
	}

	return New(idioms, exprs, colls)
}

func TestRecognize_Idioms(t *testing.T) {
	r := testRecognizer()

	got := r.Recognize("yo khano bado balo cha")
	require.Len(t, got.Idioms, 1)
	assert.Equal(t, IdiomHit{Idiom: "bado balo", Meaning: "bahut accha"}, got.Idioms[0])
}

func TestRecognize_IdiomsCaseInsensitive(t *testing.T) {
	r := testRecognizer()

	got := r.Recognize("Bado Balo din chha")
	require.Len(t, got.Idioms, 1)
	assert.Equal(t, "bado balo", got.Idioms[0].Idiom)
}

func TestRecognize_IdiomOrderFollowsStore(t *testing.T) {
	r := testRecognizer()

	// Both idioms occur; report order is store order, not text order.
	got := r.Recognize("kas cha, sab bado balo cha")
	require.Len(t, got.Idioms, 2)
	assert.Equal(t, "bado balo", got.Idioms[0].Idiom)
	assert.Equal(t, "kas cha", got.Idioms[1].Idiom)
}

func TestRecognize_Expressions(t *testing.T) {
	r := testRecognizer()

	got := r.Recognize("namaskar ju, kas cha")
	require.Len(t, got.Expressions, 1)
	assert.Equal(t, ExpressionHit{
		Expression: "namaskar",
		Hinglish:   "namaste",
		Category:   "greetings",
	}, got.Expressions[0])
}

func TestRecognize_Collocations(t *testing.T) {
	r := testRecognizer()

	got := r.Recognize("khano bado mitho cha")
	require.Len(t, got.Collocations, 1)
	assert.Equal(t, CollocationHit{Word: "bado", Collocate: "mitho"}, got.Collocations[0])
}

func TestRecognize_CollocationNeedsAdjacency(t *testing.T) {
	r := testRecognizer()

	// "bado" and "balo" present but not adjacent.
	got := r.Recognize("bado khano balo")
	assert.Empty(t, got.Collocations)
}

func TestRecognize_NothingFound(t *testing.T) {
	r := testRecognizer()

	got := r.Recognize("completely unrelated text")
	assert.True(t, got.Empty())
	// Slices are empty but present, not nil.
	assert.NotNil(t, got.Idioms)
	assert.NotNil(t, got.Expressions)
	assert.NotNil(t, got.Collocations)
}

// prefixMatcher is a stand-in for the production automaton.
type prefixMatcher struct{ patterns []string }

func (m *prefixMatcher) Build(patterns []string) { m.patterns = patterns }

func (m *prefixMatcher) Match(text string) []string {
	var hits []string
	for _, p := range m.patterns {
		if strings.Contains(text, p) {
			hits = append(hits, p)
		}
	}
	return hits
}

func TestRecognize_MatcherAgreesWithFallback(t *testing.T) {
	idioms := ports.NewDict()
	idioms.Set("bado balo", "bahut accha")
	// Prefix-nested keys, as the miner produces for overlapping
	// n-grams: the shorter idiom must not hide the longer one.
	idioms.Set("ghar jaa", "ghar chale jao")
	idioms.Set("ghar jaa ab", "ab ghar chale jao")

	matchers := map[string]ports.TextMatcher{}
	pm := &prefixMatcher{}
	pm.Build(idioms.Keys())
	matchers["contains"] = pm
	am := &acmatcher.Matcher{}
	am.Build(idioms.Keys())
	matchers["automaton"] = am

	inputs := []string{
		"tu ghar jaa ab",
		"ghar jaa bhai",
		"yo khano bado balo cha",
		"nothing here",
	}

	for name, m := range matchers {
		plain := New(idioms, nil, nil)
		fast := New(idioms, nil, nil)
		fast.UseIdiomMatcher(m)

		for _, text := range inputs {
			assert.Equal(t, plain.Recognize(text), fast.Recognize(text),
				"%s matcher, input %q", name, text)
		}

		got := fast.Recognize("tu ghar jaa ab")
		require.Len(t, got.Idioms, 2, "%s matcher", name)
		assert.Equal(t, "ghar jaa", got.Idioms[0].Idiom)
		assert.Equal(t, "ghar jaa ab", got.Idioms[1].Idiom)
	}
}

func TestNew_NilResources(t *testing.T) {
	r := New(nil, nil, nil)
	assert.True(t, r.Recognize("anything at all").Empty())
}
