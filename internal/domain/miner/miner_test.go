package miner

import (
	"testing"

	"github.com/corey/boli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pairs(hk ...string) ports.Corpus {
	var c ports.Corpus
	for i := 0; i+1 < len(hk); i += 2 {
		c = append(c, ports.Pair{Hinglish: hk[i], Kumaoni: hk[i+1]})
	}
	return c
}

// ============================================================
// Counter
// ============================================================

func TestCounter_MostCommonTieGoesToFirstSeen(t *testing.T) {
	c := newCounter()
	c.add("b")
	c.add("a")
	c.add("a")
	c.add("b")

	winner, count, ok := c.mostCommon()
	require.True(t, ok)
	assert.Equal(t, "b", winner)
	assert.Equal(t, 2, count)
}

func TestCounter_TopN(t *testing.T) {
	c := newCounter()
	for _, k := range []string{"x", "y", "y", "z", "z", "z"} {
		c.add(k)
	}
	assert.Equal(t, []string{"z", "y"}, c.topN(2))
	assert.Equal(t, []string{"z", "y", "x"}, c.topN(5))
}

// ============================================================
// Grammar mining
// ============================================================

func TestMineVerbEndings(t *testing.T) {
	corpus := pairs(
		"khana", "khano",
		"sona", "sono",
		"jana", "jano",
	)
	endings := MineVerbEndings(corpus)

	got, ok := endings.Get("na")
	require.True(t, ok)
	assert.Equal(t, "no", got)
}

func TestMineVerbEndings_SkipsMisalignedExamples(t *testing.T) {
	corpus := pairs("khana accha hai", "khano balo")
	assert.Equal(t, 0, MineVerbEndings(corpus).Len())
}

func TestMinePronouns(t *testing.T) {
	corpus := pairs(
		"main ghar", "ma ghar",
		"main jaun", "ma jaun",
		"main hoon", "mai chun",
	)
	pronouns := MinePronouns(corpus)

	// "ma" has 2 votes against 1 for "mai".
	got, ok := pronouns.Get("main")
	require.True(t, ok)
	assert.Equal(t, "ma", got)

	// Non-pronoun words never produce entries.
	_, ok = pronouns.Get("ghar")
	assert.False(t, ok)
}

func TestMineGrammarRules_AllCategoriesPresent(t *testing.T) {
	rules := MineGrammarRules(pairs("main khana se", "ma khano le"))
	for _, cat := range []string{
		ports.CategoryVerbEndings,
		ports.CategoryPostpositions,
		ports.CategoryPronouns,
		ports.CategoryQuestionWords,
	} {
		assert.NotNil(t, rules[cat], cat)
	}

	se, ok := rules[ports.CategoryPostpositions].Get("se")
	require.True(t, ok)
	assert.Equal(t, "le", se)
}

func TestMineVerbForms(t *testing.T) {
	corpus := pairs(
		"karna hai", "karno cha",
		"karna hai", "karno cha",
		"karta hai", "karu cha",
	)
	forms := MineVerbForms(corpus)

	require.Contains(t, forms, "kar")
	assert.Equal(t, "karno", forms["kar"]["na"])
	assert.Equal(t, "karu", forms["kar"]["ta"])
}

func TestClassifyStructure(t *testing.T) {
	cases := []struct {
		sentence string
		want     string
	}{
		{"kya haal hai", "question"},
		{"tum kahan ho", "question"},
		{"jao yahan se", "command"},
		{"suniye baat meri", "command"},
		{"main ghar ja raha hoon", "statement"},
		{"mausam accha hai", "statement"},
		{"", "statement"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyStructure(tc.sentence), "input %q", tc.sentence)
	}
}

func TestClassifyStructure_QuestionNeedsWholeToken(t *testing.T) {
	// "kyari" contains "kya" but is not the token "kya".
	assert.Equal(t, "statement", ClassifyStructure("kyari lagayi maine"))
}

func TestMineSentenceStructures(t *testing.T) {
	corpus := pairs(
		"kya haal hai", "kas cha",
		"kya naam hai", "ke nau cha",
		"mausam accha hai", "mausam balo cha",
	)
	structs := MineSentenceStructures(corpus)

	assert.Equal(t, "statement", structs["question"])
	assert.Equal(t, "statement", structs["statement"])
}

// ============================================================
// Idioms
// ============================================================

func TestMineIdioms_ThresholdAndConsistency(t *testing.T) {
	// "bado balo" occurs 3 times, always with the same Hinglish side.
	corpus := pairs(
		"bahut accha", "bado balo",
		"bahut accha", "bado balo",
		"bahut accha", "bado balo",
		"thik hai", "thik cha",
	)
	idioms := MineIdioms(corpus)

	got, ok := idioms.Get("bado balo")
	require.True(t, ok)
	assert.Equal(t, "bahut accha", got)

	// "thik cha" occurs once only.
	_, ok = idioms.Get("thik cha")
	assert.False(t, ok)
}

func TestMineIdioms_TwoOccurrencesNotEnough(t *testing.T) {
	corpus := pairs(
		"bahut accha", "bado balo",
		"bahut accha", "bado balo",
	)
	assert.Equal(t, 0, MineIdioms(corpus).Len())
}

func TestMineIdioms_InconsistentTranslationsRejected(t *testing.T) {
	// 3 occurrences but the leading Hinglish side holds only 2/3 ≈ 67%.
	corpus := pairs(
		"bahut accha", "bado balo",
		"bahut accha", "bado balo",
		"kaafi sundar", "bado balo",
	)
	assert.Equal(t, 0, MineIdioms(corpus).Len())
}

func TestMineIdioms_NgramWindows(t *testing.T) {
	corpus := pairs(
		"yeh bahut accha hai", "yo bado balo cha",
		"yeh bahut accha hai", "yo bado balo cha",
		"yeh bahut accha hai", "yo bado balo cha",
	)
	idioms := MineIdioms(corpus)

	// Windows of 2, 3 and 4 words all qualify.
	for _, phrase := range []string{"yo bado", "bado balo cha", "yo bado balo cha"} {
		_, ok := idioms.Get(phrase)
		assert.True(t, ok, phrase)
	}
	// Single words never do.
	_, ok := idioms.Get("bado")
	assert.False(t, ok)
}

// ============================================================
// Expressions and patterns
// ============================================================

func TestMineExpressions(t *testing.T) {
	// Note "alvida", not "phir milenge": "phir" contains the greeting
	// keyword "hi" as a substring, and greetings are checked first.
	corpus := pairs(
		"namaste ji", "namaskar ju",
		"alvida dost", "alvida dost",
		"dhanyavaad bhai", "dhanyavaad bhula",
		"woh chala gaya", "u chal gyo",
	)
	exprs := MineExpressions(corpus)

	assert.Len(t, exprs["greetings"], 1)
	assert.Len(t, exprs["farewells"], 1)
	assert.Len(t, exprs["thanks"], 1)

	// "woh chala gaya" matches no category and is dropped.
	total := 0
	for _, cat := range ports.ExpressionCategories {
		total += len(exprs[cat])
	}
	assert.Equal(t, 3, total)
}

func TestMineExpressions_QuestionMarkSuffix(t *testing.T) {
	corpus := pairs("ghar chaloge?", "ghar jaula?")
	exprs := MineExpressions(corpus)
	assert.Len(t, exprs["questions"], 1)
}

func TestMineExpressions_EitherSideMatches(t *testing.T) {
	// Keyword only on the Kumaoni side.
	corpus := pairs("galti ho gayi", "maph karya")
	exprs := MineExpressions(corpus)
	assert.Len(t, exprs["apologies"], 1)
}

func TestMinePatterns_StatementsCatchAll(t *testing.T) {
	corpus := pairs(
		"namaste ji", "namaskar ju",
		"woh chala gaya", "u chal gyo",
	)
	pats := MinePatterns(corpus)

	assert.Len(t, pats["greetings"], 1)
	assert.Len(t, pats["statements"], 1)

	// Every pair lands in exactly one bucket.
	total := 0
	for _, ps := range pats {
		total += len(ps)
	}
	assert.Equal(t, len(corpus), total)
}

// ============================================================
// Collocations
// ============================================================

func TestMineCollocations(t *testing.T) {
	corpus := pairs(
		"", "bado balo cha",
		"", "bado balo din",
		"", "bado mitho cha",
	)
	colls := MineCollocations(corpus)

	require.Contains(t, colls, "bado")
	require.Len(t, colls["bado"], 1)
	assert.Equal(t, ports.Collocate{Word: "balo", Count: 2}, colls["bado"][0])

	// "balo" has 2 distinct successors but none reaches count 2.
	assert.NotContains(t, colls, "balo")
}

func TestMineCollocations_SingleSuccessorDropped(t *testing.T) {
	corpus := pairs(
		"", "kas cha",
		"", "kas cha",
		"", "kas cha",
	)
	// "kas" is always followed by "cha" only: one distinct successor.
	assert.NotContains(t, MineCollocations(corpus), "kas")
}
