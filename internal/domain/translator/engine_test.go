package translator

import (
	"testing"

	"github.com/corey/boli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dictOf(pairs ...[2]string) *ports.Dict {
	d := ports.NewDict()
	for _, p := range pairs {
		d.Set(p[0], p[1])
	}
	return d
}

func testEngine() *Engine {
	vocab := dictOf(
		[2]string{"khana", "khano"},
		[2]string{"bahut", "bado"},
		[2]string{"achha", "balo"},
		[2]string{"kaise", "kas"},
	)
	phrases := dictOf(
		[2]string{"kaise ho", "kas cha"},
		[2]string{"phir milenge", "phir bhetula"},
	)
	grammar := ports.GrammarRules{
		ports.CategoryPronouns:      dictOf([2]string{"main", "ma"}, [2]string{"aap", "tum"}),
		ports.CategoryQuestionWords: dictOf([2]string{"kya", "ke"}, [2]string{"kahan", "kakh"}),
		ports.CategoryPostpositions: dictOf([2]string{"se", "le"}, [2]string{"me", "ma"}),
		ports.CategoryVerbEndings:   dictOf([2]string{"na", "no"}, [2]string{"ta", "to"}, [2]string{"a", "o"}),
	}
	return New(vocab, phrases, grammar)
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("hinglish_to_kumaoni")
	require.NoError(t, err)
	assert.Equal(t, HinglishToKumaoni, d)

	d, err = ParseDirection("kumaoni_to_hinglish")
	require.NoError(t, err)
	assert.Equal(t, KumaoniToHinglish, d)

	_, err = ParseDirection("english_to_kumaoni")
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestDirection_Reverse(t *testing.T) {
	assert.Equal(t, KumaoniToHinglish, HinglishToKumaoni.Reverse())
	assert.Equal(t, HinglishToKumaoni, KumaoniToHinglish.Reverse())
}

func TestTranslateWord_PronounBeatsSuffixRule(t *testing.T) {
	e := testEngine()

	// "main" is a pronoun; pronouns are checked before vocabulary and
	// before any suffix rule could fire.
	assert.Equal(t, "ma", e.TranslateWord("main", HinglishToKumaoni))

	// "khana" is in the vocabulary — vocabulary wins over the "na" rule.
	assert.Equal(t, "khano", e.TranslateWord("khana", HinglishToKumaoni))
}

func TestTranslateWord_SuffixCascade(t *testing.T) {
	vocab := ports.NewDict()
	grammar := ports.GrammarRules{
		ports.CategoryPronouns:    dictOf([2]string{"main", "ma"}),
		ports.CategoryVerbEndings: dictOf([2]string{"na", "no"}),
	}
	e := New(vocab, ports.NewDict(), grammar)

	// Not a pronoun and not vocabulary — the suffix rule fires.
	assert.Equal(t, "khano", e.TranslateWord("khana", HinglishToKumaoni))

	// Remainder must be non-empty: "na" itself is left alone.
	assert.Equal(t, "na", e.TranslateWord("na", HinglishToKumaoni))
}

func TestTranslateWord_SuffixStoredOrder(t *testing.T) {
	// "ta"→"to" stored before "a"→"o": the first matching rule in
	// document order wins, not the longest suffix.
	grammar := ports.GrammarRules{
		ports.CategoryVerbEndings: dictOf([2]string{"ta", "to"}, [2]string{"a", "u"}),
	}
	e := New(ports.NewDict(), ports.NewDict(), grammar)
	assert.Equal(t, "bolto", e.TranslateWord("bolta", HinglishToKumaoni))

	// Reversed document order flips the outcome.
	grammar2 := ports.GrammarRules{
		ports.CategoryVerbEndings: dictOf([2]string{"a", "u"}, [2]string{"ta", "to"}),
	}
	e2 := New(ports.NewDict(), ports.NewDict(), grammar2)
	assert.Equal(t, "boltu", e2.TranslateWord("bolta", HinglishToKumaoni))
}

func TestTranslateWord_UnknownPassthrough(t *testing.T) {
	e := testEngine()
	for _, w := range []string{"xyz", "Computer", "qwerty?"} {
		// Note: "qwerty?" matches no table; the original token comes
		// back verbatim, punctuation included.
		assert.Equal(t, w, e.TranslateWord(w, HinglishToKumaoni))
		assert.Equal(t, w, e.TranslateWord(w, KumaoniToHinglish))
	}
}

func TestTranslateWord_PunctuationStripped(t *testing.T) {
	e := testEngine()
	assert.Equal(t, "khano", e.TranslateWord("khana!", HinglishToKumaoni))
	assert.Equal(t, "khano", e.TranslateWord(`"Khana"`, HinglishToKumaoni))
}

func TestTranslateWord_Reverse(t *testing.T) {
	e := testEngine()
	assert.Equal(t, "khana", e.TranslateWord("khano", KumaoniToHinglish))
	assert.Equal(t, "main", e.TranslateWord("ma", KumaoniToHinglish))
	assert.Equal(t, "kya", e.TranslateWord("ke", KumaoniToHinglish))

	// No reverse suffix rules exist: an inflected Kumaoni form not in
	// any table passes through unchanged.
	assert.Equal(t, "jano", e.TranslateWord("jano", KumaoniToHinglish))
}

func TestTranslateWord_ReverseVocabBeforePronouns(t *testing.T) {
	// "ma" is both a vocabulary value and a pronoun value: vocabulary
	// is scanned first in the reverse direction.
	vocab := dictOf([2]string{"maa", "ma"})
	grammar := ports.GrammarRules{
		ports.CategoryPronouns: dictOf([2]string{"main", "ma"}),
	}
	e := New(vocab, ports.NewDict(), grammar)
	assert.Equal(t, "maa", e.TranslateWord("ma", KumaoniToHinglish))
}

func TestTranslate_PhraseBeforeWord(t *testing.T) {
	e := testEngine()

	// The phrase "kaise ho" must be substituted as a unit even though
	// "kaise" also has a word-level rule.
	got := e.Translate("aap kaise ho", HinglishToKumaoni)
	assert.Contains(t, got, "kas cha")
	assert.Equal(t, "tum kas cha", got)
}

func TestTranslate_PhraseMatchesInsideWord(t *testing.T) {
	// Substring replacement without token boundaries is intentional:
	// a phrase can match inside a larger word.
	phrases := dictOf([2]string{"kaise ho", "kas cha"})
	e := New(ports.NewDict(), phrases, ports.GrammarRules{})

	got := e.Translate("yeh kaise hota hai", HinglishToKumaoni)
	assert.Contains(t, got, "kas cha")
}

func TestTranslate_Reverse(t *testing.T) {
	e := testEngine()
	got := e.Translate("kas cha tum", KumaoniToHinglish)
	assert.Contains(t, got, "kaise ho")
}

func TestTranslate_JoinsWithSingleSpaces(t *testing.T) {
	e := testEngine()
	got := e.Translate("  khana   bahut  achha  ", HinglishToKumaoni)
	assert.Equal(t, "khano bado balo", got)
}

func TestTranslatePhrase_ExactThenWordByWord(t *testing.T) {
	e := testEngine()

	assert.Equal(t, "kas cha", e.TranslatePhrase("Kaise Ho", HinglishToKumaoni))
	assert.Equal(t, "kaise ho", e.TranslatePhrase("kas cha", KumaoniToHinglish))

	// No exact phrase — falls back to word-by-word.
	assert.Equal(t, "bado balo", e.TranslatePhrase("bahut achha", HinglishToKumaoni))
}

func TestRoundTrip_VocabularyOnlyWord(t *testing.T) {
	// A word present in the vocabulary only, whose Kumaoni value is
	// unique, survives forward-then-reverse translation.
	e := testEngine()
	k := e.TranslateWord("bahut", HinglishToKumaoni)
	require.Equal(t, "bado", k)
	assert.Equal(t, "bahut", e.TranslateWord(k, KumaoniToHinglish))
}

func TestNew_NilStores(t *testing.T) {
	e := New(nil, nil, nil)
	assert.Equal(t, "anything", e.Translate("anything", HinglishToKumaoni))
}
