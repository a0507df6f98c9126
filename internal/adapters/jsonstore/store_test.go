package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/corey/boli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoad_MissingFileSeedsAndPersists(t *testing.T) {
	s := newTestStore(t)

	vocab, err := s.LoadVocabulary()
	require.NoError(t, err)
	assert.Greater(t, vocab.Len(), 0)

	// The seed copy is now on disk.
	_, err = os.Stat(filepath.Join(s.Dir(), "vocab_mapping.json"))
	assert.NoError(t, err)

	got, ok := vocab.Get("khana")
	require.True(t, ok)
	assert.Equal(t, "khano", got)
}

func TestLoad_MalformedFileFallsBackToSeed(t *testing.T) {
	s := newTestStore(t)
	path := filepath.Join(s.Dir(), "idioms.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	idioms, err := s.LoadIdioms()
	require.NoError(t, err)
	assert.Greater(t, idioms.Len(), 0)

	// The broken file is left untouched for inspection.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}

func TestLoad_PartiallyValidFileDoesNotLeakIntoSeed(t *testing.T) {
	s := newTestStore(t)
	path := filepath.Join(s.Dir(), "grammar_rules.json")

	// Valid prefix, then a type error: map decoding stops mid-document
	// with entries already placed. The loaded resource must be the seed
	// alone, not a merge with the partially decoded file.
	corrupt := `{"bogus_category":{"a":"b"},"verb_endings":5}`
	require.NoError(t, os.WriteFile(path, []byte(corrupt), 0o644))

	grammar, err := s.LoadGrammar()
	require.NoError(t, err)

	_, leaked := grammar["bogus_category"]
	assert.False(t, leaked)
	assert.Greater(t, grammar.Category(ports.CategoryVerbEndings).Len(), 0)

	// The broken file is left untouched for inspection.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, corrupt, string(data))
}

func TestSaveLoad_RoundTripPreservesOrder(t *testing.T) {
	s := newTestStore(t)

	d := ports.NewDict()
	d.Set("zebra", "z")
	d.Set("alpha", "a")
	d.Set("middle", "m")
	require.NoError(t, s.SavePhrases(d))

	got, err := s.LoadPhrases()
	require.NoError(t, err)
	assert.Equal(t, []string{"zebra", "alpha", "middle"}, got.Keys())
}

func TestSave_OverwritesAtomically(t *testing.T) {
	s := newTestStore(t)

	d := ports.NewDict()
	d.Set("a", "1")
	require.NoError(t, s.SaveVocabulary(d))
	d.Set("b", "2")
	require.NoError(t, s.SaveVocabulary(d))

	got, err := s.LoadVocabulary()
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())

	// No temp files left behind.
	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp")
	}
}

func TestGrammar_SeedCategories(t *testing.T) {
	s := newTestStore(t)

	grammar, err := s.LoadGrammar()
	require.NoError(t, err)

	for _, cat := range []string{
		ports.CategoryVerbEndings,
		ports.CategoryPostpositions,
		ports.CategoryPronouns,
		ports.CategoryQuestionWords,
	} {
		assert.Greater(t, grammar.Category(cat).Len(), 0, cat)
	}

	// Suffix table order matters downstream; "na" leads the seed.
	assert.Equal(t, "na", grammar.Category(ports.CategoryVerbEndings).Keys()[0])
}

func TestCorrections_SeedIsEmptyButInitialized(t *testing.T) {
	s := newTestStore(t)

	c, err := s.LoadCorrections()
	require.NoError(t, err)
	assert.NotNil(t, c.Words)
	assert.NotNil(t, c.Phrases)
	assert.Empty(t, c.Words)
}

func TestCorpus_SaveLoad(t *testing.T) {
	s := newTestStore(t)

	corpus := ports.Corpus{
		{Hinglish: "khana accha hai", Kumaoni: "khano balo cha"},
	}
	require.NoError(t, s.SaveCorpus(corpus))

	got, err := s.LoadCorpus()
	require.NoError(t, err)
	assert.Equal(t, corpus, got)
}

func TestResponses_SeedHasUnknownBucket(t *testing.T) {
	s := newTestStore(t)

	responses, err := s.LoadResponses()
	require.NoError(t, err)
	assert.NotEmpty(t, responses["unknown"])
	assert.NotEmpty(t, responses["greeting"])
}

func TestTemplates_SeedLoads(t *testing.T) {
	s := newTestStore(t)

	templates, err := s.LoadTemplates()
	require.NoError(t, err)
	require.NotEmpty(t, templates["introduction"])
	assert.Equal(t, "user", templates["introduction"][0].Role)
}
