// Package ports defines the interfaces (contracts) that adapters must implement,
// plus the shared resource types they exchange. Domain logic depends only on
// these types and interfaces, never on concrete adapters.
package ports

import "time"

// Grammar rule categories shipped by default. AddGrammarRule accepts any
// category name; these four are the ones the translation cascade consults.
const (
	CategoryVerbEndings   = "verb_endings"
	CategoryPostpositions = "postpositions"
	CategoryPronouns      = "pronouns"
	CategoryQuestionWords = "question_words"
)

// ExpressionCategories is the closed set of expression buckets, in the
// order categorization checks them (first match wins).
var ExpressionCategories = []string{
	"greetings",
	"farewells",
	"thanks",
	"apologies",
	"questions",
	"affirmations",
	"negations",
}

// Pair is an aligned Hinglish/Kumaoni text pair: a corpus example, an
// expression, or a response template side-by-side.
type Pair struct {
	Hinglish string `json:"hinglish"`
	Kumaoni  string `json:"kumaoni"`
}

// Corpus is the ordered list of aligned sentence pairs the miner consumes.
type Corpus []Pair

// Contains reports whether the exact pair is already present.
func (c Corpus) Contains(p Pair) bool {
	for _, e := range c {
		if e == p {
			return true
		}
	}
	return false
}

// GrammarRules maps category name to an ordered Hinglish→Kumaoni mapping.
// Verb-ending keys are suffixes; all other categories map whole tokens.
type GrammarRules map[string]*Dict

// Category returns the mapping for a category, or an empty Dict if the
// category does not exist. Never returns nil.
func (g GrammarRules) Category(name string) *Dict {
	if d, ok := g[name]; ok && d != nil {
		return d
	}
	return NewDict()
}

// ExpressionSet maps expression category to its ordered pair list.
type ExpressionSet map[string][]Pair

// PatternSet is the coarse corpus bucketing (greetings, farewells,
// questions, statements) the miner writes alongside expressions.
type PatternSet map[string][]Pair

// Collocate is one ranked successor of a collocation source word.
type Collocate struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// CollocationTable maps a Kumaoni word to its top successors (at most 3,
// each observed at least twice).
type CollocationTable map[string][]Collocate

// CorrectionRecord is one retained prior value of a retaught key.
type CorrectionRecord struct {
	Old       string    `json:"old"`
	New       string    `json:"new"`
	Timestamp time.Time `json:"timestamp"`
}

// Corrections is the append-only conflict history for vocabulary and
// phrase edits. Current values live in the mappings themselves; only
// displaced values are recorded here.
type Corrections struct {
	Words   map[string][]CorrectionRecord `json:"words"`
	Phrases map[string][]CorrectionRecord `json:"phrases"`
}

// NewCorrections returns an empty corrections log with maps initialized.
func NewCorrections() *Corrections {
	return &Corrections{
		Words:   make(map[string][]CorrectionRecord),
		Phrases: make(map[string][]CorrectionRecord),
	}
}

// VerbForms maps a verb root to observed Hinglish suffix → majority
// Kumaoni surface form.
type VerbForms map[string]map[string]string

// StructureMap maps a Hinglish sentence-structure label to its majority
// Kumaoni counterpart.
type StructureMap map[string]string

// ResponseSet maps conversational intent to candidate response templates.
type ResponseSet map[string][]Pair

// TemplateLine is one turn of a scripted conversation template.
type TemplateLine struct {
	Role     string `json:"role"`
	Hinglish string `json:"hinglish"`
	Kumaoni  string `json:"kumaoni"`
}

// TemplateSet maps topic to a scripted conversation.
type TemplateSet map[string][]TemplateLine

// Lexicon persists the lexical resources as keyed UTF-8 documents.
// Load methods fail open: a missing document is recreated from built-in
// seed data and persisted; a malformed document falls back to the seed
// without touching the file. Load never returns nil resources.
//
// Writes are not isolated against concurrent writers; a single-process,
// single-caller usage model is assumed (last writer wins otherwise).
type Lexicon interface {
	LoadVocabulary() (*Dict, error)
	SaveVocabulary(*Dict) error

	LoadPhrases() (*Dict, error)
	SavePhrases(*Dict) error

	LoadGrammar() (GrammarRules, error)
	SaveGrammar(GrammarRules) error

	LoadIdioms() (*Dict, error)
	SaveIdioms(*Dict) error

	LoadExpressions() (ExpressionSet, error)
	SaveExpressions(ExpressionSet) error

	LoadCollocations() (CollocationTable, error)
	SaveCollocations(CollocationTable) error

	LoadCorrections() (*Corrections, error)
	SaveCorrections(*Corrections) error

	LoadCorpus() (Corpus, error)
	SaveCorpus(Corpus) error

	LoadPatterns() (PatternSet, error)
	SavePatterns(PatternSet) error

	LoadVerbForms() (VerbForms, error)
	SaveVerbForms(VerbForms) error

	LoadStructures() (StructureMap, error)
	SaveStructures(StructureMap) error

	LoadResponses() (ResponseSet, error)
	SaveResponses(ResponseSet) error

	LoadTemplates() (TemplateSet, error)
	SaveTemplates(TemplateSet) error
}
