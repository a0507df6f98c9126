// Package jsonstore implements ports.Lexicon over a directory of JSON
// documents, one file per resource. Loads fail open: a missing file is
// recreated from the embedded seed and a malformed file falls back to
// the seed without touching what is on disk. Saves go through a temp
// file and rename, so a crash mid-write cannot corrupt a document.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/corey/boli/internal/ports"
	"github.com/corey/boli/seed"
)

// Document file names. These are part of the on-disk contract; external
// tooling reads them by name.
const (
	fileVocabulary   = "vocab_mapping.json"
	filePhrases      = "phrases_mapping.json"
	fileGrammar      = "grammar_rules.json"
	fileIdioms       = "idioms.json"
	fileExpressions  = "expressions.json"
	fileCollocations = "collocations.json"
	fileCorrections  = "corrections.json"
	fileCorpus       = "data.json"
	filePatterns     = "patterns.json"
	fileVerbForms    = "verb_forms.json"
	fileStructures   = "sentence_structures.json"
	fileResponses    = "chat_responses.json"
	fileTemplates    = "conversations.json"
)

// Store is a directory-backed ports.Lexicon.
type Store struct {
	dir string
}

var _ ports.Lexicon = (*Store)(nil)

// New creates the data directory if needed and returns a store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the backing directory.
func (s *Store) Dir() string { return s.dir }

// load reads the named document into out. Missing file: the seed copy
// is written to disk and decoded instead. Malformed file: the seed is
// decoded and the file left as is, with a notice on stderr.
func (s *Store) load(name string, out any) error {
	path := filepath.Join(s.dir, name)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		data = seed.MustResource(name)
		if werr := s.write(name, data); werr != nil {
			return fmt.Errorf("seed %s: %w", name, werr)
		}
	} else if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	// Decode into a scratch value first. A failed decode can leave its
	// target partially populated, and for map-typed resources those
	// entries would merge with the seed fallback; out must carry either
	// the document or the seed, never a mix.
	scratch := reflect.New(reflect.TypeOf(out).Elem())
	if uerr := json.Unmarshal(data, scratch.Interface()); uerr != nil {
		fmt.Fprintf(os.Stderr, "boli: %s is malformed (%v), using built-in defaults\n", name, uerr)
		if serr := json.Unmarshal(seed.MustResource(name), out); serr != nil {
			return fmt.Errorf("decode seed %s: %w", name, serr)
		}
		return nil
	}
	reflect.ValueOf(out).Elem().Set(scratch.Elem())
	return nil
}

// save writes the document atomically, indented for hand editing.
func (s *Store) save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	return s.write(name, append(data, '\n'))
}

func (s *Store) write(name string, data []byte) error {
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}

func (s *Store) LoadVocabulary() (*ports.Dict, error) {
	d := ports.NewDict()
	if err := s.load(fileVocabulary, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Store) SaveVocabulary(d *ports.Dict) error { return s.save(fileVocabulary, d) }

func (s *Store) LoadPhrases() (*ports.Dict, error) {
	d := ports.NewDict()
	if err := s.load(filePhrases, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Store) SavePhrases(d *ports.Dict) error { return s.save(filePhrases, d) }

func (s *Store) LoadGrammar() (ports.GrammarRules, error) {
	g := ports.GrammarRules{}
	if err := s.load(fileGrammar, &g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Store) SaveGrammar(g ports.GrammarRules) error { return s.save(fileGrammar, g) }

func (s *Store) LoadIdioms() (*ports.Dict, error) {
	d := ports.NewDict()
	if err := s.load(fileIdioms, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Store) SaveIdioms(d *ports.Dict) error { return s.save(fileIdioms, d) }

func (s *Store) LoadExpressions() (ports.ExpressionSet, error) {
	e := ports.ExpressionSet{}
	if err := s.load(fileExpressions, &e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Store) SaveExpressions(e ports.ExpressionSet) error { return s.save(fileExpressions, e) }

func (s *Store) LoadCollocations() (ports.CollocationTable, error) {
	c := ports.CollocationTable{}
	if err := s.load(fileCollocations, &c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) SaveCollocations(c ports.CollocationTable) error { return s.save(fileCollocations, c) }

func (s *Store) LoadCorrections() (*ports.Corrections, error) {
	c := ports.NewCorrections()
	if err := s.load(fileCorrections, c); err != nil {
		return nil, err
	}
	if c.Words == nil {
		c.Words = map[string][]ports.CorrectionRecord{}
	}
	if c.Phrases == nil {
		c.Phrases = map[string][]ports.CorrectionRecord{}
	}
	return c, nil
}

func (s *Store) SaveCorrections(c *ports.Corrections) error { return s.save(fileCorrections, c) }

func (s *Store) LoadCorpus() (ports.Corpus, error) {
	var c ports.Corpus
	if err := s.load(fileCorpus, &c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) SaveCorpus(c ports.Corpus) error { return s.save(fileCorpus, c) }

func (s *Store) LoadPatterns() (ports.PatternSet, error) {
	p := ports.PatternSet{}
	if err := s.load(filePatterns, &p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Store) SavePatterns(p ports.PatternSet) error { return s.save(filePatterns, p) }

func (s *Store) LoadVerbForms() (ports.VerbForms, error) {
	v := ports.VerbForms{}
	if err := s.load(fileVerbForms, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Store) SaveVerbForms(v ports.VerbForms) error { return s.save(fileVerbForms, v) }

func (s *Store) LoadStructures() (ports.StructureMap, error) {
	m := ports.StructureMap{}
	if err := s.load(fileStructures, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Store) SaveStructures(m ports.StructureMap) error { return s.save(fileStructures, m) }

func (s *Store) LoadResponses() (ports.ResponseSet, error) {
	r := ports.ResponseSet{}
	if err := s.load(fileResponses, &r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Store) SaveResponses(r ports.ResponseSet) error { return s.save(fileResponses, r) }

func (s *Store) LoadTemplates() (ports.TemplateSet, error) {
	t := ports.TemplateSet{}
	if err := s.load(fileTemplates, &t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Store) SaveTemplates(t ports.TemplateSet) error { return s.save(fileTemplates, t) }
