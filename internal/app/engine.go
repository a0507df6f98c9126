// Package app wires together all adapters and domain logic. It owns the
// shared lexical stores: every component reads and writes the same
// in-memory Dicts, so a taught word is visible to translation,
// detection and recognition immediately, and each mutation is persisted
// through the lexicon before the call returns.
package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/corey/boli/internal/adapters/ahocorasick"
	"github.com/corey/boli/internal/adapters/bbolt"
	"github.com/corey/boli/internal/adapters/jsonstore"
	"github.com/corey/boli/internal/adapters/ollama"
	"github.com/corey/boli/internal/config"
	"github.com/corey/boli/internal/domain/dialogue"
	"github.com/corey/boli/internal/domain/heuristics"
	"github.com/corey/boli/internal/domain/recognizer"
	"github.com/corey/boli/internal/domain/trainer"
	"github.com/corey/boli/internal/domain/translator"
	"github.com/corey/boli/internal/ports"
)

// Engine is the assembled system: stores, domain components and the
// optional generative backend. Not safe for concurrent use.
type Engine struct {
	cfg     config.Config
	lexicon ports.Lexicon
	history ports.History

	vocab        *ports.Dict
	phrases      *ports.Dict
	grammar      ports.GrammarRules
	idioms       *ports.Dict
	corpus       ports.Corpus
	corrections  *ports.Corrections
	expressions  ports.ExpressionSet
	collocations ports.CollocationTable
	responses    ports.ResponseSet
	templates    ports.TemplateSet

	Translator *translator.Engine
	Detector   *heuristics.Detector
	Recognizer *recognizer.Recognizer
	Trainer    *trainer.Trainer
	Responder  *dialogue.Responder
	Generator  ports.Generator
}

// New loads every resource and wires the components. The history
// database is optional: histErr is reported but does not fail startup;
// conversation and training logs are then kept in memory only.
func New(cfg config.Config) (*Engine, error) {
	store, err := jsonstore.New(cfg.Data.Dir)
	if err != nil {
		return nil, err
	}

	e := &Engine{cfg: cfg, lexicon: store}

	if history, err := bbolt.Open(cfg.HistoryPath()); err == nil {
		e.history = history
	} else {
		fmt.Fprintf(os.Stderr, "boli: history database unavailable (%v), sessions will not persist\n", err)
	}

	if err := e.loadAll(); err != nil {
		return nil, err
	}
	e.wire()

	if cfg.Ollama.Enabled {
		e.Generator = ollama.New(cfg.Ollama.BaseURL, cfg.Ollama.Model, cfg.Ollama.Timeout)
	}
	return e, nil
}

// loadAll pulls every document from the lexicon into memory.
func (e *Engine) loadAll() error {
	var err error
	if e.vocab, err = e.lexicon.LoadVocabulary(); err != nil {
		return err
	}
	if e.phrases, err = e.lexicon.LoadPhrases(); err != nil {
		return err
	}
	if e.grammar, err = e.lexicon.LoadGrammar(); err != nil {
		return err
	}
	if e.idioms, err = e.lexicon.LoadIdioms(); err != nil {
		return err
	}
	if e.corpus, err = e.lexicon.LoadCorpus(); err != nil {
		return err
	}
	if e.corrections, err = e.lexicon.LoadCorrections(); err != nil {
		return err
	}
	if e.expressions, err = e.lexicon.LoadExpressions(); err != nil {
		return err
	}
	if e.collocations, err = e.lexicon.LoadCollocations(); err != nil {
		return err
	}
	if e.responses, err = e.lexicon.LoadResponses(); err != nil {
		return err
	}
	if e.templates, err = e.lexicon.LoadTemplates(); err != nil {
		return err
	}
	return nil
}

// wire builds the domain components over the loaded stores.
func (e *Engine) wire() {
	e.Translator = translator.New(e.vocab, e.phrases, e.grammar)

	e.Detector = heuristics.NewDetector(e.vocab, e.phrases)
	if e.phrases.Len() > 0 {
		e.Detector.UseMatchers(loweredKeys(e.phrases), loweredValues(e.phrases))
	}

	e.Recognizer = recognizer.New(e.idioms, e.expressions, e.collocations)
	if e.idioms.Len() > 0 {
		e.Recognizer.UseIdiomMatcher(loweredKeys(e.idioms))
	}

	var sink ports.TrainingSink
	var sessions ports.SessionSink
	if e.history != nil {
		sink = e.history
		sessions = e.history
	}
	e.Trainer = trainer.New(e.vocab, e.phrases, e.grammar, e.idioms, e.corpus, e.corrections, e.lexicon, sink)

	e.Responder = dialogue.New(e.responses, e.Detector, sessions)
	if e.cfg.Chat.Preference != "" {
		// Invalid configured preference falls back to mixed silently;
		// the chat command re-validates interactive changes.
		_ = e.Responder.SetPreference(e.cfg.Chat.Preference)
	}
}

// loweredKeys builds a matcher over a Dict's lowercased keys. Matchers
// replace case-insensitive substring scans, so patterns are normalized
// the same way the scans normalize the text.
func loweredKeys(d *ports.Dict) *ahocorasick.Matcher {
	keys := make([]string, 0, d.Len())
	d.Range(func(k, _ string) bool {
		keys = append(keys, strings.ToLower(k))
		return true
	})
	m := &ahocorasick.Matcher{}
	m.Build(keys)
	return m
}

// loweredValues builds a matcher over a Dict's lowercased values.
func loweredValues(d *ports.Dict) *ahocorasick.Matcher {
	vals := make([]string, 0, d.Len())
	d.Range(func(_, v string) bool {
		vals = append(vals, strings.ToLower(v))
		return true
	})
	m := &ahocorasick.Matcher{}
	m.Build(vals)
	return m
}

// Reload re-reads every document and rebuilds the components. Called
// after mining and by the data-directory watcher. Open sessions are
// flushed first: rewiring starts fresh sessions, and unflushed entries
// would otherwise be lost.
func (e *Engine) Reload() error {
	if e.Trainer != nil {
		if err := e.Trainer.Flush(); err != nil {
			return err
		}
	}
	if e.Responder != nil {
		if err := e.Responder.Flush(); err != nil {
			return err
		}
	}
	if err := e.loadAll(); err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	e.wire()
	return nil
}

// Close releases the history database and flushes open sessions.
func (e *Engine) Close() error {
	var firstErr error
	if e.Responder != nil {
		if err := e.Responder.Flush(); err != nil {
			firstErr = err
		}
	}
	if e.Trainer != nil {
		if err := e.Trainer.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if e.history != nil {
		if err := e.history.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// AutoTranslate detects the input language and translates toward the
// other one. It returns the translation and the direction used.
func (e *Engine) AutoTranslate(text string) (string, translator.Direction) {
	dir := translator.HinglishToKumaoni
	if e.Detector.Detect(text) == heuristics.LangKumaoni {
		dir = translator.KumaoniToHinglish
	}
	return e.Translator.Translate(text, dir), dir
}

// Lexicon exposes the persistence layer, for commands that write
// documents directly.
func (e *Engine) Lexicon() ports.Lexicon { return e.lexicon }

// DataDir returns the resolved data directory.
func (e *Engine) DataDir() string { return e.cfg.Data.Dir }

// History exposes the session store; nil when the database failed to
// open.
func (e *Engine) History() ports.History { return e.history }

// Corpus returns the live corpus, including examples added this
// session.
func (e *Engine) Corpus() ports.Corpus { return e.Trainer.Corpus() }
