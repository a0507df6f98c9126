// Package trainer mutates the lexical stores: teaching words, phrases,
// idioms, grammar rules and corpus examples, with a per-session log of
// every change and an append-only correction history for retaught keys.
package trainer

import (
	"fmt"
	"strings"
	"time"

	"github.com/corey/boli/internal/ports"
)

// Persister is the subset of the lexicon the trainer writes through.
type Persister interface {
	SaveVocabulary(*ports.Dict) error
	SavePhrases(*ports.Dict) error
	SaveGrammar(ports.GrammarRules) error
	SaveIdioms(*ports.Dict) error
	SaveCorpus(ports.Corpus) error
	SaveCorrections(*ports.Corrections) error
}

// Trainer applies teaching operations to the shared in-memory stores
// and persists each change immediately. Changes are also appended to
// the current session log; Flush hands the log to the training sink.
// Not safe for concurrent use.
type Trainer struct {
	vocab       *ports.Dict
	phrases     *ports.Dict
	grammar     ports.GrammarRules
	idioms      *ports.Dict
	corpus      ports.Corpus
	corrections *ports.Corrections

	store Persister
	log   ports.TrainingSink
	now   func() time.Time

	sessionID string
	started   time.Time
	entries   []ports.TrainingEntry
}

// New creates a trainer over the shared stores. log may be nil, in
// which case Flush is a no-op. The session ID is the start time in
// yyyymmddhhmmss form.
func New(vocab, phrases *ports.Dict, grammar ports.GrammarRules, idioms *ports.Dict, corpus ports.Corpus, corrections *ports.Corrections, store Persister, log ports.TrainingSink) *Trainer {
	t := &Trainer{
		vocab:       vocab,
		phrases:     phrases,
		grammar:     grammar,
		idioms:      idioms,
		corpus:      corpus,
		corrections: corrections,
		store:       store,
		log:         log,
		now:         time.Now,
	}
	if t.vocab == nil {
		t.vocab = ports.NewDict()
	}
	if t.phrases == nil {
		t.phrases = ports.NewDict()
	}
	if t.grammar == nil {
		t.grammar = ports.GrammarRules{}
	}
	if t.idioms == nil {
		t.idioms = ports.NewDict()
	}
	if t.corrections == nil {
		t.corrections = ports.NewCorrections()
	}
	t.started = t.now()
	t.sessionID = t.started.Format("20060102150405")
	return t
}

// SetClock replaces the time source and restarts the session clock.
// The session ID is recomputed from the new source. Used by tests.
func (t *Trainer) SetClock(now func() time.Time) {
	t.now = now
	t.started = now()
	t.sessionID = t.started.Format("20060102150405")
}

// SessionID returns the current training session identifier.
func (t *Trainer) SessionID() string { return t.sessionID }

// Corpus returns the current corpus including any added examples.
func (t *Trainer) Corpus() ports.Corpus { return t.corpus }

// AddWord teaches a vocabulary entry. The Hinglish key is lowercased
// and trimmed, the Kumaoni value trimmed. Re-teaching the identical
// value is a no-op returning (false, nil); a conflicting value records
// the displaced translation in the correction history before the
// overwrite.
func (t *Trainer) AddWord(hinglish, kumaoni string) (bool, error) {
	return t.addMapping(t.vocab, "word", hinglish, kumaoni, t.corrections.Words, t.store.SaveVocabulary)
}

// AddPhrase teaches a phrase entry, with the same normalization,
// idempotence and correction rules as AddWord.
func (t *Trainer) AddPhrase(hinglish, kumaoni string) (bool, error) {
	return t.addMapping(t.phrases, "phrase", hinglish, kumaoni, t.corrections.Phrases, t.store.SavePhrases)
}

func (t *Trainer) addMapping(dict *ports.Dict, kind, hinglish, kumaoni string, history map[string][]ports.CorrectionRecord, save func(*ports.Dict) error) (bool, error) {
	hinglish = strings.ToLower(strings.TrimSpace(hinglish))
	kumaoni = strings.TrimSpace(kumaoni)

	if existing, ok := dict.Get(hinglish); ok {
		if existing == kumaoni {
			return false, nil
		}
		history[hinglish] = append(history[hinglish], ports.CorrectionRecord{
			Old:       existing,
			New:       kumaoni,
			Timestamp: t.now(),
		})
	}

	dict.Set(hinglish, kumaoni)
	if err := save(dict); err != nil {
		return false, fmt.Errorf("save %s mapping: %w", kind, err)
	}
	if len(history) > 0 {
		if err := t.store.SaveCorrections(t.corrections); err != nil {
			return false, fmt.Errorf("save corrections: %w", err)
		}
	}

	t.logEntry(ports.TrainingEntry{Type: kind, Hinglish: hinglish, Kumaoni: kumaoni})
	return true, nil
}

// AddIdiom upserts an idiom. No correction history is kept for idioms.
func (t *Trainer) AddIdiom(kumaoni, meaning string) error {
	kumaoni = strings.TrimSpace(kumaoni)
	meaning = strings.TrimSpace(meaning)

	t.idioms.Set(kumaoni, meaning)
	if err := t.store.SaveIdioms(t.idioms); err != nil {
		return fmt.Errorf("save idioms: %w", err)
	}

	t.logEntry(ports.TrainingEntry{Type: "idiom", Kumaoni: kumaoni, Meaning: meaning})
	return nil
}

// AddExample appends a corpus example. An exact duplicate pair is a
// no-op returning (false, nil).
func (t *Trainer) AddExample(hinglish, kumaoni string) (bool, error) {
	pair := ports.Pair{
		Hinglish: strings.TrimSpace(hinglish),
		Kumaoni:  strings.TrimSpace(kumaoni),
	}
	if t.corpus.Contains(pair) {
		return false, nil
	}

	t.corpus = append(t.corpus, pair)
	if err := t.store.SaveCorpus(t.corpus); err != nil {
		return false, fmt.Errorf("save corpus: %w", err)
	}

	t.logEntry(ports.TrainingEntry{Type: "example", Hinglish: pair.Hinglish, Kumaoni: pair.Kumaoni})
	return true, nil
}

// AddGrammarRule upserts a rule under the given category, creating the
// category if it does not exist yet. Category names are open-ended.
func (t *Trainer) AddGrammarRule(category, hinglish, kumaoni string) error {
	hinglish = strings.ToLower(strings.TrimSpace(hinglish))
	kumaoni = strings.TrimSpace(kumaoni)

	rules, ok := t.grammar[category]
	if !ok || rules == nil {
		rules = ports.NewDict()
		t.grammar[category] = rules
	}
	rules.Set(hinglish, kumaoni)
	if err := t.store.SaveGrammar(t.grammar); err != nil {
		return fmt.Errorf("save grammar: %w", err)
	}

	t.logEntry(ports.TrainingEntry{Type: "grammar", Category: category, Hinglish: hinglish, Kumaoni: kumaoni})
	return nil
}

func (t *Trainer) logEntry(e ports.TrainingEntry) {
	e.Timestamp = t.now()
	t.entries = append(t.entries, e)
}

// Flush appends the session log to the training sink and starts a new
// empty log. A session with no entries is not flushed.
func (t *Trainer) Flush() error {
	if len(t.entries) == 0 || t.log == nil {
		t.entries = nil
		return nil
	}
	session := &ports.TrainingSession{
		SessionID: t.sessionID,
		Timestamp: t.started,
		Entries:   t.entries,
	}
	if err := t.log.AppendTraining(session); err != nil {
		return fmt.Errorf("append training log: %w", err)
	}
	t.entries = nil
	return nil
}

// Pending returns the number of unflushed log entries.
func (t *Trainer) Pending() int { return len(t.entries) }
