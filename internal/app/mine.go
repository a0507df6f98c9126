package app

import (
	"fmt"

	"github.com/corey/boli/internal/domain/miner"
	"github.com/corey/boli/internal/ports"
)

// MineOptions selects which analysis passes to run. The zero value runs
// everything.
type MineOptions struct {
	GrammarOnly  bool
	PatternsOnly bool
}

// MineReport summarizes what a mining run produced.
type MineReport struct {
	GrammarRules       map[string]int `json:"grammar_rules,omitempty"`
	VerbRoots          int            `json:"verb_roots,omitempty"`
	Structures         int            `json:"structures,omitempty"`
	Idioms             int            `json:"idioms,omitempty"`
	ExpressionBuckets  map[string]int `json:"expression_buckets,omitempty"`
	PatternBuckets     map[string]int `json:"pattern_buckets,omitempty"`
	CollocationSources int            `json:"collocation_sources,omitempty"`
	Examples           int            `json:"examples"`
}

// Mine runs the analysis passes over the current corpus, persists every
// produced document and reloads the engine so the new rules are live.
func (e *Engine) Mine(opts MineOptions) (MineReport, error) {
	corpus := e.Corpus()
	report := MineReport{Examples: len(corpus)}

	grammar := !opts.PatternsOnly
	patterns := !opts.GrammarOnly

	if grammar {
		rules := miner.MineGrammarRules(corpus)
		if err := e.lexicon.SaveGrammar(rules); err != nil {
			return report, fmt.Errorf("save grammar: %w", err)
		}
		report.GrammarRules = map[string]int{}
		for cat, d := range rules {
			report.GrammarRules[cat] = d.Len()
		}

		forms := miner.MineVerbForms(corpus)
		if err := e.lexicon.SaveVerbForms(forms); err != nil {
			return report, fmt.Errorf("save verb forms: %w", err)
		}
		report.VerbRoots = len(forms)

		structures := miner.MineSentenceStructures(corpus)
		if err := e.lexicon.SaveStructures(structures); err != nil {
			return report, fmt.Errorf("save sentence structures: %w", err)
		}
		report.Structures = len(structures)
	}

	if patterns {
		idioms := miner.MineIdioms(corpus)
		if err := e.lexicon.SaveIdioms(idioms); err != nil {
			return report, fmt.Errorf("save idioms: %w", err)
		}
		report.Idioms = idioms.Len()

		exprs := miner.MineExpressions(corpus)
		if err := e.lexicon.SaveExpressions(exprs); err != nil {
			return report, fmt.Errorf("save expressions: %w", err)
		}
		report.ExpressionBuckets = bucketSizes(exprs)

		pats := miner.MinePatterns(corpus)
		if err := e.lexicon.SavePatterns(pats); err != nil {
			return report, fmt.Errorf("save patterns: %w", err)
		}
		report.PatternBuckets = bucketSizes(pats)

		colls := miner.MineCollocations(corpus)
		if err := e.lexicon.SaveCollocations(colls); err != nil {
			return report, fmt.Errorf("save collocations: %w", err)
		}
		report.CollocationSources = len(colls)
	}

	if err := e.Reload(); err != nil {
		return report, err
	}
	return report, nil
}

func bucketSizes(m map[string][]ports.Pair) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = len(v)
	}
	return out
}

// Stats counts every store, for the stats command.
type Stats struct {
	Vocabulary       int            `json:"vocabulary"`
	Phrases          int            `json:"phrases"`
	GrammarRules     map[string]int `json:"grammar_rules"`
	Idioms           int            `json:"idioms"`
	Examples         int            `json:"examples"`
	ExpressionCount  int            `json:"expressions"`
	Collocations     int            `json:"collocations"`
	ResponseIntents  int            `json:"response_intents"`
	Templates        int            `json:"templates"`
	StoredSessions   int            `json:"stored_sessions"`
	SessionExchanges int            `json:"session_exchanges"`
}

// Stats snapshots the size of every store.
func (e *Engine) Stats() Stats {
	s := Stats{
		Vocabulary:      e.vocab.Len(),
		Phrases:         e.phrases.Len(),
		GrammarRules:    map[string]int{},
		Idioms:          e.idioms.Len(),
		Examples:        len(e.Corpus()),
		Collocations:    len(e.collocations),
		ResponseIntents: len(e.responses),
		Templates:       len(e.templates),
	}
	for cat, d := range e.grammar {
		s.GrammarRules[cat] = d.Len()
	}
	for _, pairs := range e.expressions {
		s.ExpressionCount += len(pairs)
	}
	if e.history != nil {
		if n, err := e.history.SessionCount(); err == nil {
			s.StoredSessions = n
		}
	}
	s.SessionExchanges = e.Responder.Exchanges()
	return s
}
