package miner

import (
	"strings"

	"github.com/corey/boli/internal/ports"
)

const punctCutset = `.,?!"'`

// Closed word classes used to seed the mining passes. These are fixed
// linguistic inventories, not configuration.
var (
	hinglishVerbEndings = []string{"na", "ta", "te", "ti", "ya", "ye", "yi", "a", "e", "i", "o", "u"}
	kumaoniVerbEndings  = []string{"no", "to", "ta", "ti", "yo", "ya", "yi", "o", "a", "i", "u"}

	hinglishPostpositions = []string{"ka", "ke", "ki", "ko", "se", "me", "par", "tak"}

	hinglishPronouns = []string{"main", "mujhe", "mera", "meri", "hum", "hamara", "tu", "tum", "tumhara",
		"aap", "aapka", "woh", "uska", "uski", "ye", "iska", "iski"}

	hinglishQuestionWords = []string{"kya", "kaun", "kahan", "kaise", "kyun", "kitna", "kitne", "kitni", "kab"}

	// Roots tracked for the verb-form tables.
	commonVerbs = []string{"kar", "ho", "ja", "aa", "de", "le", "bol", "dekh", "sun", "kha", "pi", "so", "mil", "likh", "padh"}

	imperativeEndings = []string{"o", "en", "iye"}
)

// alignedPairs yields position-aligned word pairs from examples whose
// two sides have the same word count. Misaligned examples carry no
// positional signal and are skipped. Words come back lowercased with
// edge punctuation stripped.
func alignedPairs(corpus ports.Corpus, fn func(h, k string)) {
	for _, item := range corpus {
		hw := strings.Fields(item.Hinglish)
		kw := strings.Fields(item.Kumaoni)
		if len(hw) != len(kw) {
			continue
		}
		for i := range hw {
			h := strings.ToLower(strings.Trim(hw[i], punctCutset))
			k := strings.ToLower(strings.Trim(kw[i], punctCutset))
			fn(h, k)
		}
	}
}

// majority reduces a counterMap to its per-key majority vote, in key
// first-seen order.
func majority(m *counterMap) *ports.Dict {
	out := ports.NewDict()
	for _, key := range m.keys() {
		if winner, _, ok := m.at(key).mostCommon(); ok {
			out.Set(key, winner)
		}
	}
	return out
}

// MineVerbEndings maps Hinglish verb endings to their majority Kumaoni
// ending across aligned word pairs. Every matching ending combination
// on both sides casts a vote; the ending must leave a non-empty stem.
func MineVerbEndings(corpus ports.Corpus) *ports.Dict {
	votes := newCounterMap()
	alignedPairs(corpus, func(h, k string) {
		for _, he := range hinglishVerbEndings {
			if !strings.HasSuffix(h, he) || len(h) <= len(he) {
				continue
			}
			for _, ke := range kumaoniVerbEndings {
				if strings.HasSuffix(k, ke) && len(k) > len(ke) {
					votes.at(he).add(ke)
				}
			}
		}
	})
	return majority(votes)
}

// mineClass maps each Hinglish word from the given closed class to its
// majority aligned Kumaoni counterpart.
func mineClass(corpus ports.Corpus, class []string) *ports.Dict {
	votes := newCounterMap()
	members := make(map[string]bool, len(class))
	for _, w := range class {
		members[w] = true
	}
	alignedPairs(corpus, func(h, k string) {
		if members[h] {
			votes.at(h).add(k)
		}
	})
	return majority(votes)
}

// MinePostpositions maps the known Hinglish postpositions.
func MinePostpositions(corpus ports.Corpus) *ports.Dict {
	return mineClass(corpus, hinglishPostpositions)
}

// MinePronouns maps the known Hinglish pronouns.
func MinePronouns(corpus ports.Corpus) *ports.Dict {
	return mineClass(corpus, hinglishPronouns)
}

// MineQuestionWords maps the known Hinglish question words.
func MineQuestionWords(corpus ports.Corpus) *ports.Dict {
	return mineClass(corpus, hinglishQuestionWords)
}

// MineGrammarRules runs the four class passes and assembles a rule set.
func MineGrammarRules(corpus ports.Corpus) ports.GrammarRules {
	return ports.GrammarRules{
		ports.CategoryVerbEndings:   MineVerbEndings(corpus),
		ports.CategoryPostpositions: MinePostpositions(corpus),
		ports.CategoryPronouns:      MinePronouns(corpus),
		ports.CategoryQuestionWords: MineQuestionWords(corpus),
	}
}

// MineVerbForms maps, per common verb root, each observed Hinglish
// suffix to the majority Kumaoni word it aligns with. A word matching
// several roots votes for all of them.
func MineVerbForms(corpus ports.Corpus) ports.VerbForms {
	votes := map[string]*counterMap{}
	var rootOrder []string

	alignedPairs(corpus, func(h, k string) {
		for _, root := range commonVerbs {
			if !strings.HasPrefix(h, root) {
				continue
			}
			m, ok := votes[root]
			if !ok {
				m = newCounterMap()
				votes[root] = m
				rootOrder = append(rootOrder, root)
			}
			m.at(h[len(root):]).add(k)
		}
	})

	out := ports.VerbForms{}
	for _, root := range rootOrder {
		forms := map[string]string{}
		for _, suffix := range votes[root].keys() {
			if winner, _, ok := votes[root].at(suffix).mostCommon(); ok {
				forms[suffix] = winner
			}
		}
		out[root] = forms
	}
	return out
}

// ClassifyStructure tags a sentence as "question", "command" or
// "statement". Question wins on any question-word token; command needs
// an initial non-pronoun word with an imperative ending.
func ClassifyStructure(sentence string) string {
	words := strings.Fields(strings.ToLower(sentence))

	for _, w := range words {
		for _, qw := range hinglishQuestionWords {
			if w == qw {
				return "question"
			}
		}
	}

	if len(words) > 0 {
		first := words[0]
		pronoun := false
		for _, p := range hinglishPronouns {
			if first == p {
				pronoun = true
				break
			}
		}
		if !pronoun {
			for _, end := range imperativeEndings {
				if strings.HasSuffix(first, end) {
					return "command"
				}
			}
		}
	}

	return "statement"
}

// MineSentenceStructures maps each Hinglish structure class to the
// majority structure class of the Kumaoni side.
func MineSentenceStructures(corpus ports.Corpus) ports.StructureMap {
	votes := newCounterMap()
	for _, item := range corpus {
		votes.at(ClassifyStructure(item.Hinglish)).add(ClassifyStructure(item.Kumaoni))
	}
	out := ports.StructureMap{}
	for _, h := range votes.keys() {
		if winner, _, ok := votes.at(h).mostCommon(); ok {
			out[h] = winner
		}
	}
	return out
}
