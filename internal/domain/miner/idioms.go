package miner

import (
	"strings"

	"github.com/corey/boli/internal/ports"
)

// Idiom extraction thresholds.
const (
	idiomMinNgram       = 2
	idiomMaxNgram       = 4
	idiomMinOccurrences = 3
	idiomMinConsistency = 0.7
)

// MineIdioms extracts recurring Kumaoni n-grams whose Hinglish context
// is consistent. Every 2- to 4-word window of each Kumaoni sentence
// votes for that sentence's full Hinglish side; a window that occurs at
// least 3 times and whose leading vote holds at least 70% of the total
// becomes an idiom. Output order follows first occurrence in the corpus.
func MineIdioms(corpus ports.Corpus) *ports.Dict {
	votes := newCounterMap()

	for _, item := range corpus {
		words := strings.Fields(item.Kumaoni)
		for n := idiomMinNgram; n <= idiomMaxNgram; n++ {
			for i := 0; i+n <= len(words); i++ {
				phrase := strings.Join(words[i:i+n], " ")
				votes.at(phrase).add(item.Hinglish)
			}
		}
	}

	idioms := ports.NewDict()
	for _, phrase := range votes.keys() {
		c := votes.at(phrase)
		total := c.total()
		if total < idiomMinOccurrences {
			continue
		}
		winner, count, ok := c.mostCommon()
		if !ok {
			continue
		}
		if float64(count)/float64(total) >= idiomMinConsistency {
			idioms.Set(phrase, winner)
		}
	}
	return idioms
}
