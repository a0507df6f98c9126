package miner

import (
	"strings"

	"github.com/corey/boli/internal/ports"
)

// Collocation thresholds.
const (
	collocMinSuccessors = 2
	collocTopN          = 3
	collocMinCount      = 2
)

// MineCollocations records, for each Kumaoni word, which words follow
// it. A word qualifies when it has at least 2 distinct successors; its
// table keeps the top 3 successors that occur at least twice. Words
// whose top successors all fall under the count floor are dropped.
func MineCollocations(corpus ports.Corpus) ports.CollocationTable {
	votes := newCounterMap()

	for _, item := range corpus {
		words := strings.Fields(strings.ToLower(item.Kumaoni))
		for i := 0; i+1 < len(words); i++ {
			votes.at(words[i]).add(words[i+1])
		}
	}

	out := ports.CollocationTable{}
	for _, word := range votes.keys() {
		c := votes.at(word)
		if c.len() < collocMinSuccessors {
			continue
		}
		var top []ports.Collocate
		for _, succ := range c.topN(collocTopN) {
			if n := c.count(succ); n >= collocMinCount {
				top = append(top, ports.Collocate{Word: succ, Count: n})
			}
		}
		if len(top) > 0 {
			out[word] = top
		}
	}
	return out
}
