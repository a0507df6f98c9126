// Package miner derives grammar rules, idioms, expressions and
// collocations from the parallel corpus. Everything here is a pure
// function of the corpus: same input, same output, every run.
package miner

// counter is a frequency counter that remembers first-insertion order,
// so majority votes are reproducible: ties go to the value seen first.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) total() int {
	n := 0
	for _, v := range c.counts {
		n += v
	}
	return n
}

func (c *counter) len() int { return len(c.counts) }

// mostCommon returns the key with the highest count and that count.
// ok is false for an empty counter.
func (c *counter) mostCommon() (key string, count int, ok bool) {
	for _, k := range c.order {
		if c.counts[k] > count {
			key, count, ok = k, c.counts[k], true
		}
	}
	return key, count, ok
}

// topN returns up to n keys by descending count, first-seen order
// breaking ties.
func (c *counter) topN(n int) []string {
	picked := make(map[string]bool, n)
	var out []string
	for len(out) < n && len(out) < len(c.order) {
		best, bestCount := "", -1
		for _, k := range c.order {
			if !picked[k] && c.counts[k] > bestCount {
				best, bestCount = k, c.counts[k]
			}
		}
		picked[best] = true
		out = append(out, best)
	}
	return out
}

func (c *counter) count(key string) int { return c.counts[key] }

// counterMap groups counters by key, preserving key insertion order.
type counterMap struct {
	counters map[string]*counter
	order    []string
}

func newCounterMap() *counterMap {
	return &counterMap{counters: map[string]*counter{}}
}

func (m *counterMap) at(key string) *counter {
	c, ok := m.counters[key]
	if !ok {
		c = newCounter()
		m.counters[key] = c
		m.order = append(m.order, key)
	}
	return c
}

func (m *counterMap) keys() []string { return m.order }
