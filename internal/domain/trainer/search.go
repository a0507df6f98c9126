package trainer

import (
	"sort"
	"strings"

	"github.com/corey/boli/internal/ports"
)

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IdiomResult is one idiom search hit.
type IdiomResult struct {
	Kumaoni string `json:"kumaoni"`
	Meaning string `json:"meaning"`
}

// SearchResults groups hits by resource. Slices keep store order.
type SearchResults struct {
	Words   []ports.Pair  `json:"words"`
	Phrases []ports.Pair  `json:"phrases"`
	Idioms  []IdiomResult `json:"idioms"`
}

// Empty reports whether the search matched nothing.
func (r SearchResults) Empty() bool {
	return len(r.Words) == 0 && len(r.Phrases) == 0 && len(r.Idioms) == 0
}

// Search finds entries whose either side contains the query,
// case-insensitively.
func (t *Trainer) Search(query string) SearchResults {
	query = strings.ToLower(strings.TrimSpace(query))
	var out SearchResults

	t.vocab.Range(func(h, k string) bool {
		if strings.Contains(strings.ToLower(h), query) || strings.Contains(strings.ToLower(k), query) {
			out.Words = append(out.Words, ports.Pair{Hinglish: h, Kumaoni: k})
		}
		return true
	})

	t.phrases.Range(func(h, k string) bool {
		if strings.Contains(strings.ToLower(h), query) || strings.Contains(strings.ToLower(k), query) {
			out.Phrases = append(out.Phrases, ports.Pair{Hinglish: h, Kumaoni: k})
		}
		return true
	})

	t.idioms.Range(func(k, meaning string) bool {
		if strings.Contains(strings.ToLower(k), query) || strings.Contains(strings.ToLower(meaning), query) {
			out.Idioms = append(out.Idioms, IdiomResult{Kumaoni: k, Meaning: meaning})
		}
		return true
	})

	return out
}
