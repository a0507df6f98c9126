package trainer

import "github.com/corey/boli/internal/ports"

// ImportDoc is the bulk-import document shape. All sections are
// optional.
type ImportDoc struct {
	Words    map[string]string `json:"words"`
	Phrases  map[string]string `json:"phrases"`
	Examples []ports.Pair      `json:"examples"`
}

// ImportStats counts what a bulk import actually added. Entries skipped
// as duplicates are not counted.
type ImportStats struct {
	Words    int `json:"words"`
	Phrases  int `json:"phrases"`
	Examples int `json:"examples"`
	Failed   int `json:"failed"`
}

// BulkImport applies an import document entry by entry. A failing entry
// is counted and skipped; the rest of the document still imports.
// Word and phrase sections iterate in sorted key order so repeated
// imports of the same document behave identically.
func (t *Trainer) BulkImport(doc ImportDoc) ImportStats {
	var stats ImportStats

	for _, h := range sortedKeys(doc.Words) {
		added, err := t.AddWord(h, doc.Words[h])
		switch {
		case err != nil:
			stats.Failed++
		case added:
			stats.Words++
		}
	}

	for _, h := range sortedKeys(doc.Phrases) {
		added, err := t.AddPhrase(h, doc.Phrases[h])
		switch {
		case err != nil:
			stats.Failed++
		case added:
			stats.Phrases++
		}
	}

	for _, ex := range doc.Examples {
		if ex.Hinglish == "" || ex.Kumaoni == "" {
			continue
		}
		added, err := t.AddExample(ex.Hinglish, ex.Kumaoni)
		switch {
		case err != nil:
			stats.Failed++
		case added:
			stats.Examples++
		}
	}

	return stats
}

// ExportDoc is the full-data export shape.
type ExportDoc struct {
	Vocab   *ports.Dict        `json:"vocab"`
	Phrases *ports.Dict        `json:"phrases"`
	Grammar ports.GrammarRules `json:"grammar"`
	Idioms  *ports.Dict        `json:"idioms"`
	Dataset ports.Corpus       `json:"dataset"`
}

// Export snapshots all teachable data into one document.
func (t *Trainer) Export() ExportDoc {
	return ExportDoc{
		Vocab:   t.vocab,
		Phrases: t.phrases,
		Grammar: t.grammar,
		Idioms:  t.idioms,
		Dataset: t.corpus,
	}
}
