// Package seed embeds the built-in default documents for every lexical
// resource. When a persisted document is missing or malformed, the store
// falls back to these — the engine is usable with zero training data.
//
// Usage:
//
//	jsonstore.New(dir) // reads seed.MustResource internally
package seed

import (
	"embed"
	"fmt"
)

//go:embed v1/*.json
var FS embed.FS

// MustResource returns the seed document with the given file name.
// Panics if the name is unknown — seed data is compile-time fixed, so a
// miss is a programming error, not a runtime condition.
func MustResource(name string) []byte {
	data, err := FS.ReadFile("v1/" + name)
	if err != nil {
		panic(fmt.Sprintf("seed: no embedded resource %q: %v", name, err))
	}
	return data
}
