package ports

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Dict is a string-to-string mapping that preserves document order.
// The translation engine iterates phrases and verb-ending suffixes in
// "stored order" — the order keys appear in the persisted JSON document.
// encoding/json's map type discards that order, so Dict keeps a parallel
// key slice and round-trips JSON objects without reordering them.
//
// Not safe for concurrent use.
type Dict struct {
	keys []string
	vals map[string]string
}

// NewDict returns an empty Dict.
func NewDict() *Dict {
	return &Dict{vals: make(map[string]string)}
}

// Get returns the value for key and whether it exists.
func (d *Dict) Get(key string) (string, bool) {
	v, ok := d.vals[key]
	return v, ok
}

// Set inserts or updates key. A new key is appended to the iteration
// order; an existing key keeps its original position.
func (d *Dict) Set(key, value string) {
	if d.vals == nil {
		d.vals = make(map[string]string)
	}
	if _, exists := d.vals[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = value
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	return len(d.keys)
}

// Keys returns the keys in stored order. The slice is shared; callers
// must not modify it.
func (d *Dict) Keys() []string {
	return d.keys
}

// Range calls fn for each entry in stored order until fn returns false.
func (d *Dict) Range(fn func(key, value string) bool) {
	for _, k := range d.keys {
		if !fn(k, d.vals[k]) {
			return
		}
	}
}

// FindValueFold returns the first key (in stored order) whose value
// matches val case-insensitively.
func (d *Dict) FindValueFold(val string) (string, bool) {
	for _, k := range d.keys {
		if strings.EqualFold(d.vals[k], val) {
			return k, true
		}
	}
	return "", false
}

// HasValueFold reports whether any value matches val case-insensitively.
func (d *Dict) HasValueFold(val string) bool {
	_, ok := d.FindValueFold(val)
	return ok
}

// MarshalJSON encodes the Dict as a JSON object with keys in stored order.
func (d *Dict) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(d.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, preserving key order as it appears
// in the document. Values must be strings.
func (d *Dict) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("dict: expected JSON object, got %v", tok)
	}

	d.keys = nil
	d.vals = make(map[string]string)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("dict: non-string key %v", keyTok)
		}
		var val string
		if err := dec.Decode(&val); err != nil {
			return fmt.Errorf("dict: value for %q: %w", key, err)
		}
		d.Set(key, val)
	}

	// Consume closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
