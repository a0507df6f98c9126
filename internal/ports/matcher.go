package ports

// TextMatcher is a multi-pattern substring matcher. Build compiles a
// pattern set; Match returns the distinct patterns found in text (each
// pattern reported once no matter how often it occurs).
//
// Domain packages accept a nil matcher and fall back to a plain
// contains-scan, so core behavior never depends on the adapter.
type TextMatcher interface {
	Build(patterns []string)
	Match(text string) []string
}
