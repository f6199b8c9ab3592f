package model

import "strings"

// DescriptionSeparator joins content-description parts.
const DescriptionSeparator = ". "

// Parts are the semantic inputs of a content description.
type Parts struct {
	Label string
	Value string
	Hint  string
	// Extra is role or state text the native node cannot express itself.
	Extra string
}

// ComposeDescription builds the single string Android reads for a view:
// label, value, hint, extra in that order, empty parts omitted, each part's
// trailing period dropped so the separator never doubles.
func ComposeDescription(p Parts) string {
	parts := make([]string, 0, 4)
	for _, s := range []string{p.Label, p.Value, p.Hint, p.Extra} {
		s = strings.TrimSpace(s)
		s = strings.TrimRight(s, ".")
		s = strings.TrimSpace(s)
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, DescriptionSeparator)
}
