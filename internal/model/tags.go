package model

import (
	"fmt"
	"strings"
	"unicode"
)

// SplitTags normalizes a tag list given as a comma/space separated string,
// a []string or a []any (as decoded from YAML or JSON). Tags are trimmed,
// lower-cased and de-duplicated with first-seen order preserved.
func SplitTags(v any) []string {
	var raw []string
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		raw = strings.FieldsFunc(t, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
	case []string:
		raw = t
	case []Trait:
		for _, tr := range t {
			raw = append(raw, string(tr))
		}
	case []any:
		for _, item := range t {
			raw = append(raw, fmt.Sprint(item))
		}
	default:
		raw = []string{fmt.Sprint(t)}
	}

	seen := make(map[string]bool, len(raw))
	var out []string
	for _, tag := range raw {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
