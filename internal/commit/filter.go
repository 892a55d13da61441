package commit

import "strings"

// Filter returns the types whose label contains query, ignoring case.
// Canonical order is kept; an empty query matches everything.
func Filter(query string) []Type {
	query = strings.ToLower(query)
	matches := make([]Type, 0, len(typeTable)-1)
	for _, t := range All() {
		if strings.Contains(strings.ToLower(t.String()), query) {
			matches = append(matches, t)
		}
	}
	return matches
}
