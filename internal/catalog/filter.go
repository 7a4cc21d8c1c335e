package catalog

import (
	"sort"
	"strings"
)

// State is the transient UI state the filter pipeline runs on: the raw
// search text (stored untrimmed; trimming happens at filter and display
// time) and the selected category chip.
type State struct {
	Search   string
	Category string
}

// DefaultState selects the sentinel category with no search text.
func DefaultState() State { return State{Category: AllCategories} }

// HasFilters reports whether the state narrows the catalog at all.
func (s State) HasFilters() bool {
	return s.Category != AllCategories || strings.TrimSpace(s.Search) != ""
}

// Categories returns the distinct category labels of the catalog in sorted
// order, prefixed with the AllCategories sentinel. Total over an empty
// catalog, which yields just the sentinel.
func (c Catalog) Categories() []string {
	seen := make(map[string]struct{}, len(c.Commands))
	labels := make([]string, 0, len(c.Commands))
	for _, r := range c.Commands {
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		labels = append(labels, r.Category)
	}
	sort.Strings(labels)
	return append([]string{AllCategories}, labels...)
}

// SearchText derives the haystack substring search runs against: every
// textual field of the record joined by newlines, notes collapsed to a
// single space-joined part, the whole thing lowercased. No tokenization,
// no ranking; recomputed per pass.
func SearchText(r Record) string {
	parts := make([]string, 0, len(r.Examples)+5)
	parts = append(parts, r.Title, r.Category, r.Description, r.Syntax)
	parts = append(parts, r.Examples...)
	parts = append(parts, strings.Join(r.Notes, " "))
	return strings.ToLower(strings.Join(parts, "\n"))
}

// Filter returns the ordered subsequence of records passing both gates:
// the category gate (exact, case-sensitive match unless the sentinel is
// selected) and the search gate (case-insensitive substring of SearchText,
// passing unconditionally when the trimmed query is empty). Stable: the
// catalog order is preserved, never re-sorted.
func (c Catalog) Filter(s State) []Record {
	query := strings.ToLower(strings.TrimSpace(s.Search))
	out := make([]Record, 0, len(c.Commands))
	for _, r := range c.Commands {
		if s.Category != AllCategories && r.Category != s.Category {
			continue
		}
		if query != "" && !strings.Contains(SearchText(r), query) {
			continue
		}
		out = append(out, r)
	}
	return out
}
