package recent

import (
	"sort"

	"github.com/sahilm/fuzzy"
)

// Filter keeps the refs whose display name fuzzy-matches query.
// Matches keep their input order, so recency is preserved.
func Filter(refs []Ref, query string) []Ref {
	if query == "" {
		return refs
	}

	names := make([]string, len(refs))
	for i, r := range refs {
		names[i] = DisplayName(r.FullName)
	}

	matches := fuzzy.Find(query, names)
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Index < matches[j].Index
	})

	filtered := make([]Ref, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, refs[m.Index])
	}
	return filtered
}
