package recent

// Options is the resolved listing configuration.
type Options struct {
	ShowAll bool   // list every ref under refs/
	Limit   int    // maximum refs to print, 0 = unlimited
	Pattern string // namespace selector, e.g. "heads/", "tags/", "origin"
	Filter  string // fuzzy query on display names, empty = no filter
}

// ResolveLimit returns the effective limit. An explicit count always wins
// (0 meaning unlimited). Without one, showAll means unlimited and anything
// else gets def.
func ResolveLimit(count *int, showAll bool, def int) int {
	if count != nil {
		return *count
	}
	if showAll {
		return 0
	}
	return def
}
