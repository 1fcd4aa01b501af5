package recent

// Report is everything the renderer needs for one listing.
type Report struct {
	Refs    []Ref  // sorted, most recent first
	Merged  Set    // short names merged into the current branch
	Current string // current branch, "HEAD" when detached
	Limit   int    // 0 = unlimited
}

// Visible returns the refs within the limit.
func (r Report) Visible() []Ref {
	if r.Limit > 0 && len(r.Refs) > r.Limit {
		return r.Refs[:r.Limit]
	}
	return r.Refs
}

// Hidden returns how many refs the limit cut off.
func (r Report) Hidden() int {
	return len(r.Refs) - len(r.Visible())
}

// IsCurrent reports whether name is the checked-out branch.
func (r Report) IsCurrent(name string) bool {
	return name == r.Current
}

// IsMerged reports whether name gets the merged marker.
// The current branch is never marked merged.
func (r Report) IsMerged(name string) bool {
	return r.Merged[name] && !r.IsCurrent(name)
}

// Entry is the export form of a visible ref.
type Entry struct {
	Name    string `json:"name" yaml:"name"`
	Ref     string `json:"ref" yaml:"ref"`
	Date    string `json:"date" yaml:"date"`
	Author  string `json:"author" yaml:"author"`
	Subject string `json:"subject" yaml:"subject"`
	Current bool   `json:"current" yaml:"current"`
	Merged  bool   `json:"merged" yaml:"merged"`
}

// Entries converts the visible refs to export entries.
func (r Report) Entries() []Entry {
	visible := r.Visible()
	entries := make([]Entry, 0, len(visible))
	for _, ref := range visible {
		name := DisplayName(ref.FullName)
		entries = append(entries, Entry{
			Name:    name,
			Ref:     ref.FullName,
			Date:    ref.RelativeDate,
			Author:  ref.Author(),
			Subject: ref.Subject,
			Current: r.IsCurrent(name),
			Merged:  r.IsMerged(name),
		})
	}
	return entries
}
