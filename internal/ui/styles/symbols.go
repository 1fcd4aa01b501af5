package styles

// Symbols holds the glyph set based on nerdfont configuration
type Symbols struct {
	Merged string // appended to branches merged into the current branch
}

// Default symbols (ASCII-safe)
var defaultSymbols = Symbols{
	Merged: "(merged)",
}

// Nerd font symbols
var nerdfontSymbols = Symbols{
	Merged: "\ueafe merged", // nf-oct-git_merge
}

// SymbolsFor returns the nerd font set when enabled, else the ASCII set.
func SymbolsFor(nerdfont bool) Symbols {
	if nerdfont {
		return nerdfontSymbols
	}
	return defaultSymbols
}
