package recent

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/git-recent/internal/ui/styles"
)

const ellipsis = "..."

// Renderer formats a Report as text lines.
type Renderer struct {
	Styles styles.Styles
	Width  int // terminal width in cells, 0 = unknown (no clipping)
}

// Render writes one line per visible ref and, when the limit cut refs off,
// a trailing "(... and N more ...)" line.
func (r Renderer) Render(w io.Writer, rep Report) error {
	for _, ref := range rep.Visible() {
		if _, err := io.WriteString(w, r.Line(ref, rep)+"\n"); err != nil {
			return err
		}
	}
	if hidden := rep.Hidden(); hidden > 0 {
		summary := r.Styles.Muted.Render(fmt.Sprintf("(... and %d more ...)", hidden))
		if _, err := io.WriteString(w, summary+ansi.ResetStyle+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Line composes a single ref line:
//
//	<prefix><name> <date>[ <merged>] <author> <subject>
//
// clipped to the width and terminated by an SGR reset.
func (r Renderer) Line(ref Ref, rep Report) string {
	name := DisplayName(ref.FullName)
	st := r.Styles

	var b strings.Builder
	if rep.IsCurrent(name) {
		b.WriteString(st.Current.Render("* " + name))
	} else {
		b.WriteString("  " + name)
	}
	b.WriteString(" " + st.Date.Render(ref.RelativeDate))
	if rep.IsMerged(name) {
		b.WriteString(" " + st.Merged.Render(st.Symbols.Merged))
	}
	b.WriteString(" " + st.Muted.Render(ref.Author()+" "+ref.Subject))

	return r.clip(b.String()) + ansi.ResetStyle
}

// clip cuts line to Width cells, the last three being the ellipsis.
// Escape sequences don't count toward the width.
func (r Renderer) clip(line string) string {
	if r.Width <= len(ellipsis) || ansi.StringWidth(line) <= r.Width {
		return line
	}
	return ansi.Truncate(line, r.Width, ellipsis)
}
