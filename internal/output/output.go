// Package output provides context-aware output for git-recent.
// Stdout carries the ref listing (text, JSON or YAML).
// Stderr (via the log package) carries diagnostics.
package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/colorprofile"
)

type ctxKey struct{}

// ColorMode selects how ANSI styling reaches the output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ValidColorModes lists the accepted --color values.
var ValidColorModes = []string{string(ColorAuto), string(ColorAlways), string(ColorNever)}

// ParseColorMode validates a --color value. Empty means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, ColorNever:
		return ColorMode(s), nil
	}
	return "", fmt.Errorf("invalid color mode %q (valid: %s)", s, strings.Join(ValidColorModes, ", "))
}

// Printer writes primary output to stdout.
type Printer struct {
	w      io.Writer
	styled bool
}

// New creates a Printer that writes to w unchanged.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewColor creates a Printer whose writes pass through a color profile
// writer. In auto mode the profile is detected from w and environ
// (TTY, NO_COLOR, TERM, ...). Always forces true color; never strips all
// escape sequences.
func NewColor(w io.Writer, mode ColorMode, environ []string) *Printer {
	cw := colorprofile.NewWriter(w, environ)
	switch mode {
	case ColorAlways:
		cw.Profile = colorprofile.TrueColor
	case ColorNever:
		cw.Profile = colorprofile.NoTTY
	}
	return &Printer{w: cw, styled: cw.Profile != colorprofile.NoTTY}
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return &Printer{w: os.Stdout}
}

// Print writes output without a newline.
func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.w, a...)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Styled reports whether escape sequences survive the printer's color
// profile.
func (p *Printer) Styled() bool {
	return p.styled
}
