// Package term answers one question about the output device: how wide is it.
//
// A width is only known when the output is an interactive terminal. Redirected
// output (files, pipes) has no width and is never clipped.
package term

import (
	"os"

	xterm "github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

// Terminal reports the width of an output device in cells.
type Terminal interface {
	// Width returns the column count and true, or 0 and false when
	// the width is unknown.
	Width() (int, bool)
}

// None is a Terminal with unknown width.
type None struct{}

func (None) Width() (int, bool) { return 0, false }

// Fixed is a Terminal with a constant width. Non-positive values mean unknown.
type Fixed int

func (f Fixed) Width() (int, bool) {
	if f <= 0 {
		return 0, false
	}
	return int(f), true
}

// FD queries the terminal behind a file descriptor.
type FD uintptr

// Stdout returns the Terminal for os.Stdout.
func Stdout() Terminal {
	return FD(os.Stdout.Fd())
}

// Width returns the column count of the terminal behind fd. Any failure
// (not a TTY, ioctl error, zero size) yields unknown width.
func (fd FD) Width() (int, bool) {
	f := uintptr(fd)
	if !isatty.IsTerminal(f) && !isatty.IsCygwinTerminal(f) {
		return 0, false
	}
	w, _, err := xterm.GetSize(f)
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}
