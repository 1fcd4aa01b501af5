package main

import (
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"

	"github.com/raphi011/git-recent/internal/config"
	"github.com/raphi011/git-recent/internal/git"
	"github.com/raphi011/git-recent/internal/recent"
	"github.com/raphi011/git-recent/internal/term"
	"github.com/raphi011/git-recent/internal/ui/prompt"
)

// environment holds everything the commands touch outside the process:
// streams, terminal, repository, clipboard and prompts.
type environment struct {
	stdout   io.Writer
	stderr   io.Writer
	environ  []string
	terminal term.Terminal

	configPath func() (string, error)
	checkGit   func() error
	newSource  func() recent.Source

	// interactive reports whether prompts can be shown
	interactive func() bool
	isDark      func() bool
	selectRef   func(title string, options []prompt.Option, initial int, selected lipgloss.Style) (prompt.SelectResult, error)
	confirm     func(prompt string) (prompt.ConfirmResult, error)
	copy        func(text string) error
}

func defaultEnvironment() *environment {
	return &environment{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		environ:    os.Environ(),
		terminal:   term.Stdout(),
		configPath: config.Path,
		checkGit:   git.CheckGit,
		newSource: func() recent.Source {
			return git.NewClient("")
		},
		interactive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stderr.Fd())
		},
		isDark: func() bool {
			return lipgloss.HasDarkBackground(os.Stdin, os.Stderr)
		},
		selectRef: prompt.Select,
		confirm:   prompt.Confirm,
		copy:      clipboard.WriteAll,
	}
}
