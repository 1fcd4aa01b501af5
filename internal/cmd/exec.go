package cmd

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/raphi011/git-recent/internal/log"
)

// ExitError describes an external command that ran and failed.
type ExitError struct {
	Name   string
	Args   []string
	Stderr string // trimmed stderr output
	Code   int    // process exit status, 1 if unknown
	Err    error
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit status carried by err, or 1 for any other
// non-nil error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// RunContext executes a command, discarding stdout.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	_, err := OutputContext(ctx, dir, name, args...)
	return err
}

// OutputContext executes a command and returns its stdout. The command is
// traced through the context logger. On failure the error is an
// *ExitError, unless ctx was cancelled, in which case ctx.Err() is returned.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	var stderr bytes.Buffer
	c.Stderr = &stderr

	out, err := c.Output()
	done(time.Since(start))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, newExitError(name, args, stderr.String(), err)
	}
	return out, nil
}

func newExitError(name string, args []string, stderr string, err error) *ExitError {
	code := 1
	var ee *exec.ExitError
	if errors.As(err, &ee) && ee.ExitCode() > 0 {
		code = ee.ExitCode()
	}
	return &ExitError{
		Name:   name,
		Args:   args,
		Stderr: strings.TrimSpace(stderr),
		Code:   code,
		Err:    err,
	}
}
