package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/raphi011/git-recent/internal/cmd"
)

func main() {
	os.Exit(run(os.Args[1:], defaultEnvironment()))
}

// run executes the command line and returns the process exit status:
// 0 on success, 2 for usage errors, git's own status when git failed
// and 1 for anything else.
func run(args []string, env *environment) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd(env)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintf(env.stderr, "Error: %v\n", err)
		fmt.Fprint(env.stderr, uerr.cmd.UsageString())
		return 2
	}

	fmt.Fprintf(env.stderr, "git-recent: %v\n", err)
	return cmd.ExitCode(err)
}
