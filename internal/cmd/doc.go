// Package cmd runs external commands and turns their failures into errors
// that carry stderr and the exit status.
//
// # Usage
//
//	out, err := cmd.OutputContext(ctx, "", "git", "remote")
//	if err != nil {
//	    // err.Error() is git's stderr; cmd.ExitCode(err) is git's exit status
//	    return fmt.Errorf("list remotes: %w", err)
//	}
//
// git-recent never recovers from a failed command. The exit status is kept
// so the process can exit with the same code git did.
package cmd
