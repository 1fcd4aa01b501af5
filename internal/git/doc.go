// Package git provides the read-only git queries git-recent is built on.
//
// All operations use [os/exec] to call the git CLI directly rather than
// using Go git libraries, so user configuration (aliases, includes, safe
// directories) behaves exactly as in the user's shell.
//
// # Queries
//
// A [Client] bound to a working directory answers four questions:
//
//   - [Client.CurrentBranch]: abbreviated name of HEAD ("HEAD" when detached)
//   - [Client.MergedBranches]: short names of local and remote branches
//     merged into HEAD
//   - [Client.Remotes]: configured remote names
//   - [Client.ListRefs]: refs under refs/<namespace>, newest commit first
//
// None of these commands modify the repository. Failures are returned as
// [cmd.ExitError] values carrying git's stderr and exit status.
package git
