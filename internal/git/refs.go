package git

import (
	"context"
	"fmt"
	"strings"
)

// refFormat is the for-each-ref format: five tab-separated fields.
// %09 is for-each-ref's escape for a tab.
const refFormat = "%(refname)%09%(committerdate:relative)%09%(authorname)%09%(authoremail)%09%(subject)"

// Ref is one line of for-each-ref output.
type Ref struct {
	FullName     string // e.g. "refs/heads/main"
	RelativeDate string // e.g. "4 days ago"
	AuthorName   string
	AuthorEmail  string // as printed by git, including angle brackets
	Subject      string
}

// Author returns "Name <email>", or whichever part is present.
func (r Ref) Author() string {
	return strings.TrimSpace(r.AuthorName + " " + r.AuthorEmail)
}

// Client runs read-only git queries in a working directory.
// The zero value runs git in the process working directory.
type Client struct {
	dir string
}

// NewClient returns a Client for the repository containing dir.
// An empty dir means the process working directory.
func NewClient(dir string) *Client {
	return &Client{dir: dir}
}

// CurrentBranch returns the abbreviated name of HEAD.
// A detached HEAD yields "HEAD".
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	out, err := outputGit(ctx, c.dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("get current branch: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// MergedBranches returns short names of all local and remote-tracking
// branches merged into HEAD.
// Uses a single git call: `git branch --all --merged`
func (c *Client) MergedBranches(ctx context.Context) (map[string]bool, error) {
	out, err := outputGit(ctx, c.dir, "branch", "--all", "--merged")
	if err != nil {
		return nil, fmt.Errorf("list merged branches: %w", err)
	}
	return parseMerged(string(out)), nil
}

// Remotes returns the configured remote names.
func (c *Client) Remotes(ctx context.Context) (map[string]bool, error) {
	out, err := outputGit(ctx, c.dir, "remote")
	if err != nil {
		return nil, fmt.Errorf("list remotes: %w", err)
	}
	remotes := make(map[string]bool)
	for _, line := range strings.Split(string(out), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			remotes[name] = true
		}
	}
	return remotes, nil
}

// ListRefs returns the refs under refs/<namespace>, most recent committer
// date first. Leading slashes of namespace are ignored, so "/" and ""
// both select every ref.
func (c *Client) ListRefs(ctx context.Context, namespace string) ([]Ref, error) {
	pattern := "refs/" + strings.TrimLeft(namespace, "/")
	out, err := outputGit(ctx, c.dir, "for-each-ref", "--sort=-committerdate", "--format="+refFormat, pattern)
	if err != nil {
		return nil, fmt.Errorf("list refs %s: %w", pattern, err)
	}
	return parseRefs(string(out))
}

// parseMerged takes the last whitespace-delimited token of every line of
// `git branch --all --merged`. That strips the "* " and "+ " markers and
// turns "remotes/origin/HEAD -> origin/main" into "origin/main".
func parseMerged(output string) map[string]bool {
	merged := make(map[string]bool)
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		merged[fields[len(fields)-1]] = true
	}
	return merged
}

// parseRefs parses refFormat output. Subjects may contain tabs; everything
// after the fourth tab belongs to the subject.
func parseRefs(output string) ([]Ref, error) {
	var refs []Ref
	for _, line := range strings.Split(output, "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 5)
		if len(parts) < 5 {
			return nil, fmt.Errorf("unexpected for-each-ref output: %q", line)
		}
		refs = append(refs, Ref{
			FullName:     parts[0],
			RelativeDate: parts[1],
			AuthorName:   parts[2],
			AuthorEmail:  parts[3],
			Subject:      parts[4],
		})
	}
	return refs, nil
}
