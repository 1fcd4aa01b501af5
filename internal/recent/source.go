package recent

import (
	"context"

	"github.com/raphi011/git-recent/internal/git"
	"github.com/raphi011/git-recent/internal/log"
)

// Ref is a ref with its last-commit metadata, in git's order.
type Ref = git.Ref

// Set is a membership set of short names.
type Set = map[string]bool

// Source answers the read-only repository queries the listing needs.
// *git.Client is the production implementation.
type Source interface {
	CurrentBranch(ctx context.Context) (string, error)
	MergedBranches(ctx context.Context) (Set, error)
	Remotes(ctx context.Context) (Set, error)
	ListRefs(ctx context.Context, namespace string) ([]Ref, error)
}

var _ Source = (*git.Client)(nil)

// Collect runs the queries in order (current branch, merged set, remotes,
// refs) and returns the report to render. The first failing query aborts.
func Collect(ctx context.Context, src Source, opts Options) (Report, error) {
	l := log.FromContext(ctx)

	current, err := src.CurrentBranch(ctx)
	if err != nil {
		return Report{}, err
	}
	merged, err := src.MergedBranches(ctx)
	if err != nil {
		return Report{}, err
	}
	remotes, err := src.Remotes(ctx)
	if err != nil {
		return Report{}, err
	}

	ns := Namespace(opts.Pattern, opts.ShowAll, remotes)
	l.Debug("resolved namespace", "pattern", opts.Pattern, "all", opts.ShowAll, "namespace", ns)

	refs, err := src.ListRefs(ctx, ns)
	if err != nil {
		return Report{}, err
	}
	if opts.Filter != "" {
		total := len(refs)
		refs = Filter(refs, opts.Filter)
		l.Debug("filtered refs", "query", opts.Filter, "matched", len(refs), "total", total)
	}

	return Report{
		Refs:    refs,
		Merged:  merged,
		Current: current,
		Limit:   opts.Limit,
	}, nil
}
