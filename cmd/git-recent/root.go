package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/git-recent/internal/config"
	"github.com/raphi011/git-recent/internal/format"
	"github.com/raphi011/git-recent/internal/log"
	"github.com/raphi011/git-recent/internal/output"
	"github.com/raphi011/git-recent/internal/recent"
	"github.com/raphi011/git-recent/internal/ui/prompt"
	"github.com/raphi011/git-recent/internal/ui/styles"
)

func newRootCmd(env *environment) *cobra.Command {
	var (
		// Global flags
		verbose   bool
		quiet     bool
		colorMode string

		all        bool
		count      int
		filter     string
		outputKind string
		selectRef  bool
		copyName   bool
	)

	cmd := &cobra.Command{
		Use:   "git-recent [PATTERN]",
		Short: "List branches by most recent commit",
		Long: `git-recent lists refs ordered by their most recent commit.

The checked-out branch is marked with "*", branches already merged into it
are marked as merged. Installed on PATH it runs as "git recent".

PATTERN selects the ref namespace below refs/ (default "heads/"):
  heads/           local branches
  tags/            tags
  origin           remote-tracking branches of the remote "origin"
  /                everything (same as --all)`,
		Example: `  git recent                 # 30 most recent local branches
  git recent -n 5            # 5 most recent
  git recent -a              # all refs, no limit
  git recent origin          # branches of remote origin
  git recent -f feat         # fuzzy-filter names
  git recent -o json         # machine-readable output
  git checkout "$(git recent -s)"`,
		Args:                       usageArgs(cobra.MaximumNArgs(1)),
		ValidArgsFunction:          completePatterns(env),
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		Version:                    versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose && quiet {
				return newUsageError(cmd, "--verbose and --quiet are mutually exclusive")
			}
			mode, err := output.ParseColorMode(colorMode)
			if err != nil {
				return &usageError{cmd: cmd, err: err}
			}

			ctx := cmd.Context()
			logger := log.New(env.stderr, verbose, quiet)
			ctx = log.WithLogger(ctx, logger)
			ctx = config.WithConfig(ctx, loadConfig(env, logger))
			ctx = output.WithPrinter(ctx, output.NewColor(env.stdout, mode, env.environ))
			cmd.SetContext(ctx)

			// Only the listing itself talks to git
			if cmd != cmd.Root() {
				return nil
			}
			return env.checkGit()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)

			var countFlag *int
			if cmd.Flags().Changed("count") {
				if count < 0 {
					return newUsageError(cmd, "invalid count %d: must be 0 (unlimited) or positive", count)
				}
				countFlag = &count
			}

			kind, err := format.ParseKind(outputKind)
			if err != nil {
				return &usageError{cmd: cmd, err: err}
			}
			if selectRef && kind.Structured() {
				return newUsageError(cmd, "--select cannot be combined with --output %s", kind)
			}
			if copyName && !selectRef {
				return newUsageError(cmd, "--copy requires --select")
			}

			pattern := cfg.List.Pattern
			if len(args) == 1 {
				pattern = args[0]
			}

			opts := recent.Options{
				ShowAll: all,
				Limit:   recent.ResolveLimit(countFlag, all, cfg.List.Count),
				Pattern: pattern,
				Filter:  filter,
			}

			rep, err := recent.Collect(ctx, env.newSource(), opts)
			if err != nil {
				return err
			}

			switch {
			case selectRef:
				return runSelect(ctx, env, rep, copyName)
			case kind.Structured():
				return format.Write(output.FromContext(ctx).Writer(), kind, rep.Entries())
			}
			return runList(ctx, env, rep)
		},
	}

	cmd.SetOut(env.stdout)
	cmd.SetErr(env.stderr)
	cmd.SetFlagErrorFunc(flagError)
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show git commands being executed")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress warnings")
	cmd.PersistentFlags().StringVar(&colorMode, "color", string(output.ColorAuto), "Colorize output: "+strings.Join(output.ValidColorModes, ", "))

	cmd.Flags().BoolVarP(&all, "all", "a", false, `List all refs (pattern "/"); no limit unless -n is given`)
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of refs to show, 0 for all (default from config, 30)")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Fuzzy-filter ref names")
	cmd.Flags().StringVarP(&outputKind, "output", "o", string(format.Text), "Output format: "+strings.Join(format.ValidKinds, ", "))
	cmd.Flags().BoolVarP(&selectRef, "select", "s", false, "Pick a ref interactively and print its name")
	cmd.Flags().BoolVar(&copyName, "copy", false, "Also copy the picked name to the clipboard (with --select)")

	cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(format.ValidKinds, cobra.ShellCompDirectiveNoFileComp))
	cmd.RegisterFlagCompletionFunc("color", cobra.FixedCompletions(output.ValidColorModes, cobra.ShellCompDirectiveNoFileComp))

	cmd.AddCommand(newConfigCmd(env))
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

// loadConfig reads the config file. A broken file is a warning, not an
// error: the listing still works with defaults.
func loadConfig(env *environment, l *log.Logger) *config.Config {
	cfg := config.Default()
	path, err := env.configPath()
	if err == nil {
		cfg, err = config.LoadFile(path)
	}
	if err != nil {
		l.Warn("%v (using defaults)", err)
	}
	return &cfg
}

// runList prints the styled listing. Styles are only resolved when the
// output keeps escape sequences, which also avoids the background query.
func runList(ctx context.Context, env *environment, rep recent.Report) error {
	out := output.FromContext(ctx)
	cfg := config.FromContext(ctx)

	st := styles.Plain()
	if out.Styled() {
		st = styles.FromConfig(cfg.Theme, env.isDark)
	}
	width, _ := env.terminal.Width()

	return recent.Renderer{Styles: st, Width: width}.Render(out.Writer(), rep)
}

// runSelect lets the user pick one of the listed refs and prints its name.
func runSelect(ctx context.Context, env *environment, rep recent.Report, copyName bool) error {
	l := log.FromContext(ctx)
	entries := rep.Entries()
	if len(entries) == 0 {
		l.Warn("no refs to select from")
		return nil
	}

	options := make([]prompt.Option, len(entries))
	for i, e := range entries {
		options[i] = prompt.Option{
			Title:       e.Name,
			Description: strings.Join(slices.DeleteFunc([]string{e.Date, e.Author, e.Subject}, func(s string) bool { return s == "" }), " · "),
		}
	}
	initial := slices.IndexFunc(entries, func(e recent.Entry) bool { return e.Current })

	st := styles.FromConfig(config.FromContext(ctx).Theme, env.isDark)
	res, err := env.selectRef("Recent refs", options, max(initial, 0), st.Selected)
	if err != nil {
		return fmt.Errorf("select ref: %w", err)
	}
	if res.Cancelled {
		l.Debug("selection cancelled")
		return nil
	}

	output.FromContext(ctx).Println(res.Value)

	if copyName {
		if err := env.copy(res.Value); err != nil {
			l.Warn("copy to clipboard: %v", err)
		} else {
			l.Debug("copied to clipboard", "value", res.Value)
		}
	}
	return nil
}
