package main

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// namespacePatterns are the PATTERN values offered besides remote names.
var namespacePatterns = []string{"heads/", "tags/", "remotes/", "/"}

// completePatterns completes PATTERN with the common namespaces and the
// configured remote names.
func completePatterns(env *environment) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		candidates := slices.Clone(namespacePatterns)
		if remotes, err := env.newSource().Remotes(cmd.Context()); err == nil {
			var names []string
			for name := range remotes {
				names = append(names, name)
			}
			slices.Sort(names)
			candidates = append(candidates, names...)
		}

		var matches []string
		for _, c := range candidates {
			if strings.HasPrefix(c, toComplete) {
				matches = append(matches, c)
			}
		}
		return matches, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	}
}
