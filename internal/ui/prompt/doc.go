// Package prompt provides the interactive prompts of git-recent.
//
// Prompts render on stderr so stdout stays pipeable, e.g.
//
//	git checkout "$(git recent --select)"
//
// Available prompts:
//   - [Select]: pick one ref from the listing
//   - [Confirm]: yes/no confirmation (config init overwrite)
package prompt
