// Package recent builds the "most recently committed refs" listing.
//
// The pipeline is:
//
//	Options ─► Namespace ─► Source.ListRefs ─► Filter ─► Report ─► Renderer
//
// [Collect] queries a [Source] (normally *git.Client) for the current
// branch, the merged set, the remote names and the sorted refs. The
// resulting [Report] is printed by [Renderer] or exported through
// [Report.Entries].
//
// # Display names
//
// A ref's display name is its full name minus a leading "refs/" and then
// minus a leading "heads/". Nothing else is stripped, so tags render as
// "tags/v1" and remote-tracking branches as "remotes/origin/main".
//
// # Merged marker
//
// A ref is marked merged when its display name is in the merged set and it
// is not the current branch. The current branch always carries the "* "
// marker and never the merged one.
package recent
