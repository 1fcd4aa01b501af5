package recent

import "strings"

// Namespace maps a user pattern to the ref namespace below refs/.
//
// showAll selects "/" (everything). Otherwise leading slashes are removed
// and a bare token naming a configured remote becomes "remotes/<name>".
// Any other value passes through unchanged.
func Namespace(pattern string, showAll bool, remotes Set) string {
	if showAll {
		return "/"
	}
	ns := strings.TrimLeft(pattern, "/")
	if ns != "" && !strings.Contains(ns, "/") && remotes[ns] {
		return "remotes/" + ns
	}
	return ns
}

// DisplayName strips a leading "refs/" and then a leading "heads/".
func DisplayName(fullName string) string {
	name := strings.TrimPrefix(fullName, "refs/")
	return strings.TrimPrefix(name, "heads/")
}
