// Package query composes the effective query string sent to the search server
package query

import "strings"

// Build returns the effective query: prefix + " " + raw when prefix is
// non-empty, with every literal backslash doubled so the server's query
// parser does not treat user backslashes as escape introducers.
// Callers must not pass an empty raw query; Build assumes the editor layer
// has filtered empty input
func Build(raw, prefix string) string {
	q := raw
	if prefix != "" {
		q = prefix + " " + raw
	}
	return Escape(q)
}

// Escape doubles every backslash. This is the only transformation applied;
// all other characters pass through untouched
func Escape(s string) string {
	return strings.ReplaceAll(s, `\`, `\\`)
}

// Unescape reverses Escape. Round-tripping Escape then Unescape yields the
// input unchanged
func Unescape(s string) string {
	return strings.ReplaceAll(s, `\\`, `\`)
}
