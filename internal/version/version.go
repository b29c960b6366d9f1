// Package version holds build fingerprints for the tanaval CLI.
package version

// These variables can be overridden at build time via -ldflags. They are
// plain strings: presentation (color, layout) belongs to the commands that
// print them, so machine-readable output stays free of escape sequences.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)
