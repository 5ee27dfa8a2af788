// Package version holds the build version info.
package version

// Build-time version variables, set via -ldflags.
var (
	// Version is the build version.
	Version = "dev"
	// CommitSHA is the build commit sha.
	CommitSHA = ""
)
