// Package buildinfo carries version metadata stamped at build time.
package buildinfo

// These are overridden via -ldflags on release builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
