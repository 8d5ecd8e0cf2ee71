// Package version exposes build metadata injected via -ldflags at release
// time. Local builds report the dev defaults.
package version

var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)
