// Package build holds version metadata set at link time.
package build

// Set with -ldflags "-X go.trai.ch/preview/internal/build.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
