package version

import "fmt"

var (
	// Version is the tool release, set via
	// -X github.com/blend2d/blversion/internal/version.Version=$(git describe --tags --always --dirty).
	Version = "dev"
	// Commit is the short git SHA embedded at build time (or "none").
	Commit = "none"
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = "unknown"
)

// Full returns a human-readable description of the tool build.
func Full() string {
	return fmt.Sprintf("blversion %s, commit: %s, built at: %s", Version, Commit, BuildTime)
}
