// Package version holds build information stamped in by the release build.
package version

// Set with -ldflags "-X github.com/arthur-debert/hexmark/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
