// Package constant defines immutable application-level identifiers and site conventions.
package constant

const (
	// Anitaku is the canonical application identifier used for filesystem paths and CLI branding.
	Anitaku = "anitaku"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the default HTTP User-Agent string sent with every page request.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Build metadata, set with -ldflags -X at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// Releases is the GitHub API endpoint of the latest published release.
const Releases = "https://api.github.com/repos/anisan-cli/anitaku/releases/latest"
