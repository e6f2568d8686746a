package version

// Version is the application version, set at build time:
// go build -ldflags "-X github.com/benjaminjackson/exa-skills/internal/version.Version=v1.2.0".
var Version = "dev"

// Build metadata, set the same way as Version.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the version line printed by --version.
func String() string {
	if GitCommit == "unknown" {
		return Version
	}
	return Version + " (" + GitCommit + ", built " + BuildTime + ")"
}
