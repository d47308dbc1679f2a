package version

// Build-time version information (set via -ldflags)
var (
	Version = "dev"
	Commit  = "unknown"
)
