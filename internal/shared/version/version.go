// Package version carries the build version, set at link time.
package version

// Version is overridden via -ldflags "-X glowtrack/internal/shared/version.Version=..."
var Version = "dev"
