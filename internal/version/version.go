// Package version holds the application version string.
package version

// Version is the application version, overridable at build time with
// -ldflags "-X .../internal/version.Version=v1.2.3".
var Version = "dev"
