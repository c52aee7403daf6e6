// Package buildinfo carries release metadata for the fleetledger
// binary, shown by the root command's --version flag.
package buildinfo

// Stamped with -ldflags "-X ..." at release time; the zero values
// identify a local development build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
