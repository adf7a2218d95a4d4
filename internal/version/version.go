// Package version holds build metadata, set with -ldflags -X at build time.
package version

import (
	"fmt"
	"runtime"
)

var (
	Version   = "dev"             // ex: v0.1.0
	Commit    = "none"            // ex: abcd123
	BuildDate = "unknown"         // ex: 2025-08-11T18:42:00Z
	GoVersion = runtime.Version() // go version
)

// String summarises the build for the startup log.
func String() string {
	return fmt.Sprintf("pali %s (commit=%s, built=%s, go=%s)", Version, Commit, BuildDate, GoVersion)
}
