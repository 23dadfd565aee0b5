// Package version reports the uic build.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Version, CommitSHA, and BuildDate are set via ldflags at build time.
// Example: go build -ldflags "-X .../version.Version=0.2.0 -X .../version.CommitSHA=abc1234 -X .../version.BuildDate=2026-10-01"
var (
	Version   = "0.1.0"
	CommitSHA = "dev"
	BuildDate = "unknown"
)

// Info returns a human-readable version string.
// For dev builds: "0.1.0"
// For release builds: "0.1.0 (abc1234, 2026-10-01)"
func Info() string {
	v := strings.TrimPrefix(Version, "v")
	if CommitSHA == "dev" || CommitSHA == "" {
		return v
	}
	return fmt.Sprintf("%s (%s, %s)", v, CommitSHA, BuildDate)
}

// Line is what `uic version` prints.
func Line() string {
	return fmt.Sprintf("uic v%s %s/%s", Info(), runtime.GOOS, runtime.GOARCH)
}
