// Package version exposes the build metadata stamped into the aegisgen
// binary at link time.
package version

import (
	"fmt"
	"runtime"
)

// Set via ldflags, e.g.
//
//	go build -ldflags "-X github.com/aegis-test/interfaces/version.Version=v1.2.0"
var (
	// Version is the semantic version if the build was tagged
	Version = "dev"

	// CommitHash is the git commit the binary was built from
	CommitHash = "unknown"

	// BuildTime is when the binary was built
	BuildTime = "unknown"
)

// Info is the full build record, JSON-ready for --json output.
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get returns the build record for the running binary.
func Get() Info {
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a single-line human-readable version.
func (i Info) String() string {
	return fmt.Sprintf("aegisgen %s (commit %s, built %s, %s %s)",
		i.Version, i.CommitHash, i.BuildTime, i.GoVersion, i.Platform)
}
