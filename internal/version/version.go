package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the current version of Ailie
	Version = "0.1.0"

	// GitCommit is the git commit hash (set during build)
	GitCommit = "unknown"

	// BuildTime is when the binary was built (set during build)
	BuildTime = "unknown"
)

// Info contains version information
type Info struct {
	Version     string `json:"version"`
	GitCommit   string `json:"git_commit"`
	ShortCommit string `json:"short_commit"`
	BuildTime   string `json:"build_time"`
	GoVersion   string `json:"go_version"`
	Dirty       bool   `json:"dirty"`
}

// Get returns version information. Values not injected with -ldflags fall
// back to the VCS stamp embedded by the Go toolchain.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}

	if build, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range build.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.GitCommit == "unknown" {
					info.GitCommit = setting.Value
				}
			case "vcs.time":
				if info.BuildTime == "unknown" {
					info.BuildTime = setting.Value
				}
			case "vcs.modified":
				info.Dirty = setting.Value == "true"
			}
		}
	}

	info.ShortCommit = shorten(info.GitCommit)
	return info
}

// String returns a formatted version string
func (i Info) String() string {
	return fmt.Sprintf("Ailie v%s (commit: %s, built: %s, go: %s)",
		i.Version, i.ShortCommit, i.BuildTime, i.GoVersion)
}

func shorten(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
