package version

import (
	"fmt"
	"runtime/debug"
)

const unknown = "unknown"

// Overridden at link time with -ldflags "-X itemservice/internal/version.Version=...".
var (
	Version   = "dev"
	BuildTime = unknown
	GitCommit = unknown
)

func Get() string {
	return Version
}

type BuildInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
	Modified  bool   `json:"modified,omitempty"`
}

func (b BuildInfo) String() string {
	commit := b.GitCommit
	if b.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (commit %s, built %s)", b.Version, commit, b.BuildTime)
}

// Info prefers linker-injected values and falls back to the VCS stamp that
// `go build` embeds when the binary was built from a checkout.
func Info() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = withModuleInfo(info, bi)
	}
	return info
}

func withModuleInfo(info BuildInfo, bi *debug.BuildInfo) BuildInfo {
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}

	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.GitCommit == unknown {
				info.GitCommit = setting.Value
			}
		case "vcs.time":
			if info.BuildTime == unknown {
				info.BuildTime = setting.Value
			}
		case "vcs.modified":
			info.Modified = setting.Value == "true"
		}
	}
	return info
}
