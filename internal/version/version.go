/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides version information for the tokenvars CLI.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via -ldflags "-X bennypowers.dev/tokenvars/internal/version.Version=...".
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit,omitempty"`
	BuildTime string `json:"buildTime,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"goVersion,omitempty"`
}

// Info returns build information. Values injected with ldflags win; otherwise
// the module version and VCS stamps recorded by the Go toolchain are used.
func Info() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// Get returns the version string.
func Get() string {
	return Info().Version
}

// Full returns the version with a short commit hash and dirty marker, when known.
func Full() string {
	info := Info()
	v := info.Version
	if info.GitCommit != "" {
		commit := info.GitCommit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		v = fmt.Sprintf("%s (commit: %s)", v, commit)
	}
	if info.Modified {
		v += " dirty"
	}
	return v
}
