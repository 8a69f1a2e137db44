/*
version reports the build of the weather assistant. GitTag and GitBranch
are set with -ldflags at build time, otherwise the version is read from the
VCS settings in the build info.
*/
package version

import (
	"encoding/json"
	"runtime"
	"runtime/debug"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Info describes the build of an executable
type Info struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Compiler  string `json:"compiler"`
	Tag       string `json:"tag,omitempty"`
	Branch    string `json:"branch,omitempty"`
	Source    string `json:"source,omitempty"`
	Hash      string `json:"hash,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	Platform  string `json:"platform,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	GitTag    string
	GitBranch string
)

const (
	defaultVersion = "dev"
	shortHash      = 12
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Version returns the tag, the branch, the short commit hash or "dev"
func Version() string {
	if GitTag != "" {
		return GitTag
	}
	if GitBranch != "" {
		return GitBranch
	}
	if hash := Get("").Hash; hash != "" {
		return hash[:min(shortHash, len(hash))]
	}
	return defaultVersion
}

// Get returns the build information for the named executable
func Get(execName string) Info {
	info := Info{
		Name:     execName,
		Compiler: runtime.Version(),
		Tag:      GitTag,
		Branch:   GitBranch,
	}
	build, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.Source = build.Main.Path

	var goos, goarch string
	for _, s := range build.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Hash = s.Value
		case "vcs.time":
			info.BuildTime = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		case "GOOS":
			goos = s.Value
		case "GOARCH":
			goarch = s.Value
		}
	}
	if goos != "" && goarch != "" {
		info.Platform = goos + "/" + goarch
	}
	return info
}

// JSON returns the build information as indented JSON
func JSON(execName string) []byte {
	info := Get(execName)
	info.Version = Version()
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		panic(err)
	}
	return data
}
