package version

import (
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	RepoUser = "redjax"
	RepoName = "encsweep"
	RepoUrl  = "https://github.com/redjax/encsweep"
	Package  = "encsweep"
)

type PackageInfo struct {
	PackageName        string
	RepoUrl            string
	RepoUser           string
	RepoName           string
	PackageVersion     string
	PackageCommit      string
	PackageReleaseDate string
}

// GetPackageInfo returns a struct with information about the current package.
// Values not set by ldflags fall back to the Go build info.
func GetPackageInfo() PackageInfo {
	info := PackageInfo{
		PackageName:        Package,
		RepoUrl:            RepoUrl,
		RepoUser:           RepoUser,
		RepoName:           RepoName,
		PackageVersion:     Version,
		PackageCommit:      Commit,
		PackageReleaseDate: Date,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info = withBuildInfo(info, bi)
	}
	return info
}

// withBuildInfo fills the fields still at their defaults from bi: the module
// version (go install pkg@v1.2.3) and the vcs stamp of a local go build.
func withBuildInfo(info PackageInfo, bi *debug.BuildInfo) PackageInfo {
	if info.PackageVersion == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.PackageVersion = bi.Main.Version
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.PackageCommit == "none" && s.Value != "" {
				info.PackageCommit = s.Value
			}
		case "vcs.time":
			if info.PackageReleaseDate == "unknown" && s.Value != "" {
				info.PackageReleaseDate = s.Value
			}
		}
	}
	return info
}
