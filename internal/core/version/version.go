// Package version provides information about the build version of the service
package version

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information stamped at link time:
//
//	-ldflags "-X 'econlens/internal/core/version.version=v0.1.0' -X 'econlens/internal/core/version.commit=abcd'"
func Info() BuildInfo {
	return BuildInfo{
		Service: "econlens-api",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
