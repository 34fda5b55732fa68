// Package version exposes build-time version information.
package version

// The below variables are overridden using the build process.

// Version is the name of the release.
var Version = "dev"

// GitCommitID is the git commit id of the release.
var GitCommitID = "none"

// BuildDate is the date of the release build.
var BuildDate = "unknown"

// Short returns the short version of the release.
func Short() string {
	return Version
}

// Details contains data about a given version.
type Details struct {
	Version     string `json:"version"`
	GitCommitID string `json:"gitCommit"`
	BuildDate   string `json:"buildDate"`
}

// Info returns a Details struct with version info.
func Info() Details {
	return Details{
		Version:     Version,
		GitCommitID: GitCommitID,
		BuildDate:   BuildDate,
	}
}
