// Package build provides domain entities for build information.
package build

import "fmt"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String renders the info on one line.
func (i Info) String() string {
	return fmt.Sprintf("drawerpane %s (commit %s, built %s, %s)", orUnknown(i.Version), orUnknown(i.Commit), orUnknown(i.BuildDate), orUnknown(i.GoVersion))
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/drawerpane"
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
