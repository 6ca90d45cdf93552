package version

import (
	"fmt"
	"runtime"

	goversion "github.com/hashicorp/go-version"
)

var (
	// Version is the version of the CLI
	Version = "0.1.0"
	// BuildDate is the build date
	BuildDate = "unknown"
	// GitCommit is the git commit hash
	GitCommit = "unknown"
)

// Info holds version information
type Info struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns version information
func Get() Info {
	return Info{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a formatted version string
func (i Info) String() string {
	return fmt.Sprintf("pslcheck version %s (%s %s)", i.Version, i.Platform, i.GoVersion)
}

// FullString returns a detailed version string
func (i Info) FullString() string {
	return fmt.Sprintf(`pslcheck version %s
Build Date: %s
Git Commit: %s
Platform: %s
Go Version: %s`, i.Version, i.BuildDate, i.GitCommit, i.Platform, i.GoVersion)
}

// Comparison is the outcome of Check.
type Comparison int

const (
	UpToDate Comparison = iota
	Outdated
	Ahead
)

func (c Comparison) String() string {
	switch c {
	case Outdated:
		return "outdated"
	case Ahead:
		return "ahead"
	default:
		return "up to date"
	}
}

// Check compares the running version against other, usually the latest
// released one.
func Check(current, other string) (Comparison, error) {
	cur, err := goversion.NewVersion(current)
	if err != nil {
		return UpToDate, fmt.Errorf("invalid version %q: %w", current, err)
	}
	oth, err := goversion.NewVersion(other)
	if err != nil {
		return UpToDate, fmt.Errorf("invalid version %q: %w", other, err)
	}
	switch {
	case cur.LessThan(oth):
		return Outdated, nil
	case cur.GreaterThan(oth):
		return Ahead, nil
	}
	return UpToDate, nil
}

// Satisfies reports whether current meets a constraint such as ">= 0.1, < 1.0".
func Satisfies(current, constraint string) (bool, error) {
	v, err := goversion.NewVersion(current)
	if err != nil {
		return false, fmt.Errorf("invalid version %q: %w", current, err)
	}
	c, err := goversion.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid constraint %q: %w", constraint, err)
	}
	return c.Check(v), nil
}
