package inspector

import "fmt"

// Build metadata, overridden via -ldflags at release time.
var (
	AppVersion = "0.1.0"
	GitCommit  = "unknown"
	BuildTime  = "unknown"
)

func versionLabel() string {
	label := "v" + AppVersion
	if GitCommit != "unknown" || BuildTime != "unknown" {
		label = fmt.Sprintf("v%s (%s %s)", AppVersion, GitCommit, BuildTime)
	}
	return label
}
