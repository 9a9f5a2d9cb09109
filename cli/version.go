package cli

import "fmt"

// Set at build time with -ldflags "-X github.com/fzft/go-hashset/cli.gitSHA1=...".
var (
	version   string = "0.1.0"
	gitSHA1   string = "unknown"
	gitDirty  string = "unknown"
	buildDate string = "unknown"
)

// Version returns the version line printed by --version.
func Version() string {
	v := "hashset-cli " + version
	if gitSHA1 != "unknown" {
		v = fmt.Sprintf("%s (git:%s", v, gitSHA1)
		if gitDirty != "unknown" && gitDirty != "0" {
			v += "-dirty"
		}
		v += ")"
	}
	if buildDate != "unknown" {
		v += " built " + buildDate
	}
	return v
}
