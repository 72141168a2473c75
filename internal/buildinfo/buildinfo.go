package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("currency-detect %s (commit=%s, date=%s)", Version, Commit, Date)
}

// UserAgent is sent on outbound lookups.
func UserAgent() string {
	return "currency-detect/" + Version
}
