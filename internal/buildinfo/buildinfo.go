// Package buildinfo exposes version data injected at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/puzzlepost/internal/buildinfo.Version=v1.2.0"
package buildinfo

var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// Attrs returns the build data as logger key-value pairs.
func Attrs() []any {
	return []any{"version", Version, "build_date", Date, "commit", Commit}
}
