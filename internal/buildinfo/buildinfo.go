// Package buildinfo exposes version metadata injected at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/studygroups/internal/buildinfo.Version=v1.0.0 \
//	    -X github.com/dmitrijs2005/studygroups/internal/buildinfo.Date=2025-01-01 \
//	    -X github.com/dmitrijs2005/studygroups/internal/buildinfo.Commit=abc123"
package buildinfo

import (
	"fmt"
	"io"
)

const notAvailable = "N/A"

var (
	Version string
	Date    string
	Commit  string
)

func valueOrNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// PrintBuildData writes version, build date and commit to w, substituting
// "N/A" for values that were not set at link time.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", valueOrNA(Version))
	fmt.Fprintf(w, "Build date: %s\n", valueOrNA(Date))
	fmt.Fprintf(w, "Build commit: %s\n", valueOrNA(Commit))
}
