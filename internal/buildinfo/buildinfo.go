// Package buildinfo reports the version the binary was built from.
//
// Values are injected at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/zenkeeper/internal/buildinfo.buildVersion=v1.0.0"
//
// Unset values fall back to the module build info, then to "N/A".
package buildinfo

import (
	"fmt"
	"io"
	"runtime/debug"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// readBuildInfo is a test seam for debug.ReadBuildInfo.
var readBuildInfo = debug.ReadBuildInfo

// Data holds the resolved build metadata.
type Data struct {
	Version string
	Date    string
	Commit  string
}

// Get resolves build metadata from link-time values and the embedded
// module information.
func Get() Data {
	d := Data{Version: buildVersion, Date: buildDate, Commit: buildCommit}
	if bi, ok := readBuildInfo(); ok {
		if d.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			d.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if d.Commit == "" {
					d.Commit = s.Value
				}
			case "vcs.time":
				if d.Date == "" {
					d.Date = s.Value
				}
			}
		}
	}
	d.Version = orNA(d.Version)
	d.Date = orNA(d.Date)
	d.Commit = orNA(d.Commit)
	return d
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// PrintBuildData writes the build version, date and commit to w.
func PrintBuildData(w io.Writer) {
	d := Get()
	fmt.Fprintf(w, "Build version: %s\n", d.Version)
	fmt.Fprintf(w, "Build date: %s\n", d.Date)
	fmt.Fprintf(w, "Build commit: %s\n", d.Commit)
}
