// ============================================================================
// fixstr - Fixed-length string toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management and build metadata
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version of the fixstr toolkit
const Version = "0.1.0"

// Build metadata, set through -ldflags "-X ..." at release time
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Info returns the build information of the running binary
func Info() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a single line suitable for --version output
func (b BuildInfo) String() string {
	return fmt.Sprintf("fixstr %s (commit %s, built %s, %s, %s)",
		b.Version, b.Commit, b.BuildDate, b.GoVersion, b.Platform)
}
