// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// NotAvailable stands in for build metadata the linker did not inject.
const NotAvailable = "N/A"

// AppBuildInfo is the version metadata stamped into a binary with -ldflags.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo trims the injected values; blank ones become [NotAvailable].
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.version) }

func (a AppBuildInfo) BuildDate() string { return orNotAvailable(a.date) }

func (a AppBuildInfo) BuildCommit() string { return orNotAvailable(a.commit) }

// Known reports whether the binary was built with a version stamp.
func (a AppBuildInfo) Known() bool {
	return a.BuildVersion() != NotAvailable
}

// SameVersion reports whether other names the same release. An unstamped
// side never matches.
func (a AppBuildInfo) SameVersion(other string) bool {
	other = strings.TrimPrefix(strings.TrimSpace(other), "v")
	return a.Known() && other != "" && strings.TrimPrefix(a.BuildVersion(), "v") == other
}

// Lines renders the metadata the way both binaries print it on start.
func (a AppBuildInfo) Lines() []string {
	return []string{
		"Build version: " + a.BuildVersion(),
		"Build date: " + a.BuildDate(),
		"Build commit: " + a.BuildCommit(),
	}
}

func orNotAvailable(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return NotAvailable
	}
	return v
}
