// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", " ", "abc123\n")

	assert.False(t, info.Known())
	assert.Equal(t, []string{
		"Build version: N/A",
		"Build date: N/A",
		"Build commit: abc123",
	}, info.Lines())

	var zero AppBuildInfo
	assert.Equal(t, NotAvailable, zero.BuildCommit())
}

func TestAppBuildInfo_SameVersion(t *testing.T) {
	tests := []struct {
		name   string
		client string
		server string
		want   bool
	}{
		{"equal", "1.4.0", "1.4.0", true},
		{"v prefix", "v1.4.0", "1.4.0", true},
		{"different", "1.4.0", "1.4.1", false},
		{"server blank", "1.4.0", "", false},
		{"client unstamped", "", "1.4.0", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewAppBuildInfo(tt.client, "2026-10-01", "abc123")
			assert.Equal(t, tt.want, info.SameVersion(tt.server))
		})
	}
}
