// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-policy-desk/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, serverVersion string) string {
	lines := append([]string{"Application: Policy Desk"}, info.Lines()...)

	server := strings.TrimSpace(serverVersion)
	if server == "" {
		server = models.NotAvailable
	}
	lines = append(lines, "Server version: "+server)
	if server != models.NotAvailable && info.Known() && !info.SameVersion(server) {
		lines = append(lines, "", warnStyle.Render("Client and server versions differ"))
	}

	return renderPage("ABOUT", strings.Join(lines, "\n"), "esc: back")
}
