// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-policy-desk/models"
)

// Client is a runnable front end; Run blocks until the agent quits.
type Client interface {
	Run() error
}

// UI is the terminal front end the app drives. LoginFlow returns
// tui.ErrUserQuit when the agent leaves without signing in.
type UI interface {
	LoginFlow(ctx context.Context) (models.Identity, error)
	MainLoop(ctx context.Context, identity models.Identity, serverVersion string) (signedOut bool, err error)
}

var _ Client = (*App)(nil)
