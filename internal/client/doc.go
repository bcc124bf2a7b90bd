// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the agent's terminal session: sign in with a token or
// the remembered session, then the dashboard until sign-out or quit. After a
// sign-out the loop returns to the sign-in screen.
package client
