// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated means neither an HTTP nor a gRPC address was
	// configured.
	errNoServersAreCreated = errors.New("no servers are created")
	// errTransportFailed wraps the error of a transport that stopped before
	// shutdown was requested.
	errTransportFailed = errors.New("transport stopped unexpectedly")
)
