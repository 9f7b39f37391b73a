// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when neither an HTTP
	// nor a gRPC address yields a listener.
	errNoServersAreCreated = errors.New("no http or grpc listener configured")
	errNoServersToRun      = errors.New("nothing to run: server has no listeners")
)
