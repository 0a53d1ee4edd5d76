// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Consolekit Authors

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
)
