// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated means no transport address was configured, so
// NewServer has nothing to run.
var errNoServersAreCreated = errors.New("no servers are created")
