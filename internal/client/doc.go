// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires the server adapter, the passkey bridge, the encryption session,
// and background workers into a single process lifecycle.
package client
