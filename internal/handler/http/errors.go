// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors produced while parsing the Authorization header in the auth
// middleware. Matched with errors.Is when choosing the response body.
var (
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header cannot be split into a
	// scheme and a token value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken means the bearer scheme is present but the token is "".
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
