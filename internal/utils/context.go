// Package utils holds the small helpers shared by the server and client:
// the authenticated-user context key, JSON response writing, the resty
// client wrapper, JWT issuing and validation, and record ID generation.
package utils

import (
	"context"
)

// contextKey is unexported so no other package can collide with our keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey carries the authenticated user's ID, placed into the request
// context by the auth middleware and read back via GetUserIDFromContext.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the user ID and whether it was present with
// the expected int64 type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
