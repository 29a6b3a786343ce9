package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT session token. It embeds [jwt.Token] for signing and
// parsing, and [jwt.RegisteredClaims] for standard claim access. None of
// the fields marshal to JSON: only the compact SignedString form ever
// leaves the process, inside [SessionResponse].
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form
	// (base64url header.payload.signature).
	SignedString string `json:"-"`

	// UserID caches the parsed "sub" claim so handlers do not re-parse
	// the subject string on every request.
	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization.
func (t *Token) String() string {
	return t.SignedString
}
