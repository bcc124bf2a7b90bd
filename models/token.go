package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenMissingEmail is returned when a token carries no email claim.
var ErrTokenMissingEmail = errors.New("token has no email claim")

// Token wraps a JWT issued by the external auth service.
//
// It embeds [jwt.Token] for low-level operations and [jwt.RegisteredClaims]
// for the standard claim set. Email is the private "email" claim; together
// with the subject it forms the caller's [Identity].
type Token struct {
	// Token is the underlying JWT. Excluded from JSON serialization.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// Email is the address the token was issued for.
	Email string `json:"email"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// Identity extracts the caller identity from the subject and email claims.
// The email is normalized so that share lookups match stored grants.
func (t *Token) Identity() (Identity, error) {
	userID, err := t.GetSubject()
	if err != nil {
		return Identity{}, fmt.Errorf("error getting subject from token: %w", err)
	}
	if userID == "" {
		return Identity{}, errors.New("empty subject in token")
	}
	if t.Email == "" {
		return Identity{}, ErrTokenMissingEmail
	}

	return Identity{UserID: userID, Email: NormalizeEmail(t.Email)}, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
