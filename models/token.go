// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set of a session token.
//
// The subject ("sub") carries the user ID, the token ID ("jti") identifies the
// session so it can be revoked on logout, and Role is copied from the user at
// issuance time.
type Claims struct {
	jwt.RegisteredClaims

	Role Role `json:"role"`
}

// Token wraps a signed session JWT with the values the server needs after
// parsing it.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	UserID    string    `json:"-"`
	Role      Role      `json:"-"`
	SessionID string    `json:"-"`
	IssuedAt  time.Time `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// Identity returns the authenticated identity carried by the token.
func (t Token) Identity() Identity {
	return Identity{
		UserID:    t.UserID,
		Role:      t.Role,
		SessionID: t.SessionID,
		IssuedAt:  t.IssuedAt,
		ExpiresAt: t.ExpiresAt,
	}
}

// Identity is the authenticated caller of a request. It is built once by the
// auth middleware and passed explicitly down the call chain.
type Identity struct {
	UserID    string
	Role      Role
	SessionID string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IsZero reports whether the identity is empty (unauthenticated).
func (i Identity) IsZero() bool {
	return i.UserID == ""
}
