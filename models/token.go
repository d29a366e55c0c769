// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT bearer token used to authenticate against the dev relay.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access. The "sub" claim
// carries the owner identity the token authorizes.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the compact
	// string form is meaningful outside the relay process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// Owner is the identity extracted from the "sub" claim; an internal
	// cache so that handlers do not re-parse the claim.
	Owner Owner `json:"-"`
}

// GetOwner extracts the owner identity from the token's "sub" claim.
// Returns an error if the subject claim is missing or empty.
func (t *Token) GetOwner() (Owner, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting owner from token: %w", err)
	}
	if sub == "" {
		return "", fmt.Errorf("empty subject claim in token")
	}
	return Owner(sub), nil
}

// String returns the compact JWS serialization of the token. It implements
// the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
