// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

// Package utils provides general-purpose helper utilities used across
// different parts of the application. Includes tools for working with
// context, type-safe keys, payload hashing, HTTP response writing, HTTP
// client initialization, JWT token generation and validation, and other
// common operations.
package utils

import (
	"context"

	"github.com/session-foundation/configsync/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OwnerCtxKey is the key used to store the authenticated owner identity in
// the context. Used together with GetOwnerFromContext for type-safe
// retrieval of the owner from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.OwnerCtxKey, models.Owner("05aa..."))
var OwnerCtxKey = contextKey("owner")

// GetOwnerFromContext retrieves the authenticated owner from the context.
//
// Returns the owner and an ok flag:
//   - ok == true  — value is found and has the correct models.Owner type
//   - ok == false — value is missing or has an unexpected type
func GetOwnerFromContext(ctx context.Context) (models.Owner, bool) {
	owner, ok := ctx.Value(OwnerCtxKey).(models.Owner)
	return owner, ok
}
