// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package utils

import (
	"context"
	"testing"

	"github.com/session-foundation/configsync/models"
)

func TestGetOwnerFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), OwnerCtxKey, models.Owner("05aa"))

	owner, ok := GetOwnerFromContext(ctx)
	if !ok {
		t.Fatal("expected owner in context")
	}
	if owner != "05aa" {
		t.Errorf("expected 05aa, got %s", owner)
	}
}

func TestGetOwnerFromContext_Missing(t *testing.T) {
	if _, ok := GetOwnerFromContext(context.Background()); ok {
		t.Error("expected no owner in empty context")
	}
}

func TestGetOwnerFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), OwnerCtxKey, "plain string")
	if _, ok := GetOwnerFromContext(ctx); ok {
		t.Error("expected type mismatch to report missing")
	}
}
