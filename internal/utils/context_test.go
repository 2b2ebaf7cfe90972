// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-courses-api/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestIdentityCtxKey(t *testing.T) {
	if IdentityCtxKey.String() != "identity" {
		t.Errorf("expected 'identity', got '%s'", IdentityCtxKey.String())
	}
}

func TestIdentityFromContext_Success(t *testing.T) {
	want := models.Identity{UserID: "u-1", Role: models.RoleAdmin, SessionID: "s-1"}
	ctx := WithIdentity(context.Background(), want)

	got, ok := IdentityFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestIdentityFromContext_Missing(t *testing.T) {
	got, ok := IdentityFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if !got.IsZero() {
		t.Errorf("expected zero identity, got %+v", got)
	}
}

func TestIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "not-an-identity")

	if _, ok := IdentityFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestIdentityFromContext_EmptyIdentity(t *testing.T) {
	ctx := WithIdentity(context.Background(), models.Identity{Role: models.RoleUser})

	if _, ok := IdentityFromContext(ctx); ok {
		t.Fatal("expected ok=false for identity without user id, got true")
	}
}

func TestIdentityFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, models.Identity{UserID: "u-1"})

	if _, ok := IdentityFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
