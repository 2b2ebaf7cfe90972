// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	// Arrange
	const password = "Secret123"

	// Act
	hash, err := HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)

	// Assert
	assert.NotEqual(t, password, hash)

	ok, err := CheckPassword(hash, password)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPassword(hash, "Wrong1234")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_InvalidCostFallsBackToDefault(t *testing.T) {
	hash, err := HashPassword("Secret123", 1)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	h1, err := HashPassword("Secret123", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("Secret123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	ok, err := CheckPassword("not-a-bcrypt-hash", "Secret123")
	assert.False(t, ok)
	assert.Error(t, err)
}
