// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// DefaultOpaqueTokenBytes is the entropy of a one-time token.
const DefaultOpaqueTokenBytes = 32

// GenerateOpaqueToken returns a URL-safe random token built from n random
// bytes. n <= 0 uses [DefaultOpaqueTokenBytes].
func GenerateOpaqueToken(n int) (string, error) {
	if n <= 0 {
		n = DefaultOpaqueTokenBytes
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating random token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
