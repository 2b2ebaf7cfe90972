// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// defaultConfig returns the values used when no source sets a field.
// Secrets and connection strings have no defaults.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Env:              EnvProduction,
			Version:          "1.0.0",
			TokenIssuer:      "go-courses-api",
			TokenDuration:    24 * time.Hour,
			BcryptCost:       10,
			PasswordResetTTL: time.Hour,
			PasswordResetURL: "http://localhost:5173/reset-password",
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns: 10,
			},
		},
		Server: Server{
			HTTPAddress:     "0.0.0.0:3000",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"http://localhost:5173", "http://localhost:3000"},
			AuthRateLimit:   10,
			AuthRateBurst:   5,
		},
		Mail: Mail{
			Port: 587,
			From: "no-reply@courses.local",
		},
		Workers: Workers{
			MailQueueSize:   100,
			MailWorkers:     2,
			MailSendTimeout: 15 * time.Second,
		},
	}
}
