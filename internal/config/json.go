// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the snake_case layout
// of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		Env                    string   `json:"env"`
		Version                string   `json:"version"`
		TokenSignKey           string   `json:"token_sign_key"`
		TokenIssuer            string   `json:"token_issuer"`
		TokenDuration          Duration `json:"token_duration"`
		HashKey                string   `json:"hash_key"`
		BcryptCost             int      `json:"bcrypt_cost"`
		PasswordResetTTL       Duration `json:"password_reset_ttl"`
		PasswordResetURL       string   `json:"password_reset_url"`
		BootstrapAdminEmail    string   `json:"bootstrap_admin_email"`
		BootstrapAdminName     string   `json:"bootstrap_admin_name"`
		BootstrapAdminPassword string   `json:"bootstrap_admin_password"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		AllowedOrigins  []string `json:"allowed_origins"`
		AuthRateLimit   int      `json:"auth_rate_limit"`
		AuthRateBurst   int      `json:"auth_rate_burst"`
		TrustedProxies  []string `json:"trusted_proxies"`
	} `json:"server,omitempty"`

	Mail struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
		TLS      bool   `json:"tls"`
	} `json:"mail,omitempty"`

	Workers struct {
		MailQueueSize   int      `json:"mail_queue_size"`
		MailWorkers     int      `json:"mail_workers"`
		MailSendTimeout Duration `json:"mail_send_timeout"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Env:                    jsonCfg.App.Env,
			Version:                jsonCfg.App.Version,
			TokenSignKey:           jsonCfg.App.TokenSignKey,
			TokenIssuer:            jsonCfg.App.TokenIssuer,
			TokenDuration:          time.Duration(jsonCfg.App.TokenDuration),
			HashKey:                jsonCfg.App.HashKey,
			BcryptCost:             jsonCfg.App.BcryptCost,
			PasswordResetTTL:       time.Duration(jsonCfg.App.PasswordResetTTL),
			PasswordResetURL:       jsonCfg.App.PasswordResetURL,
			BootstrapAdminEmail:    jsonCfg.App.BootstrapAdminEmail,
			BootstrapAdminName:     jsonCfg.App.BootstrapAdminName,
			BootstrapAdminPassword: jsonCfg.App.BootstrapAdminPassword,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			AllowedOrigins:  jsonCfg.Server.AllowedOrigins,
			AuthRateLimit:   jsonCfg.Server.AuthRateLimit,
			AuthRateBurst:   jsonCfg.Server.AuthRateBurst,
			TrustedProxies:  jsonCfg.Server.TrustedProxies,
		},
		Mail: Mail{
			Host:     jsonCfg.Mail.Host,
			Port:     jsonCfg.Mail.Port,
			Username: jsonCfg.Mail.Username,
			Password: jsonCfg.Mail.Password,
			From:     jsonCfg.Mail.From,
			TLS:      jsonCfg.Mail.TLS,
		},
		Workers: Workers{
			MailQueueSize:   jsonCfg.Workers.MailQueueSize,
			MailWorkers:     jsonCfg.Workers.MailWorkers,
			MailSendTimeout: time.Duration(jsonCfg.Workers.MailSendTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
