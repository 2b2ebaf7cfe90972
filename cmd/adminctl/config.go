// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// cliConfig holds the global options. Flags override the environment.
type cliConfig struct {
	Server  string        `env:"SERVER" envDefault:"http://localhost:3000"`
	Token   string        `env:"TOKEN"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// parseGlobal reads the environment, then the global flags, and returns the
// remaining arguments starting with the command name.
func parseGlobal(args []string) (cliConfig, []string, error) {
	var cfg cliConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "ADMINCTL_"}); err != nil {
		return cliConfig{}, nil, fmt.Errorf("error parsing env: %w", err)
	}

	fs := flag.NewFlagSet("adminctl", flag.ContinueOnError)
	fs.StringVar(&cfg.Server, "server", cfg.Server, "API base URL")
	fs.StringVar(&cfg.Token, "token", cfg.Token, "admin session token")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "request timeout")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, nil, err
	}

	return cfg, fs.Args(), nil
}
