// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command adminctl is an operator CLI over the courses admin API.
//
// Usage:
//
//	adminctl [-server URL] [-token TOKEN] <command> [flags] [args]
//
// Commands:
//
//	login     -email E -password P       sign in and print the session token
//	users     [-role R] [-banned B]      list users
//	user      ID                         show one user
//	ban       -reason R ID               ban a user
//	unban     ID                         lift a ban
//	requests                             list pending recovery requests
//	approve   [-note N] ID               approve a recovery request
//	reject    [-note N] ID               reject a recovery request
//
// The server address and token may also be given with ADMINCTL_SERVER and
// ADMINCTL_TOKEN.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-courses-api/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.NewLogger("adminctl")
	logger.SetLevel(os.Getenv("ADMINCTL_ENV"))

	if err := run(ctx, os.Args[1:], os.Stdout, newAdminAPI, log); err != nil {
		fmt.Fprintln(os.Stderr, "adminctl:", err)
		stop()
		os.Exit(1)
	}
}
