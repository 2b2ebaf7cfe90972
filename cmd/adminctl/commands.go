// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-courses-api/internal/adapter"
	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/models"
)

var (
	errNoCommand      = errors.New("no command given")
	errUnknownCommand = errors.New("unknown command")
	errMissingID      = errors.New("exactly one id argument is required")
	errMissingToken   = errors.New("no token: run login and pass -token or set ADMINCTL_TOKEN")
)

// apiFactory builds the admin API client for the parsed configuration.
type apiFactory func(cfg cliConfig, log *logger.Logger) (adapter.AdminAPI, error)

func newAdminAPI(cfg cliConfig, log *logger.Logger) (adapter.AdminAPI, error) {
	return adapter.NewHTTPAdminAPI(adapter.Config{Address: cfg.Server, Timeout: cfg.Timeout}, log)
}

type command struct {
	needsToken bool
	run        func(ctx context.Context, api adapter.AdminAPI, args []string, out io.Writer) error
}

var commands = map[string]command{
	"login":    {run: loginCmd},
	"users":    {needsToken: true, run: usersCmd},
	"user":     {needsToken: true, run: userCmd},
	"ban":      {needsToken: true, run: banCmd},
	"unban":    {needsToken: true, run: unbanCmd},
	"requests": {needsToken: true, run: requestsCmd},
	"approve":  {needsToken: true, run: resolveCmd("approve")},
	"reject":   {needsToken: true, run: resolveCmd("reject")},
}

func run(ctx context.Context, args []string, out io.Writer, newAPI apiFactory, log *logger.Logger) error {
	cfg, rest, err := parseGlobal(args)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return errNoCommand
	}

	cmd, ok := commands[rest[0]]
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownCommand, rest[0])
	}
	if cmd.needsToken && cfg.Token == "" {
		return errMissingToken
	}

	api, err := newAPI(cfg, log)
	if err != nil {
		return err
	}
	api.SetToken(cfg.Token)

	log.Debug().Str("command", rest[0]).Str("server", cfg.Server).Msg("running command")

	return cmd.run(ctx, api, rest[1:], out)
}

func loginCmd(ctx context.Context, api adapter.AdminAPI, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "admin email")
	password := fs.String("password", "", "admin password")
	deviceID := fs.String("device", "", "device id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	auth, err := api.Login(ctx, models.LoginRequest{Email: *email, Password: *password, DeviceID: *deviceID})
	if err != nil {
		return err
	}
	if auth.User.Role != models.RoleAdmin {
		fmt.Fprintf(out, "warning: %s is %s, admin commands will be refused\n", auth.User.Email, auth.User.Role)
	}

	fmt.Fprintln(out, auth.Token)
	return nil
}

func usersCmd(ctx context.Context, api adapter.AdminAPI, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("users", flag.ContinueOnError)
	role := fs.String("role", "", "filter by role (ADMIN, TEACHER, USER)")
	banned := fs.String("banned", "", "filter by ban state (true, false)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := models.UserFilter{Role: models.Role(strings.ToUpper(*role))}
	if *banned != "" {
		b, err := strconv.ParseBool(*banned)
		if err != nil {
			return fmt.Errorf("invalid -banned value: %w", err)
		}
		filter.Banned = &b
	}

	users, err := api.ListUsers(ctx, filter)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEMAIL\tNAME\tROLE\tDEVICE\tBANNED")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%t\n", u.ID, u.Email, u.Name, u.Role, deref(u.DeviceID), u.IsBanned)
	}
	return tw.Flush()
}

func userCmd(ctx context.Context, api adapter.AdminAPI, args []string, out io.Writer) error {
	id, err := singleID(args)
	if err != nil {
		return err
	}

	user, err := api.GetUser(ctx, id)
	if err != nil {
		return err
	}

	printUser(out, user)
	return nil
}

func banCmd(ctx context.Context, api adapter.AdminAPI, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("ban", flag.ContinueOnError)
	reason := fs.String("reason", "", "ban reason shown to the user")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := singleID(fs.Args())
	if err != nil {
		return err
	}

	user, err := api.BanUser(ctx, id, *reason)
	if err != nil {
		return err
	}

	printUser(out, user)
	return nil
}

func unbanCmd(ctx context.Context, api adapter.AdminAPI, args []string, out io.Writer) error {
	id, err := singleID(args)
	if err != nil {
		return err
	}

	user, err := api.UnbanUser(ctx, id)
	if err != nil {
		return err
	}

	printUser(out, user)
	return nil
}

func requestsCmd(ctx context.Context, api adapter.AdminAPI, _ []string, out io.Writer) error {
	requests, err := api.ListRecoveryRequests(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER\tNEW DEVICE\tCREATED\tMESSAGE")
	for _, r := range requests {
		who := r.UserID
		if r.User != nil {
			who = r.User.Email
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, who, r.NewDeviceID, r.CreatedAt.Format(time.RFC3339), r.Message)
	}
	return tw.Flush()
}

func resolveCmd(action string) func(ctx context.Context, api adapter.AdminAPI, args []string, out io.Writer) error {
	return func(ctx context.Context, api adapter.AdminAPI, args []string, out io.Writer) error {
		fs := flag.NewFlagSet(action, flag.ContinueOnError)
		note := fs.String("note", "", "note shown to the user")
		if err := fs.Parse(args); err != nil {
			return err
		}
		id, err := singleID(fs.Args())
		if err != nil {
			return err
		}

		var adminNote *string
		if *note != "" {
			adminNote = note
		}

		outcome := "rejected"
		if action == "approve" {
			outcome = "approved"
			err = api.ApproveRecoveryRequest(ctx, id, adminNote)
		} else {
			err = api.RejectRecoveryRequest(ctx, id, adminNote)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "recovery request %s: %s\n", id, outcome)
		return nil
	}
}

func singleID(args []string) (string, error) {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return "", errMissingID
	}
	return args[0], nil
}

func printUser(out io.Writer, u models.User) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "id:\t%s\n", u.ID)
	fmt.Fprintf(tw, "email:\t%s\n", u.Email)
	fmt.Fprintf(tw, "name:\t%s\n", u.Name)
	fmt.Fprintf(tw, "role:\t%s\n", u.Role)
	fmt.Fprintf(tw, "device:\t%s\n", deref(u.DeviceID))
	fmt.Fprintf(tw, "banned:\t%t\n", u.IsBanned)
	if u.BanReason != nil {
		fmt.Fprintf(tw, "ban reason:\t%s\n", *u.BanReason)
	}
	_ = tw.Flush()
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
