// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

// Command client is a small CLI for exercising a running gatekeeper server.
//
// Usage:
//
//	client signup <username> <password>
//	client login <username> <password>
//
// Both commands open a session, print the authenticated profile, probe the
// admin endpoint, and log out.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/okulikov/go-gatekeeper/internal/adapter"
	"github.com/okulikov/go-gatekeeper/internal/config"
	"github.com/okulikov/go-gatekeeper/internal/logger"
	"github.com/okulikov/go-gatekeeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewCLILogger("gatekeeper-client")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Server, cfg.Auth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	args := flag.Args()
	if len(args) != 3 {
		log.Fatal().Msg("usage: client (signup|login) <username> <password>")
	}

	command := args[0]
	credentials := models.Credentials{Username: args[1], Password: args[2]}

	ctx := context.Background()

	switch command {
	case "signup":
		err = serverAdapter.Signup(ctx, credentials)
	case "login":
		err = serverAdapter.Login(ctx, credentials)
	default:
		log.Fatal().Str("command", command).Msg("unknown command")
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("authentication failed")
	}

	payload, err := serverAdapter.Profile(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("profile request failed")
	}

	fmt.Printf("Logged in as: %s\n", payload.Username)
	if payload.Role != "" {
		fmt.Printf("Role: %s\n", payload.Role)
	}

	switch err = serverAdapter.Admin(ctx); {
	case err == nil:
		fmt.Println("Admin access: granted")
	case errors.Is(err, adapter.ErrForbidden):
		fmt.Println("Admin access: denied")
	default:
		log.Fatal().Err(err).Msg("admin request failed")
	}

	if err = serverAdapter.Logout(ctx); err != nil {
		log.Fatal().Err(err).Msg("logout failed")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
