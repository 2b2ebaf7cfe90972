// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-courses-api/internal/config"
	"github.com/MKhiriev/go-courses-api/internal/handler"
	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/mail"
	"github.com/MKhiriev/go-courses-api/internal/server"
	"github.com/MKhiriev/go-courses-api/internal/service"
	"github.com/MKhiriev/go-courses-api/internal/store"
	"github.com/MKhiriev/go-courses-api/internal/workers"
	"github.com/MKhiriev/go-courses-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("courses-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	templates, err := mail.NewTemplates()
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing email templates")
	}
	dispatcher := workers.NewMailDispatcher(templates, mail.NewSender(cfg.Mail, log), cfg.Workers, log)

	services, err := service.NewServices(storages, dispatcher, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if cfg.App.BootstrapAdminEmail != "" {
		err = services.AdminService.EnsureAdmin(ctx, cfg.App.BootstrapAdminEmail, cfg.App.BootstrapAdminName, cfg.App.BootstrapAdminPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("error ensuring bootstrap admin")
		}
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var wg sync.WaitGroup
	wg.Go(func() { workers.NewWorkers(dispatcher).Run(ctx) })

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
		stop()
	}

	wg.Wait()
	log.Info().Msg("courses server stopped")
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
