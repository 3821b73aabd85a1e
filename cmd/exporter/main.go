// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-fit-exporter/internal/adapter"
	"github.com/MKhiriev/go-fit-exporter/internal/app"
	"github.com/MKhiriev/go-fit-exporter/internal/client"
	"github.com/MKhiriev/go-fit-exporter/internal/config"
	"github.com/MKhiriev/go-fit-exporter/internal/logger"
	"github.com/MKhiriev/go-fit-exporter/internal/service"
	"github.com/MKhiriev/go-fit-exporter/internal/store"
	"github.com/MKhiriev/go-fit-exporter/internal/tui"
	"github.com/MKhiriev/go-fit-exporter/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(tui.RenderBuildInfo(buildInfo))

	cfg, err := config.GetExporterConfig()
	if err != nil {
		logger.NewLogger("go-fit-exporter").Fatal().Err(err).Msg(app.MsgConfigError)
	}

	log := logger.NewFileLogger("go-fit-exporter", cfg.App.LogFile)
	if cfg.App.LogLevel != "" && !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}

	connectAdapter, err := adapter.NewHTTPConnectAdapter(cfg.Adapter, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg(app.MsgAdapterError)
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg(app.MsgStorageError)
	}
	defer storages.Close()

	ui := tui.New(cfg.App, log)

	services, err := service.NewClientServices(storages, connectAdapter, ui, cfg, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg(app.MsgServicesError)
	}

	exporter, err := client.NewApp(services, ui, cfg.Run, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg(app.MsgAppInitError)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	if err = exporter.Run(ctx); err != nil {
		msg := app.MsgRunError
		if errors.Is(err, service.ErrAuthenticationFailed) {
			msg = app.MsgAuthenticationFailed
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)

		stop()
		_ = storages.Close()
		log.Fatal().Err(err).Msg(msg)
	}
}
