// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"io"

	"github.com/MKhiriev/go-fit-exporter/internal/adapter"
	"github.com/MKhiriev/go-fit-exporter/internal/config"
	"github.com/MKhiriev/go-fit-exporter/internal/logger"
	"github.com/MKhiriev/go-fit-exporter/internal/store"
	"github.com/MKhiriev/go-fit-exporter/internal/utils"
	"github.com/MKhiriev/go-fit-exporter/internal/validators"
)

type ClientServices struct {
	AuthService     AuthService
	ActivityService ActivityExportService
	HealthService   HealthExportService
	HistoryService  HistoryService
}

// NewClientServices wires the exporter services. Progress lines for the user
// are written to out.
func NewClientServices(
	storages *store.ClientStorages,
	connectAdapter adapter.ConnectAdapter,
	credentials CredentialSource,
	cfg *config.ExporterConfig,
	out io.Writer,
	logger *logger.Logger,
) (*ClientServices, error) {
	if storages == nil || connectAdapter == nil || credentials == nil || cfg == nil {
		return nil, errors.New("client services: missing dependency")
	}

	return &ClientServices{
		AuthService: NewClientAuthService(
			storages.SessionStore,
			connectAdapter,
			credentials,
			validators.NewExportValidator(),
			cfg.Storage.TokenStore,
			out,
			logger,
		),
		ActivityService: NewClientActivityService(
			connectAdapter,
			storages.FileStore,
			storages.Journal,
			cfg.Adapter.PageSize,
			out,
			logger,
		),
		HealthService:  NewClientHealthService(connectAdapter, storages.FileStore, storages.Journal, out, logger),
		HistoryService: NewClientHistoryService(storages.Journal, utils.NewUUIDGenerator(), logger),
	}, nil
}
