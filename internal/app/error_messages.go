// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message constants used by the
// exporter runtime and its entrypoint.
//
// All Msg* constants are human-readable strings written into log entries or
// shown to the user to describe the outcome of a step. Keeping them in one
// place keeps the wording consistent.
package app

const (
	// MsgConfigError is logged when the configuration cannot be assembled or
	// fails validation.
	MsgConfigError = "error getting configs"

	// MsgAdapterError is logged when the remote adapter cannot be created.
	MsgAdapterError = "create remote adapter"

	// MsgStorageError is logged when the token store, data directory or
	// export journal cannot be opened.
	MsgStorageError = "create local storage"

	// MsgServicesError is logged when the service layer cannot be wired.
	MsgServicesError = "create exporter services"

	// MsgAppInitError is logged when the runtime cannot be created.
	MsgAppInitError = "init exporter app error"

	// MsgRunError is logged when the export stops with an error.
	MsgRunError = "exporter run error"

	// MsgAuthenticationFailed is shown when the remote service rejects the
	// credentials. The process exits without retrying.
	MsgAuthenticationFailed = "authentication failed"

	// MsgExportFinished is shown when every requested export completed.
	MsgExportFinished = "Export finished."

	// MsgJournalUnavailable is logged when the export journal could not be
	// updated. The export itself is not affected.
	MsgJournalUnavailable = "export journal unavailable"
)
