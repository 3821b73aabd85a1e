// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the exporter application runtime.
//
// It wires session acquisition, the date range prompt, the export workers and
// the export journal into a single process lifecycle.
package client
