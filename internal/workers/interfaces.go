// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the export steps of a single exporter run and the
// Workers aggregate that runs them one after another.
package workers

import "context"

// Worker is a single export step. Run blocks until the step is complete.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Name() string { return "my-worker" }
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    // download and write documents
//	    return nil
//	}
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}
