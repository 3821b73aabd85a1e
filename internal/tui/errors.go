// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	// ErrUserQuit is returned when a form is closed with esc or ctrl+c.
	ErrUserQuit = errors.New("input cancelled by user")
	// ErrUnexpectedModel is returned when a program ends with a model of an
	// unknown type.
	ErrUnexpectedModel = errors.New("unexpected final model")
)
