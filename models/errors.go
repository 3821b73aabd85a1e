// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// ErrInvalidActivity is returned when an activity list entry lacks the fields
// needed to place it on disk.
var ErrInvalidActivity = errors.New("invalid activity")
