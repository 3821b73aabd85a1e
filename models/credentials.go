// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials are the account e-mail and password used when no usable cached
// session exists.
type Credentials struct {
	Email    string
	Password string
}

// Complete reports whether both fields are filled in.
func (c Credentials) Complete() bool {
	return c.Email != "" && c.Password != ""
}
