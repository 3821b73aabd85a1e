// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-fit-exporter/internal/logger"
	"golang.org/x/oauth2"
)

// SessionTokenFile is the name of the cached token inside the token store
// directory.
const SessionTokenFile = "oauth2_token.json"

type fileSessionStore struct {
	dir    string
	logger *logger.Logger
}

// NewFileSessionStore returns a [SessionStore] that keeps the token as JSON in
// dir/oauth2_token.json. The directory is created with 0700 and the file with
// 0600 permissions on the first Save.
func NewFileSessionStore(dir string, logger *logger.Logger) SessionStore {
	return &fileSessionStore{dir: dir, logger: logger}
}

func (s *fileSessionStore) path() string {
	return filepath.Join(s.dir, SessionTokenFile)
}

func (s *fileSessionStore) Load(ctx context.Context) (*oauth2.Token, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrLocalSessionNotFound
		}
		s.logger.Err(err).Str("func", "fileSessionStore.Load").Str("path", s.path()).Msg("error reading token file")
		return nil, fmt.Errorf("read session token: %w", err)
	}

	var token oauth2.Token
	if err = json.Unmarshal(data, &token); err != nil {
		s.logger.Warn().Err(err).Str("func", "fileSessionStore.Load").Msg("token file is corrupted")
		return nil, fmt.Errorf("%w: %v", ErrInvalidSessionToken, err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("%w: empty access token", ErrInvalidSessionToken)
	}

	return &token, nil
}

func (s *fileSessionStore) Save(ctx context.Context, token *oauth2.Token) error {
	if token == nil || token.AccessToken == "" {
		return fmt.Errorf("%w: nothing to save", ErrInvalidSessionToken)
	}

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create token store dir: %w", err)
	}

	payload, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session token: %w", err)
	}

	tmp := s.path() + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write session token: %w", err)
	}
	if err = os.Rename(tmp, s.path()); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace session token: %w", err)
	}

	s.logger.Debug().Str("func", "fileSessionStore.Save").Str("path", s.path()).Msg("session token saved")
	return nil
}

func (s *fileSessionStore) Remove(ctx context.Context) error {
	if err := os.Remove(s.path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session token: %w", err)
	}
	return nil
}
