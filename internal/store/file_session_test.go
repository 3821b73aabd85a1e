// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-fit-exporter/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestFileSessionStore_LoadMissing(t *testing.T) {
	s := NewFileSessionStore(filepath.Join(t.TempDir(), ".garminconnect"), logger.Nop())

	tok, err := s.Load(context.Background())

	assert.Nil(t, tok)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestFileSessionStore_SaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".garminconnect")
	s := NewFileSessionStore(dir, logger.Nop())
	ctx := context.Background()

	expiry := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	want := &oauth2.Token{
		AccessToken:  "access",
		TokenType:    "Bearer",
		RefreshToken: "refresh",
		Expiry:       expiry,
	}

	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.AccessToken, got.AccessToken)
	assert.Equal(t, want.RefreshToken, got.RefreshToken)
	assert.Equal(t, want.TokenType, got.TokenType)
	assert.True(t, want.Expiry.Equal(got.Expiry))

	fileInfo, err := os.Stat(filepath.Join(dir, SessionTokenFile))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fileInfo.Mode().Perm())

	dirInfo, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())

	_, err = os.Stat(filepath.Join(dir, SessionTokenFile+".tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestFileSessionStore_LoadCorrupted(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SessionTokenFile), []byte("{not json"), 0o600))

	_, err := NewFileSessionStore(dir, logger.Nop()).Load(context.Background())

	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestFileSessionStore_LoadEmptyAccessToken(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SessionTokenFile), []byte(`{"refresh_token":"r"}`), 0o600))

	_, err := NewFileSessionStore(dir, logger.Nop()).Load(context.Background())

	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestFileSessionStore_SaveNil(t *testing.T) {
	s := NewFileSessionStore(t.TempDir(), logger.Nop())

	assert.ErrorIs(t, s.Save(context.Background(), nil), ErrInvalidSessionToken)
	assert.ErrorIs(t, s.Save(context.Background(), &oauth2.Token{}), ErrInvalidSessionToken)
}

func TestFileSessionStore_Remove(t *testing.T) {
	dir := t.TempDir()
	s := NewFileSessionStore(dir, logger.Nop())
	ctx := context.Background()

	// удаление отсутствующего токена не ошибка
	require.NoError(t, s.Remove(ctx))

	require.NoError(t, s.Save(ctx, &oauth2.Token{AccessToken: "a"}))
	require.NoError(t, s.Remove(ctx))

	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}
