package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeApp(t *testing.T) {
	t.Setenv("ALMANAC_SERVER_PORT", "9091")
	t.Setenv("ALMANAC_SERVER_LOG_LEVEL", "warn")

	app, err := initializeApp(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 9091, app.config.Server.Port)
	assert.NotNil(t, app.logger)
	assert.NotNil(t, app.registry)
	assert.NotNil(t, app.controller)
}

func TestInitializeAppSeedsAccounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.txt")
	require.NoError(t, os.WriteFile(path, []byte("alice,secret\nbob,hunter2\n"), 0o600))

	t.Setenv("ALMANAC_BOOTSTRAP_ACCOUNTS_FILE", path)

	app, err := initializeApp(context.Background())
	require.NoError(t, err)

	account, err := app.registry.GetAccount(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, account.Active)

	_, err = app.registry.GetAccount(context.Background(), "bob")
	assert.NoError(t, err)
}

func TestInitializeAppRejectsMalformedSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.txt")
	require.NoError(t, os.WriteFile(path, []byte("no-comma-here\n"), 0o600))

	t.Setenv("ALMANAC_BOOTSTRAP_ACCOUNTS_FILE", path)

	_, err := initializeApp(context.Background())
	assert.Error(t, err)
}

func TestHealthEndpoint(t *testing.T) {
	app, err := initializeApp(context.Background())
	require.NoError(t, err)

	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"available"}`, rec.Body.String())
}
