package server

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/microposts/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrHTTP = "127.0.0.1:0"
	c.DatabaseDSN = filepath.Join(t.TempDir(), "app.db")
	c.SecretKey = "app-secret"
	c.PasswordHashCost = 4
	c.LogLevel = "error"
	return c
}

func TestNewApp_RequiresSecret(t *testing.T) {
	c := testConfig(t)
	c.SecretKey = ""

	_, err := NewApp(context.Background(), c)
	require.ErrorIs(t, err, config.ErrMissingSecretKey)
}

func TestNewApp_RejectsHashCost(t *testing.T) {
	c := testConfig(t)
	c.PasswordHashCost = 99

	_, err := NewApp(context.Background(), c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bcrypt cost")
}

func TestNewApp_BadDatabase(t *testing.T) {
	c := testConfig(t)
	c.DatabaseDSN = filepath.Join(t.TempDir(), "missing", "dir", "app.db")

	_, err := NewApp(context.Background(), c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db init error")
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop")
	}

	assert.Error(t, app.db.Ping())
}

func TestApp_RunReturnsListenError(t *testing.T) {
	c := testConfig(t)
	c.EndpointAddrHTTP = "256.0.0.1:99999"

	app, err := NewApp(context.Background(), c)
	require.NoError(t, err)

	require.Error(t, app.Run(context.Background()))
}
