package main

import (
	"context"
	"net"
	"net/http"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"surveyapi/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, port int, redisAddr string) *config.AppConfig {
	t.Helper()
	cfg := config.FromEnv()
	cfg.AppEnv = config.EnvProduction
	cfg.DBDriver = config.DriverSQLite
	cfg.DatabaseURL = filepath.Join(t.TempDir(), "survey.db")
	cfg.Port = strconv.Itoa(port)
	cfg.RedisAddr = redisAddr
	return cfg
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

// TestRun_UnsupportedDriverReturnsError tests that a bad driver is reported instead of exiting.
func TestRun_UnsupportedDriverReturnsError(t *testing.T) {
	cfg := testConfig(t, freePort(t), "")
	cfg.DBDriver = "oracle"

	err := run(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported DB_DRIVER "oracle"`)
}

// TestRun_ListenFailureClosesResources tests that a busy port ends run with an error
// after the cache connection has been released.
func TestRun_ListenFailureClosesResources(t *testing.T) {
	mr := miniredis.RunT(t)

	busy, err := net.Listen("tcp", "0.0.0.0:0")
	require.NoError(t, err)
	defer busy.Close()
	port := busy.Addr().(*net.TCPAddr).Port

	err = run(context.Background(), testConfig(t, port, mr.Addr()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP server error")
	assert.Eventually(t, func() bool { return mr.CurrentConnections() == 0 }, 2*time.Second, 20*time.Millisecond)
}

// TestRun_ServesUntilCancelled tests the health endpoint and a clean return on cancellation.
func TestRun_ServesUntilCancelled(t *testing.T) {
	mr := miniredis.RunT(t)
	port := freePort(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- run(ctx, testConfig(t, port, mr.Addr())) }()

	url := "http://127.0.0.1:" + strconv.Itoa(port) + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("run did not return after cancellation")
	}
	assert.Eventually(t, func() bool { return mr.CurrentConnections() == 0 }, 2*time.Second, 20*time.Millisecond)
}
