package app

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketlab/doctools/internal/manifest"
)

func testServerConfig() manifest.ServerConfig {
	return manifest.ServerConfig{
		Name:    "docs-mcp-server",
		Version: "0.2.0",
		HTTP: manifest.HTTPConfig{
			Listen: "127.0.0.1:0",
			Path:   "/mcp",
		},
	}
}

func TestNewRejectsNilHandler(t *testing.T) {
	_, err := New(context.Background(), testServerConfig(), nil, nil, 0)
	require.Error(t, err)
}

func TestNewRejectsNilContext(t *testing.T) {
	handler := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	_, err := New(nil, testServerConfig(), handler, nil, 0) //nolint:staticcheck // verifying the guard
	require.Error(t, err)
}

func TestRunServesHealthAndShutsDown(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	cfg := testServerConfig()
	cfg.HTTP.Listen = "127.0.0.1:18931"

	application, err := New(context.Background(), cfg, handler, nil, time.Second)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- application.Run(ctx) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		var err error
		resp, err = http.Get("http://127.0.0.1:18931/healthz")
		return err == nil
	}, 2*time.Second, 20*time.Millisecond, "health endpoint should come up")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))

	ready, err := http.Get("http://127.0.0.1:18931/readyz")
	require.NoError(t, err)
	_ = ready.Body.Close()
	assert.Equal(t, http.StatusOK, ready.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
