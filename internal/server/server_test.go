package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mangacatalog/internal/config"
	"mangacatalog/internal/testutil"
)

func testConfig() *config.Config {
	return &config.Config{
		GoEnv:           "development",
		HTTPPort:        0,
		RequestTimeout:  time.Second,
		ShutdownTimeout: time.Second,
		CORSOrigins:     []string{"*"},
		RateLimitRPS:    100,
		RateLimitBurst:  100,
	}
}

func TestNew_ServesCatalog(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.Seed(t, db)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := New(testConfig(), db, nil, logger)

	for _, path := range []string{"/check-conn", "/mangas", "/paises", "/tipos"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		srv.Handler().ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"), path)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	db := testutil.NewDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := testConfig()

	srv := New(cfg, db, nil, logger)
	srv.http.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
