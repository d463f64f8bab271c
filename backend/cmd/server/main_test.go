package main

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"redesocial/backend/internal/api"
	"redesocial/backend/internal/graph/graphtest"
	"redesocial/backend/pkg/config"
)

func TestNewHTTPServer(t *testing.T) {
	cfg := config.Default()
	cfg.Port = "9090"

	srv := newHTTPServer(cfg, http.NotFoundHandler())

	assert.Equal(t, ":9090", srv.Addr)
	assert.NotNil(t, srv.Handler)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Reserve a free port, then hand it to the server.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	router := api.NewRouter(api.NewHandler(&graphtest.MockNetwork{}, zap.NewNop()), nil)
	srv := &http.Server{Addr: addr, Handler: router}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, zap.NewNop()) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
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
		t.Fatal("server did not shut down")
	}
}
