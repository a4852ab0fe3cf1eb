package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/MKhiriev/go-scripture-lens/internal/config"
	"github.com/MKhiriev/go-scripture-lens/internal/handler"
	"github.com/MKhiriev/go-scripture-lens/internal/logger"
	"github.com/MKhiriev/go-scripture-lens/internal/service"
	"github.com/MKhiriev/go-scripture-lens/models"
)

func TestMain(m *testing.M) {
	// genai pulls in opencensus, whose view worker lives for the whole process
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()

	appInfo, err := service.NewAppInfoService(config.App{Version: "4.5.6"}, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	handlers, err := handler.NewHandlers(&service.Services{AppInfoService: appInfo}, cfg, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(nil, config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_NoAddress(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	handlers := newTestHandlers(t, cfg)

	srv, err := NewServer(handlers, config.Server{}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunServesAndShutsDown(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: 5 * time.Second}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.(*server).run(ctx, l)
	}()

	client := &http.Client{Timeout: 2 * time.Second, Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + l.Addr().String() + "/api/version")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "4.5.6", string(body))

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunReturnsServeError(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, l.Close()) // закрытый listener: Serve сразу вернет ошибку

	err = srv.(*server).run(context.Background(), l)

	assert.Error(t, err)
}
