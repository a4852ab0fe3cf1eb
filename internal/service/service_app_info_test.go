package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-scripture-lens/internal/config"
	"github.com/MKhiriev/go-scripture-lens/internal/logger"
	"github.com/MKhiriev/go-scripture-lens/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	cfg := config.App{Version: "1.0.0"}

	svc, err := NewAppInfoService(cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	cfg := config.App{Version: ""}

	svc, err := NewAppInfoService(cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

func TestNewAppInfoService_DevVersion_UsesBuildVersion(t *testing.T) {
	buildInfo := models.NewAppBuildInfo("v1.4.0", "2026-10-01", "abc123")

	svc, err := NewAppInfoService(config.App{Version: "dev"}, buildInfo, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "v1.4.0", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_EmptyVersion_UsesBuildVersion(t *testing.T) {
	buildInfo := models.NewAppBuildInfo("v2.0.0", "", "")

	svc, err := NewAppInfoService(config.App{}, buildInfo, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "v2.0.0", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_ExplicitVersion_WinsOverBuild(t *testing.T) {
	buildInfo := models.NewAppBuildInfo("v2.0.0", "", "")

	svc, err := NewAppInfoService(config.App{Version: "3.0.0"}, buildInfo, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "3.0.0", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_DevWithoutBuild_KeepsDev(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "dev"}, models.NewAppBuildInfo("", "", ""), logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "dev", svc.GetAppVersion(context.Background()))
}

// ─────────────────────────────────────────────
// GetAppVersion / GetBuildInfo
// ─────────────────────────────────────────────

func TestGetAppVersion_VersionIsStable(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "0.0.1"}, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	first := svc.GetAppVersion(ctx)
	second := svc.GetAppVersion(ctx)

	assert.Equal(t, first, second, "version must not change between calls")
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // отменяем сразу

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

func TestGetBuildInfo_ReturnsInjectedValues(t *testing.T) {
	buildInfo := models.NewAppBuildInfo("v1.0.0", "2026-10-19", "deadbeef")
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, buildInfo, logger.Nop())
	require.NoError(t, err)

	got := svc.GetBuildInfo(context.Background())

	assert.Equal(t, "v1.0.0", got.BuildVersion())
	assert.Equal(t, "2026-10-19", got.BuildDate())
	assert.Equal(t, "deadbeef", got.BuildCommit())
}
