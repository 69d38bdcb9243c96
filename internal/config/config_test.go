package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billdesk/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "billdesk-exports", cfg.S3.Bucket)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.InDelta(t, 10.0, cfg.PDF.MarginLeft, 0.001)
	assert.InDelta(t, 10.0, cfg.PDF.MarginBottom, 0.001)
	assert.Equal(t, 15*time.Second, cfg.Upstream.Timeout())
	assert.Equal(t, int64(5<<20), cfg.Upstream.MaxBodyBytes)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BILLDESK_PDF_MARGIN_LEFT", "18.5")
	t.Setenv("BILLDESK_UPSTREAM_BASE_URL", "https://billing.example.com/api/")
	t.Setenv("BILLDESK_CORS_ALLOWED_ORIGINS", " https://app.example.com , ,https://admin.example.com")
	t.Setenv("BILLDESK_DB_HOST", "db.internal")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.InDelta(t, 18.5, cfg.PDF.MarginLeft, 0.001)
	assert.Equal(t, "https://billing.example.com/api", cfg.Upstream.BaseURL)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Contains(t, cfg.DB.DSN(), "@db.internal:5432/")
}

func TestLoad_PortFallback(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("BILLDESK_SERVER_PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Port)
}

func TestLoad_RejectsNegativeMargin(t *testing.T) {
	t.Setenv("BILLDESK_PDF_MARGIN_TOP", "-4")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_RejectsZeroTimeout(t *testing.T) {
	t.Setenv("BILLDESK_UPSTREAM_TIMEOUT_SECS", "0")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_RejectsZeroBodyLimit(t *testing.T) {
	t.Setenv("BILLDESK_UPSTREAM_MAX_BODY_BYTES", "0")

	_, err := config.Load()
	assert.Error(t, err)
}
