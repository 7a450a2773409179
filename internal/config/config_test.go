package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/claims-parser/internal/common"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 0, cfg.Extract.MaxPages)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, time.Minute, cfg.Batch.ProcessTimeout)
	assert.True(t, cfg.Batch.SkipHidden)
	assert.Empty(t, cfg.Batch.Extensions)
	assert.Equal(t, "json", cfg.Export.Format)
	assert.False(t, cfg.Export.Validate)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CLAIMS_LOG_LEVEL", "debug")
	t.Setenv("CLAIMS_LOG_FORMAT", "json")
	t.Setenv("CLAIMS_EXTRACT_MAX_PAGES", "15")
	t.Setenv("CLAIMS_BATCH_WORKERS", "8")
	t.Setenv("CLAIMS_BATCH_PROCESS_TIMEOUT", "30s")
	t.Setenv("CLAIMS_BATCH_SKIP_HIDDEN", "false")
	t.Setenv("CLAIMS_BATCH_EXTENSIONS", "pdf, txt")
	t.Setenv("CLAIMS_EXPORT_FORMAT", "xlsx")
	t.Setenv("CLAIMS_EXPORT_VALIDATE", "true")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 15, cfg.Extract.MaxPages)
	assert.Equal(t, 8, cfg.Batch.Workers)
	assert.Equal(t, 30*time.Second, cfg.Batch.ProcessTimeout)
	assert.False(t, cfg.Batch.SkipHidden)
	assert.Equal(t, []string{"pdf", "txt"}, cfg.Batch.Extensions)
	assert.Equal(t, "xlsx", cfg.Export.Format)
	assert.True(t, cfg.Export.Validate)
}

func TestLoad_RejectsZeroWorkers(t *testing.T) {
	t.Setenv("CLAIMS_BATCH_WORKERS", "0")

	_, err := Load()

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Contains(t, err.Error(), "batch.workers")
}

func TestLoad_RejectsNegativeTimeout(t *testing.T) {
	t.Setenv("CLAIMS_BATCH_PROCESS_TIMEOUT", "-5s")

	_, err := Load()

	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestLoad_RejectsNegativeMaxPages(t *testing.T) {
	t.Setenv("CLAIMS_EXTRACT_MAX_PAGES", "-3")

	_, err := Load()

	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
