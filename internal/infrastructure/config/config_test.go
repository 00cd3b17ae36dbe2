package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/perkrifj/adif-tools/internal/domain/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "labeler.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
date:
  layout: "02 Jan 2006 1504Z"
reader:
  infer_band: true
render:
  columns: 3
  show_operator: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "02 Jan 2006 1504Z", cfg.Date.Layout)
	assert.Equal(t, "2006-01-02", cfg.Date.DateOnlyLayout, "unset keys keep defaults")
	assert.True(t, cfg.Reader.InferBand)
	assert.True(t, cfg.Reader.SkipInvalid)
	assert.Equal(t, 3, cfg.Render.Columns)
	assert.False(t, cfg.Render.ShowOperator)
	assert.True(t, cfg.Render.Sort)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "render:\n  columns: 2\n")
	t.Setenv("LABELER_RENDER__COLUMNS", "4")
	t.Setenv("LABELER_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Render.Columns)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, "log_level: chatty\nrender:\n  columns: 20\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidConfig)

	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details, "Config.LogLevel")
	assert.Contains(t, appErr.Details, "Config.Render.Columns")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}, wantErr: false},
		{name: "empty layout", mutate: func(c *Config) { c.Date.Layout = "" }, wantErr: true},
		{name: "zero columns", mutate: func(c *Config) { c.Render.Columns = 0 }, wantErr: true},
		{name: "narrow columns", mutate: func(c *Config) { c.Render.ColumnWidth = 8 }, wantErr: true},
		{name: "error level", mutate: func(c *Config) { c.LogLevel = "error" }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "log_level", envKey("LABELER_LOG_LEVEL"))
	assert.Equal(t, "render.show_operator", envKey("LABELER_RENDER__SHOW_OPERATOR"))
}
