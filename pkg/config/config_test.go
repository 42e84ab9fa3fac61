package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guestcov/guestcov/pkg/coverage"
	"github.com/guestcov/guestcov/pkg/exporters"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0644))
	return dir
}

func TestLoadConfig(t *testing.T) {
	viper.Reset()
	dir := writeConfig(t, `{
		"filename": "out.csv",
		"mode": "process",
		"bufferSize": 0,
		"osFamily": "linux",
		"tracePath": "trace.jsonl",
		"prometheusExporterEnabled": true
	}`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "out.csv", cfg.Filename)
	assert.Equal(t, "process", cfg.Mode)
	assert.Equal(t, 0, cfg.BufferSize)
	assert.Equal(t, "linux", cfg.OSFamily)
	assert.Equal(t, "trace.jsonl", cfg.TracePath)
	assert.True(t, cfg.EnablePrometheusExporter)
}

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	dir := writeConfig(t, `{"osFamily": "linux"}`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "coverage.csv", cfg.Filename)
	assert.Equal(t, exporters.DefaultBufferSize, cfg.BufferSize)
	assert.Empty(t, cfg.Mode)
}

func TestLoadConfigMissingFile(t *testing.T) {
	viper.Reset()
	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name       string
		mode       string
		osFamily   string
		want       coverage.Mode
		downgraded bool
		wantErr    bool
	}{
		{name: "default with os", osFamily: "linux", want: coverage.ModeProcess},
		{name: "default without os", want: coverage.ModeAsid},
		{name: "process with os", mode: "process", osFamily: "linux", want: coverage.ModeProcess},
		{name: "process without os downgrades", mode: "process", want: coverage.ModeAsid, downgraded: true},
		{name: "asid with os", mode: "asid", osFamily: "linux", want: coverage.ModeAsid},
		{name: "asid without os", mode: "asid", want: coverage.ModeAsid},
		{name: "bogus mode", mode: "bogus", osFamily: "linux", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{Mode: tc.mode, OSFamily: tc.osFamily}
			mode, downgraded, err := cfg.ResolveMode()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, mode)
			assert.Equal(t, tc.downgraded, downgraded)
		})
	}
}
