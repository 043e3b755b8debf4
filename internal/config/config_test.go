package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/ecvis/pkg/ecvis"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	params, p := cfg.CurveParams()
	assert.Equal(t, ecvis.ExampleParams, params)
	assert.Equal(t, int64(17), p)
	assert.Empty(t, cfg.CurveOptions())

	sign := cfg.SignParams()
	assert.Equal(t, ecvis.DefaultSignParams(), sign)
	assert.Equal(t, ecvis.DefaultSampleConfig(), cfg.Sample)
	assert.Equal(t, ecvis.DefaultSegmentConfig(), cfg.SegmentConfig())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, cfg, Default())
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "ecvis.yaml", `
curve:
  a: 2
  b: 3
  p: 97
validate: true
signer:
  gx: 3
  gy: 5
  n: 7
sample:
  x_min: -5
  x_max: 5
  step: 0.5
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	params, p := cfg.CurveParams()
	assert.Equal(t, ecvis.CurveParams{A: 2, B: 3}, params)
	assert.Equal(t, int64(97), p)
	assert.Len(t, cfg.CurveOptions(), 1)

	sign := cfg.SignParams()
	assert.Equal(t, ecvis.NewPoint[int64](3, 5), sign.G)
	assert.Equal(t, int64(7), sign.N)
	assert.Equal(t, int64(3), sign.D, "unset keys keep their defaults")

	assert.Equal(t, ecvis.SampleConfig{XMin: -5, XMax: 5, Step: 0.5}, cfg.Sample)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Preset(t *testing.T) {
	path := writeConfig(t, "ecvis.json", `{"preset": "secp256k1"}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	params, p := cfg.CurveParams()
	assert.Equal(t, ecvis.CurveParams{A: 0, B: 7}, params)
	assert.Equal(t, int64(43), p)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ECVIS_CURVE_P", "23")
	t.Setenv("ECVIS_SIGNER_K", "5")

	cfg, err := Load("")
	require.NoError(t, err)

	_, p := cfg.CurveParams()
	assert.Equal(t, int64(23), p)
	assert.Equal(t, int64(5), cfg.SignParams().K)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"modulus too small", "curve:\n  p: 1\n"},
		{"order too small", "signer:\n  n: 0\n"},
		{"unknown preset", "preset: p521\n"},
		{"zero step", "sample:\n  step: 0\n"},
		{"inverted window", "sample:\n  x_min: 3\n  x_max: -3\n"},
		{"negative workers", "workers: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, "ecvis.yaml", tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
