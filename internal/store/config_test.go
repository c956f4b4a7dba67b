package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sl-calculator/internal/charges"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, charges.DefaultRates(), cfg.Rates())
}

func TestLoadConfig_PartialOverride(t *testing.T) {
	p := writeConfig(t, `
charges:
  brokerage_cap: 0
  tick_size: 0.05
  levy_mode: both_legs
server:
  addr: "127.0.0.1:9000"
output:
  format: JSON
`)

	cfg, err := LoadConfig(p)
	require.NoError(t, err)

	r := cfg.Rates()
	assert.Equal(t, 0.0, r.BrokerageCap)
	assert.Equal(t, 0.05, r.TickSize)
	assert.Equal(t, charges.LevyBothLegs, r.LevyMode)
	assert.Equal(t, 0.0003, r.BrokerageRate, "unset keys keep their defaults")
	assert.Equal(t, 0.18, r.GSTRate)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"negative rate", "charges:\n  stt_rate: -1\n", "charges.stt_rate"},
		{"levy mode", "charges:\n  levy_mode: never\n", "levy_mode"},
		{"server mode", "server:\n  mode: prod\n", "server.mode"},
		{"output format", "output:\n  format: xml\n", "output.format"},
		{"bad yaml", "charges: [\n", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSaveToFile_RoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.yaml")

	cfg := Default()
	cfg.Charges.TickSize = 0.05
	require.NoError(t, cfg.SaveToFile(p))

	got, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
