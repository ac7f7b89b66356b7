package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/ehpsim/internal/testutil"
)

func writeConfig(t *testing.T, body string) string {
	return testutil.WriteFile(t, "ehpsim.yaml", body)
}

func TestDefaultSimulator(t *testing.T) {
	cfg := DefaultSimulator()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.Workers)
	assert.Zero(t, cfg.Top)
	assert.Len(t, cfg.Runs, 5)
	assert.Equal(t, []string{"rudder", "toolbox"}, cfg.Loadout("rudder/box"))
	assert.Nil(t, cfg.Loadout(""))
}

func TestLoadSimulator_MissingFile(t *testing.T) {
	cfg, err := LoadSimulator(testutil.MissingFile(t, "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSimulator(), cfg)
}

func TestLoadSimulator_Overrides(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
workers: 4
top: 3
presets_file: extra.yaml
loadouts:
  solo: [manjuu]
runs:
  - units: [Anchorage, Acasta]
    stage: meta_boss
    loadout: solo
`)
	cfg, err := LoadSimulator(path)
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 3, cfg.Top)
	assert.Equal(t, "extra.yaml", cfg.PresetsFile)
	require.Len(t, cfg.Runs, 1, "runs replace the default report")
	assert.Equal(t, []string{"Anchorage", "Acasta"}, cfg.Runs[0].Units)
	assert.Equal(t, []string{"manjuu"}, cfg.Loadout("solo"))
	// default loadouts stay available
	assert.Equal(t, []string{"rudder", "beaver"}, cfg.Loadout("rudder/beaver"))
}

func TestLoadSimulator_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"malformed", "runs: [", "parsing config"},
		{"negative workers", "workers: -1", "workers -1"},
		{"negative top", "top: -2", "top -2"},
		{"unknown loadout", "runs:\n  - units: [Z1]\n    stage: meta_boss\n    loadout: nope\n", `unknown loadout "nope"`},
		{"run without units", "runs:\n  - stage: meta_boss\n", "no units"},
		{"run without stage", "runs:\n  - units: [Z1]\n", "no stage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSimulator(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestSimulator_Level(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Simulator{LogLevel: tt.in}.Level(), tt.in)
	}
}
