package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sonar/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 80, cfg.Lanternfish.Part1)
	assert.Equal(t, 256, cfg.Lanternfish.Part2)
	assert.Equal(t, 10, cfg.Polymer.Part1)
	assert.Equal(t, 40, cfg.Polymer.Part2)
	assert.Equal(t, 100, cfg.Octopus.Steps)

	l, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, l)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sonar.yaml")
	data := "input_dir: /tmp/puzzles\nlog_level: debug\noctopus:\n  worklist: true\n  steps: 10\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/puzzles", cfg.InputDir)
	assert.True(t, cfg.Octopus.Worklist)
	assert.Equal(t, 10, cfg.Octopus.Steps)
	assert.Equal(t, 10000, cfg.Octopus.SyncLimit, "unset keys keep defaults")
	assert.Equal(t, 40, cfg.Polymer.Part2)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	cases := []struct {
		name string
		yaml string
		want error
	}{
		{"negative steps", "polymer:\n  part2: -1\n", config.ErrInvalid},
		{"zero sync limit", "octopus:\n  sync_limit: 0\n", config.ErrInvalid},
		{"bad level", "log_level: loud\n", config.ErrInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			err := config.Decode(strings.NewReader(tc.yaml), &cfg)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	cfg := config.Default()
	assert.Error(t, config.Decode(strings.NewReader("colour: blue\n"), &cfg), "unknown keys are rejected")
}

func TestDecode_EmptyDocument(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, config.Decode(strings.NewReader(""), &cfg))
	assert.Equal(t, config.Default(), cfg)
}

func TestEncode_RoundTrip(t *testing.T) {
	want := config.Default()
	want.Octopus.Worklist = true

	var buf bytes.Buffer
	require.NoError(t, want.Encode(&buf))
	assert.Contains(t, buf.String(), "sync_limit: 10000")

	got := config.Config{}
	require.NoError(t, config.Decode(&buf, &got))
	assert.Equal(t, want, got)
}
