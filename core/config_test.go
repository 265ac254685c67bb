package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.toml")
	content := `
title = "Test Room"
width = 800
vsync = false

[camera]
move_speed = 5.0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Test Room", config.Title)
	assert.Equal(t, 800, config.Width)
	assert.False(t, config.VSync)
	assert.Equal(t, float32(5.0), config.Camera.MoveSpeed)
	// Untouched fields keep their defaults.
	assert.Equal(t, 720, config.Height)
	assert.Equal(t, float32(60.0), config.Camera.FieldOfView)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = [not toml"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
