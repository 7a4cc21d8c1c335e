package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveConfigCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	defer os.Setenv("HOME", oldHome)

	cfg := Config{
		Catalog: "/srv/ref/commands.yaml",
	}

	err := cfg.Save()
	require.NoError(t, err)

	// Verify file exists and has correct permissions
	path := Path()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadConfigNonExistentYieldsZeroConfig(t *testing.T) {
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	defer os.Setenv("HOME", oldHome)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestSaveLoadRoundtripWithAllFields(t *testing.T) {
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	defer os.Setenv("HOME", oldHome)

	original := Config{
		Catalog: "/srv/ref/commands.yaml",
		LogFile: "/tmp/gitref.log",
	}

	err := original.Save()
	require.NoError(t, err)

	loaded, err := Load()
	require.NoError(t, err)

	assert.Equal(t, original.Catalog, loaded.Catalog)
	assert.Equal(t, original.LogFile, loaded.LogFile)
}

func TestSaveConfigOverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	defer os.Setenv("HOME", oldHome)

	// First save
	cfg1 := Config{Catalog: "/one.yaml"}
	err := cfg1.Save()
	require.NoError(t, err)

	// Overwrite
	cfg2 := Config{Catalog: "/two.yaml"}
	err = cfg2.Save()
	require.NoError(t, err)

	// Verify second config is loaded
	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/two.yaml", loaded.Catalog)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	defer os.Setenv("HOME", oldHome)

	cfgDir := filepath.Join(dir, ".gitref")
	os.MkdirAll(cfgDir, 0700)
	path := filepath.Join(cfgDir, "config")

	err := os.WriteFile(path, []byte(""), 0600)
	require.NoError(t, err)

	// An empty file is a valid zero config; nothing is required.
	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", loaded.Catalog)
	assert.Equal(t, "", loaded.LogFile)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	defer os.Setenv("HOME", oldHome)

	cfgDir := filepath.Join(dir, ".gitref")
	os.MkdirAll(cfgDir, 0700)
	path := filepath.Join(cfgDir, "config")

	err := os.WriteFile(path, []byte("invalid: yaml: content:"), 0600)
	require.NoError(t, err)

	_, err = Load()
	assert.Error(t, err)
}

func TestConfigPermissionsStrictlyEnforced(t *testing.T) {
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	defer os.Setenv("HOME", oldHome)

	cfg := Config{Catalog: "/srv/ref/commands.yaml"}
	err := cfg.Save()
	require.NoError(t, err)

	// Try to make it world-readable
	path := Path()
	err = os.Chmod(path, 0644)
	require.NoError(t, err)

	// Load should fail with incorrect permissions
	_, err = Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "permissions")
}

func TestLoadConfigIgnoresUnknownFields(t *testing.T) {
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	defer os.Setenv("HOME", oldHome)

	cfgDir := filepath.Join(dir, ".gitref")
	os.MkdirAll(cfgDir, 0700)
	path := filepath.Join(cfgDir, "config")

	err := os.WriteFile(path, []byte("theme: dark\ncatalog: /srv/ref/commands.yaml\n"), 0600)
	require.NoError(t, err)

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/ref/commands.yaml", loaded.Catalog)
}

func TestPathReturnsCorrectLocation(t *testing.T) {
	path := Path()
	assert.Contains(t, path, ".gitref")
	assert.Contains(t, path, "config")
}
