package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCreatedWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hostconfig.json")
	c := NewConfig(path)
	require.NoError(t, c.Load())

	assert.True(t, c.CheckPassword(defaultPassword))
	assert.False(t, c.CheckPassword("wrong"))
	assert.Equal(t, "localhost:8999", c.Addr())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var saved map[string]any
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Equal(t, "host.db", saved["db_path"])
	assert.NotEqual(t, defaultPassword, saved["admin_password_hash"], "only the hash is stored")
}

func TestConfigKeepsFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hostconfig.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port":"9100"}`), 0600))

	c := NewConfig(path)
	require.NoError(t, c.Load())
	assert.Equal(t, "localhost:9100", c.Addr())
	assert.Equal(t, 200, c.AuditLimit, "missing fields keep defaults")
}

func TestSetPassword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hostconfig.json")
	c := NewConfig(path)
	require.NoError(t, c.Load())
	require.NoError(t, c.SetPassword("s3cret"))
	assert.Error(t, c.SetPassword(""))

	reloaded := NewConfig(path)
	require.NoError(t, reloaded.Load())
	assert.True(t, reloaded.CheckPassword("s3cret"))
	assert.False(t, reloaded.CheckPassword(defaultPassword))
}
