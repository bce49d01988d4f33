package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c := &Config{}
	c.LoadDefaults()

	assert.Equal(t, ":4000", c.EndpointAddr)
	assert.Equal(t, StorageMemory, c.Storage)
	assert.Equal(t, "file:userdir?mode=memory&cache=shared", c.DatabaseDSN)
	assert.False(t, c.DisableAuth)
	assert.True(t, c.SeedDemoData)
}

func TestParseJson_OverridesOnlyPresentKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"endpoint_addr": ":8080", "storage": "sqlite", "disable_auth": true}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	origArgs := os.Args
	os.Args = []string{"server", "-c", path}
	defer func() { os.Args = origArgs }()

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, ":8080", c.EndpointAddr)
	assert.Equal(t, StorageSQLite, c.Storage)
	assert.True(t, c.DisableAuth)
	// absent keys keep the defaults
	assert.Equal(t, "file:userdir?mode=memory&cache=shared", c.DatabaseDSN)
	assert.True(t, c.SeedDemoData)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"server", "-a", ":9000", "-b", "sqlite", "-n"}
	defer func() { os.Args = origArgs }()

	c := &Config{}
	c.LoadDefaults()
	parseFlags(c)

	assert.Equal(t, ":9000", c.EndpointAddr)
	assert.Equal(t, StorageSQLite, c.Storage)
	assert.True(t, c.DisableAuth)
	assert.True(t, c.SeedDemoData)
}
