package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userdir/internal/flagx"
)

// JsonConfig is the DTO for JSON configuration files. Pointer fields let an
// absent key keep the current (default) value rather than zeroing it.
type JsonConfig struct {
	EndpointAddr *string `json:"endpoint_addr"`
	Storage      *string `json:"storage"`
	DatabaseDSN  *string `json:"database_dsn"`
	DisableAuth  *bool   `json:"disable_auth"`
	SeedDemoData *bool   `json:"seed_demo_data"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags; if neither
// is set, no JSON file is loaded. If the file cannot be read or contains
// invalid JSON, the function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != nil {
		config.EndpointAddr = *c.EndpointAddr
	}
	if c.Storage != nil {
		config.Storage = *c.Storage
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.DisableAuth != nil {
		config.DisableAuth = *c.DisableAuth
	}
	if c.SeedDemoData != nil {
		config.SeedDemoData = *c.SeedDemoData
	}
}
