// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

// Storage backend selectors.
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

// Config holds runtime settings for the userdir server.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - Storage: repository backend, "memory" (default) or "sqlite".
//   - DatabaseDSN: SQLite DSN; the default is an in-memory database so
//     state stays process-scoped either way.
//   - DisableAuth: accept anonymous callers on guarded operations
//     (the legacy open server variant).
//   - SeedDemoData: load the three demo users into an empty store.
type Config struct {
	EndpointAddr string
	Storage      string
	DatabaseDSN  string
	DisableAuth  bool
	SeedDemoData bool
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":4000"
	c.Storage = StorageMemory
	c.DatabaseDSN = "file:userdir?mode=memory&cache=shared"
	c.DisableAuth = false
	c.SeedDemoData = true
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
