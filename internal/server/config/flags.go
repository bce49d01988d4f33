package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/userdir/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":4000")
//	-b string   storage backend ("memory" or "sqlite")
//	-d string   SQLite DSN
//	-n          disable authentication checks
//	-s bool     seed demo users into an empty store (default true)
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-b", "-d", "-n", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.Storage, "b", config.Storage, "storage backend (memory|sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.BoolVar(&config.DisableAuth, "n", config.DisableAuth, "disable authentication checks")
	fs.BoolVar(&config.SeedDemoData, "s", config.SeedDemoData, "seed demo users")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
