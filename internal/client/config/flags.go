package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/zenkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the remote API
//	-d string   local data directory
//	-s string   cache backend: file, sqlite or memory
//	-t int      request timeout in seconds
//	-i int      background sync interval in seconds (0 disables)
//	-l string   log level
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the remote API")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "local data directory")
	fs.StringVar(&cfg.Store, "s", cfg.Store, "cache backend (file|sqlite|memory)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	syncInterval := fs.Int("i", int(cfg.SyncInterval.Seconds()), "background sync interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.SyncInterval = time.Duration(*syncInterval) * time.Second
}
