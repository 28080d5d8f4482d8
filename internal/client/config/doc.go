// Package config loads runtime configuration for the zenkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file (see parseFile) selected via flags: -c or -config.
//     Files ending in .toml are TOML, anything else is JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//  4. The ZENMONEY_TOKEN environment variable, which sets the token.
//
// Supported flags
//
//	-a string   base URL of the remote API
//	-d string   local data directory
//	-s string   cache backend: file, sqlite or memory
//	-t int      request timeout (seconds)
//	-i int      background sync interval (seconds, 0 disables)
//	-l string   log level
//
// # File schema
//
// The file loader uses timex.Duration for intervals, so values can be either
// strings like "30s" or integer nanoseconds:
//
//	{
//	  "base_url": "https://api.zenmoney.ru",
//	  "data_dir": "/home/me/.local/share/zenkeeper",
//	  "store": "sqlite",
//	  "request_timeout": "30s",
//	  "sync_interval": "5m",
//	  "log_level": "debug",
//	  "log_file": "-"
//	}
//
// The default data directory is $XDG_DATA_HOME/zenkeeper, falling back to
// ~/.local/share/zenkeeper.
package config
