package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/zenkeeper/internal/client/client"
	"github.com/dmitrijs2005/zenkeeper/internal/common"
	"github.com/dmitrijs2005/zenkeeper/internal/filex"
)

// Store backends.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Config holds runtime settings for the zenkeeper CLI.
//
// Fields:
//   - BaseURL: root of the remote API.
//   - DataDir: directory holding the local cache.
//   - Store: cache backend, one of file, sqlite or memory.
//   - Token: bearer token for the remote API.
//   - RequestTimeout: upper bound for one HTTP exchange.
//   - SyncInterval: period of background sync; zero disables it.
//   - LogLevel: debug, info, warn or error.
//   - LogFile: rotated log file; "-" logs to stderr, empty means
//     zenkeeper.log inside DataDir.
type Config struct {
	BaseURL        string
	DataDir        string
	Store          string
	Token          string
	RequestTimeout time.Duration
	SyncInterval   time.Duration
	LogLevel       string
	LogFile        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = client.DefaultBaseURL
	c.DataDir = defaultDataDir()
	c.Store = StoreFile
	c.RequestTimeout = client.DefaultTimeout
	c.SyncInterval = 5 * time.Minute
	c.LogLevel = "info"
}

// LogPath resolves where logs go; "" means stderr.
func (c *Config) LogPath() string {
	switch c.LogFile {
	case "-":
		return ""
	case "":
		return filepath.Join(c.DataDir, common.AppName+".log")
	}
	return c.LogFile
}

func defaultDataDir() string {
	dir, err := filex.DataDir(common.AppName)
	if err != nil {
		return common.AppName
	}
	return dir
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if present), command-line flags (if present) and the environment.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	parseEnv(cfg)
	return cfg
}

// parseEnv reads the API token from the environment.
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv(common.TokenEnvVar); ok && v != "" {
		cfg.Token = v
	}
}
