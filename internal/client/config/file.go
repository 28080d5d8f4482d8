package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dmitrijs2005/zenkeeper/internal/flagx"
	"github.com/dmitrijs2005/zenkeeper/internal/timex"
)

// FileConfig is a DTO used exclusively for config file decoding.
// It relies on timex.Duration so intervals can be strings like "30s" (JSON
// and TOML) or integer nanoseconds (JSON only). Pointer fields tell an
// absent key from a zero value.
type FileConfig struct {
	BaseURL        *string         `json:"base_url" toml:"base_url"`
	DataDir        *string         `json:"data_dir" toml:"data_dir"`
	Store          *string         `json:"store" toml:"store"`
	Token          *string         `json:"token" toml:"token"`
	RequestTimeout *timex.Duration `json:"request_timeout" toml:"request_timeout"`
	SyncInterval   *timex.Duration `json:"sync_interval" toml:"sync_interval"`
	LogLevel       *string         `json:"log_level" toml:"log_level"`
	LogFile        *string         `json:"log_file" toml:"log_file"`
}

// parseFile overlays Config with values loaded from the file named by -c or
// -config. A .toml file is decoded as TOML, anything else as JSON. Keys
// missing from the file leave the current value alone. It panics on read or
// decode errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &fc)
	} else {
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	setIf(&cfg.BaseURL, fc.BaseURL)
	setIf(&cfg.DataDir, fc.DataDir)
	setIf(&cfg.Store, fc.Store)
	setIf(&cfg.Token, fc.Token)
	setIf(&cfg.LogLevel, fc.LogLevel)
	setIf(&cfg.LogFile, fc.LogFile)
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.SyncInterval != nil {
		cfg.SyncInterval = fc.SyncInterval.Duration
	}
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
