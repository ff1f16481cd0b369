package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/qrcontacts/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for config file unmarshalling.
// Pointer fields tell "absent" from "zero", so only keys present in the file
// override the defaults.
type FileConfig struct {
	ServerURL      *string         `json:"server_url" yaml:"server_url"`
	DBPath         *string         `json:"db_path" yaml:"db_path"`
	RequestTimeout *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	LogLevel       *string         `json:"log_level" yaml:"log_level"`
	LogBackend     *string         `json:"log_backend" yaml:"log_backend"`
	Color          *bool           `json:"color" yaml:"color"`
}

// parseFile overlays cfg with the values found in path.
func parseFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.ServerURL != nil {
		cfg.ServerURL = *fc.ServerURL
	}
	if fc.DBPath != nil {
		cfg.DBPath = *fc.DBPath
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogBackend != nil {
		cfg.LogBackend = *fc.LogBackend
	}
	if fc.Color != nil {
		cfg.Color = *fc.Color
	}
	return nil
}
