package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig is the TOML server configuration.
type fileConfig struct {
	Addr      string `toml:"addr"`
	BasePath  string `toml:"base_path"`
	SiteTitle string `toml:"site_title"`
	PageSize  int    `toml:"page_size"`
	ReadOnly  bool   `toml:"read_only"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		Addr:      ":9000",
		SiteTitle: "boostweb",
		PageSize:  10,
	}
}

// loadConfig reads the TOML file at path on top of the defaults. An empty
// path returns the defaults unchanged.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return fileConfig{}, fmt.Errorf("config load failed (%s): %w", path, err)
		}
	}
	if err := validateConfig(cfg); err != nil {
		return fileConfig{}, err
	}
	return cfg, nil
}

func validateConfig(cfg fileConfig) error {
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("config missing addr")
	}
	if cfg.PageSize < 1 {
		return fmt.Errorf("config page_size must be at least 1")
	}
	if cfg.BasePath != "" && strings.HasSuffix(cfg.BasePath, "/") {
		return fmt.Errorf("config base_path must not end with a slash")
	}
	return nil
}
