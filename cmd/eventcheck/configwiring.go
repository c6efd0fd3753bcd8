package main

import (
	"log/slog"

	"github.com/davetashner/eventcheck/internal/config"
)

// configDir is where .eventcheck.yaml / .eventcheck.toml are discovered.
var configDir = "."

// loadConfig merges the user-level config with the explicit --config file,
// or the one discovered in configDir, and validates the result.
func loadConfig() (*config.Config, error) {
	global, err := config.LoadGlobal()
	if err != nil {
		return nil, err
	}

	var local *config.Config
	if configPath != "" {
		local, err = config.LoadFile(configPath)
		if err != nil {
			return nil, err
		}
		slog.Debug("config loaded", "path", configPath)
	} else {
		var path string
		local, path, err = config.Discover(configDir)
		if err != nil {
			return nil, err
		}
		if path != "" {
			slog.Debug("config discovered", "path", path)
		}
	}

	cfg := config.Merge(global, local)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
