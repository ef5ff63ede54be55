// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for webqa.
//
// # Key Types
//
//   - Config: Main configuration structure
//   - SearchConfig: simulated latency, rate limit, failure switch
//   - UIConfig: theme, markdown rendering, timestamps
//   - LogConfig: zap level and log file
//   - SettingsConfig: API key seed for the settings panel
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (WEBQA_*), optionally read from a .env file
//   - ~/.webqa/config.toml
//   - Built-in defaults
//
// # Usage
//
//	path, _ := config.ConfigPath()
//	cfg, err := config.LoadFromPath(path)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	delay := cfg.SearchDelay()
//
// Save writes a config back with 0600 permissions, and String renders it with
// the API key redacted.
//
// Watch reloads the file on change:
//
//	w, err := config.Watch(ctx, path, 0, func(cfg *config.Config, err error) { ... })
//	defer w.Close()
package config
