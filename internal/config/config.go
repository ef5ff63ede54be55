// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/jeranaias/webqa/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete webqa configuration.
type Config struct {
	// Search controls the resolver.
	Search SearchConfig `toml:"search" json:"search"`

	// UI controls rendering.
	UI UIConfig `toml:"ui" json:"ui"`

	// Log controls the zap logger.
	Log LogConfig `toml:"log" json:"log"`

	// Settings seeds the settings panel.
	Settings SettingsConfig `toml:"settings" json:"settings"`
}

// SearchConfig contains resolver configuration.
type SearchConfig struct {
	// DelayMS is the simulated search latency in milliseconds.
	DelayMS int `toml:"delay_ms" json:"delay_ms" validate:"gte=0,lte=60000"`
	// RatePerSecond limits resolver calls. 0 disables limiting.
	RatePerSecond float64 `toml:"rate_per_second" json:"rate_per_second" validate:"gte=0,lte=1000"`
	// Burst is the limiter bucket size.
	Burst int `toml:"burst" json:"burst" validate:"gte=1,lte=100"`
	// SimulateFailure makes every search fail. Useful for trying the error path.
	SimulateFailure bool `toml:"simulate_failure" json:"simulate_failure"`
}

// UIConfig contains terminal UI configuration.
type UIConfig struct {
	// Theme is "dark", "light" or "auto".
	Theme string `toml:"theme" json:"theme" validate:"oneof=dark light auto"`
	// Markdown renders answers through glamour.
	Markdown bool `toml:"markdown" json:"markdown"`
	// ShowTimestamps prints the time under each message.
	ShowTimestamps bool `toml:"show_timestamps" json:"show_timestamps"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" json:"level" validate:"oneof=debug info warn error"`
	// Path is the log file. Empty disables logging.
	Path string `toml:"path" json:"path"`
}

// SettingsConfig holds values shown in the settings panel.
type SettingsConfig struct {
	// APIKey pre-fills the API key field. It is never sent anywhere.
	APIKey string `toml:"api_key" json:"api_key"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			DelayMS:       1000,
			RatePerSecond: 0, // unlimited
			Burst:         1,
		},
		UI: UIConfig{
			Theme:          "auto",
			Markdown:       false,
			ShowTimestamps: true,
		},
		Log: LogConfig{
			Level: "info",
			Path:  defaultLogPath(),
		},
	}
}

// SearchDelay returns the configured latency as a duration.
func (c *Config) SearchDelay() time.Duration {
	return time.Duration(c.Search.DelayMS) * time.Millisecond
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the webqa configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".webqa"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func defaultLogPath() string {
	dir, err := ConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "webqa.log")
}

// ensureSecurePermissions tightens the config file to 0600. The file may hold
// an API key.
func ensureSecurePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	mode := info.Mode().Perm()
	if mode != 0600 {
		if err := os.Chmod(path, 0600); err != nil {
			return fmt.Errorf("failed to fix insecure permissions (was %o): %w", mode, err)
		}
	}
	return nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// LoadEnvFile loads variables from .env files into the process environment.
// Missing files are not an error. Existing variables are not overwritten.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// LoadFromPath loads configuration from path with env overrides and
// validation. A missing file yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, statErr := os.Stat(path); statErr == nil {
		if err := ensureSecurePermissions(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
		}
		// Keys absent from the file keep their defaults.
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	} else if !errors.Is(statErr, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config %s: %w", path, statErr)
	}

	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the configuration to the default config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration to path with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# webqa configuration file\n")
	buf.WriteString("# Generated by webqa - edit with care\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600, 0700); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// envOverrides lists the supported environment variables. Unset variables
// leave their pointer nil.
type envOverrides struct {
	DelayMS  *int    `env:"WEBQA_SEARCH_DELAY_MS"`
	APIKey   *string `env:"WEBQA_API_KEY"`
	Theme    *string `env:"WEBQA_THEME"`
	LogLevel *string `env:"WEBQA_LOG_LEVEL"`
	LogPath  *string `env:"WEBQA_LOG_PATH"`
	Markdown *bool   `env:"WEBQA_MARKDOWN"`
}

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - WEBQA_SEARCH_DELAY_MS: overrides search.delay_ms
//   - WEBQA_API_KEY: overrides settings.api_key
//   - WEBQA_THEME: overrides ui.theme
//   - WEBQA_LOG_LEVEL: overrides log.level
//   - WEBQA_LOG_PATH: overrides log.path
//   - WEBQA_MARKDOWN: overrides ui.markdown
func (c *Config) ApplyEnvOverrides() error {
	var o envOverrides
	if _, err := env.UnmarshalFromEnviron(&o); err != nil {
		return fmt.Errorf("failed to read environment overrides: %w", err)
	}

	if o.DelayMS != nil {
		c.Search.DelayMS = *o.DelayMS
	}
	if o.APIKey != nil {
		c.Settings.APIKey = *o.APIKey
	}
	if o.Theme != nil {
		c.UI.Theme = strings.ToLower(*o.Theme)
	}
	if o.LogLevel != nil {
		c.Log.Level = strings.ToLower(*o.LogLevel)
	}
	if o.LogPath != nil {
		c.Log.Path = *o.LogPath
	}
	if o.Markdown != nil {
		c.UI.Markdown = *o.Markdown
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// validatorInstance reports fields by their TOML key.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Validate validates the configuration and returns ValidateErrors when any
// field is out of range.
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make(ValidateErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, ValidationError{
			Field:   fieldPath(fe.Namespace()),
			Message: describe(fe),
		})
	}
	return errs
}

// fieldPath turns "Config.search.delay_ms" into "search.delay_ms".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fmt.Sprint(fe.Value()))
	case "gte":
		return fmt.Sprintf("must be >= %s, got %v", fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("must be <= %s, got %v", fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// =============================================================================
// HELPERS
// =============================================================================

// Clone creates a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String returns a TOML rendering of the config with the API key redacted.
func (c *Config) String() string {
	safe := c.Clone()
	if safe.Settings.APIKey != "" {
		safe.Settings.APIKey = "[REDACTED]"
	}

	var buf bytes.Buffer
	_ = toml.NewEncoder(&buf).Encode(safe)
	return buf.String()
}
