// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// clearEnv makes sure no WEBQA_* variable from the developer's shell leaks
// into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		if name, _, _ := strings.Cut(kv, "="); strings.HasPrefix(name, "WEBQA_") {
			value := os.Getenv(name)
			os.Unsetenv(name)
			t.Cleanup(func() { os.Setenv(name, value) })
		}
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// =============================================================================
// DEFAULTS
// =============================================================================

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1000, cfg.Search.DelayMS)
	assert.Equal(t, time.Second, cfg.SearchDelay())
	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.True(t, cfg.UI.ShowTimestamps)
	assert.Equal(t, "info", cfg.Log.Level)
}

// =============================================================================
// VALIDATION
// =============================================================================

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"negative delay", func(c *Config) { c.Search.DelayMS = -1 }, "search.delay_ms"},
		{"huge delay", func(c *Config) { c.Search.DelayMS = 120000 }, "search.delay_ms"},
		{"negative rate", func(c *Config) { c.Search.RatePerSecond = -2 }, "search.rate_per_second"},
		{"zero burst", func(c *Config) { c.Search.Burst = 0 }, "search.burst"},
		{"unknown theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
		{"unknown level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var verrs ValidateErrors
			require.True(t, errors.As(err, &verrs), "want ValidateErrors, got %T", err)
			require.Len(t, verrs, 1)
			assert.Equal(t, tc.field, verrs[0].Field)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.UI.Theme = "neon"
	cfg.Log.Level = "loud"

	var verrs ValidateErrors
	require.ErrorAs(t, cfg.Validate(), &verrs)
	assert.Len(t, verrs, 2)
	assert.Contains(t, verrs.Error(), "ui.theme")
	assert.Contains(t, verrs.Error(), "log.level")
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

func TestLoadFromPath_MissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Search, cfg.Search)
}

func TestLoadFromPath_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "[ui]\ntheme = \"light\"\nmarkdown = true\n")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.True(t, cfg.UI.Markdown)
	assert.Equal(t, 1000, cfg.Search.DelayMS)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadFromPath_InvalidTOML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "[search\ndelay_ms = ")

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_InvalidValue(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "[log]\nlevel = \"verbose\"\n")

	_, err := LoadFromPath(path)
	var verrs ValidateErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestSaveTOML_RoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Search.DelayMS = 250
	cfg.Settings.APIKey = "sk-test"
	require.NoError(t, SaveTOML(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 250, loaded.Search.DelayMS)
	assert.Equal(t, "sk-test", loaded.Settings.APIKey)
}

// =============================================================================
// ENVIRONMENT
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("WEBQA_SEARCH_DELAY_MS", "5")
	t.Setenv("WEBQA_API_KEY", "sk-env")
	t.Setenv("WEBQA_THEME", "LIGHT")
	t.Setenv("WEBQA_LOG_LEVEL", "debug")
	t.Setenv("WEBQA_MARKDOWN", "true")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnvOverrides())

	assert.Equal(t, 5, cfg.Search.DelayMS)
	assert.Equal(t, "sk-env", cfg.Settings.APIKey)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.UI.Markdown)
}

func TestApplyEnvOverrides_UnsetLeavesValues(t *testing.T) {
	clearEnv(t)

	cfg := Default()
	require.NoError(t, cfg.ApplyEnvOverrides())
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnvOverrides_BadNumber(t *testing.T) {
	clearEnv(t)
	t.Setenv("WEBQA_SEARCH_DELAY_MS", "soon")

	assert.Error(t, Default().ApplyEnvOverrides())
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("WEBQA_THEME=dark\n"), 0600))
	t.Cleanup(func() { os.Unsetenv("WEBQA_THEME") })

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "dark", os.Getenv("WEBQA_THEME"))

	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
}

// =============================================================================
// MISC
// =============================================================================

func TestString_RedactsAPIKey(t *testing.T) {
	cfg := Default()
	cfg.Settings.APIKey = "sk-secret"

	out := cfg.String()
	assert.NotContains(t, out, "sk-secret")
	assert.Contains(t, out, "[REDACTED]")
	assert.Equal(t, "sk-secret", cfg.Settings.APIKey)
}

// =============================================================================
// WATCH
// =============================================================================

func TestWatch_ReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)
	clearEnv(t)

	path := writeConfig(t, "[search]\ndelay_ms = 100\n")

	var (
		mu     sync.Mutex
		latest *Config
		calls  atomic.Int32
	)
	w, err := Watch(context.Background(), path, 20*time.Millisecond, func(cfg *Config, err error) {
		if err != nil {
			return
		}
		mu.Lock()
		latest = cfg
		mu.Unlock()
		calls.Add(1)
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("[search]\ndelay_ms = 42\n"), 0600))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return latest != nil && latest.Search.DelayMS == 42
	}, 3*time.Second, 10*time.Millisecond)
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)
	clearEnv(t)

	path := writeConfig(t, "")
	var calls atomic.Int32
	w, err := Watch(context.Background(), path, 10*time.Millisecond, func(*Config, error) {
		calls.Add(1)
	})
	require.NoError(t, err)

	other := filepath.Join(filepath.Dir(path), "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("x"), 0600))
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, w.Close())
	assert.Equal(t, int32(0), calls.Load())
}

func TestWatch_SkipsReloadWhileFileIsGone(t *testing.T) {
	defer goleak.VerifyNone(t)
	clearEnv(t)

	path := writeConfig(t, "[search]\ndelay_ms = 100\n")

	var (
		mu      sync.Mutex
		reloads []*Config
	)
	w, err := Watch(context.Background(), path, 10*time.Millisecond, func(cfg *Config, err error) {
		mu.Lock()
		defer mu.Unlock()
		reloads = append(reloads, cfg)
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.Rename(path, path+".bak"))
	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	assert.Empty(t, reloads, "a moved file must not reload the defaults")
	mu.Unlock()

	require.NoError(t, os.WriteFile(path, []byte("[search]\ndelay_ms = 7\n"), 0600))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		n := len(reloads)
		return n > 0 && reloads[n-1] != nil && reloads[n-1].Search.DelayMS == 7
	}, 3*time.Second, 10*time.Millisecond)
}

func TestWatch_StopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	w, err := Watch(ctx, writeConfig(t, ""), 0, nil)
	require.NoError(t, err)

	cancel()
	select {
	case <-w.done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
	require.NoError(t, w.Close())
}
