// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"

	"github.com/jeranaias/webqa/internal/config"
	"github.com/jeranaias/webqa/internal/search"
)

// =============================================================================
// SEARCH MESSAGES
// =============================================================================

// SearchResultMsg reports the outcome of one resolve call.
type SearchResultMsg struct {
	RequestID string
	Result    search.Result
	Err       error
	At        time.Time
}

// =============================================================================
// CONFIG MESSAGES
// =============================================================================

// ConfigReloadedMsg is sent by the config watcher after the file changed.
// Err is set when the new file could not be loaded; Config is nil then.
type ConfigReloadedMsg struct {
	Config *config.Config
	// Provider is built from Config. Nil keeps the current provider.
	Provider search.Provider
	// Restart lists changed keys that only take effect on the next start.
	Restart []string
	Err     error
}
