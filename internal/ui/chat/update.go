// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/webqa/internal/conversation"
	"github.com/jeranaias/webqa/internal/search"
	"github.com/jeranaias/webqa/internal/ui/styles"
)

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// ResolveCmd runs one search and reports back with a SearchResultMsg.
func ResolveCmd(ctx context.Context, p search.Provider, req conversation.Resolve) tea.Cmd {
	return func() tea.Msg {
		res, err := p.Resolve(ctx, req.Query)
		return SearchResultMsg{
			RequestID: req.RequestID,
			Result:    res,
			Err:       err,
			At:        time.Now(),
		}
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// Only mouse events reach the viewport; its key bindings would
		// steal letters from the text fields.
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case SearchResultMsg:
		return m.handleSearchResult(msg)

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.loading.Frame = m.spinner.View()
		return m, cmd
	}

	// Cursor blink and other field internals.
	return m.updateFocused(msg)
}

// =============================================================================
// MESSAGE HANDLERS
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layout()
	m.refreshContent(false)
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.cancelMgr.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Settings):
		return m.toggleSettings()

	case key.Matches(msg, m.keyMap.Focus):
		if !m.state.SettingsOpen {
			return m, nil
		}
		if m.focus == focusAPIKey {
			return m.focusField(focusQuery)
		}
		return m.focusField(focusAPIKey)

	case key.Matches(msg, m.keyMap.Cancel):
		if m.state.Loading {
			m.logger.Info("search canceled by user", zap.String("request_id", m.state.RequestID))
			m.setStatus("Search canceled.", false)
			return m.dispatch(conversation.Cancel{})
		}
		if m.state.SettingsOpen {
			return m.toggleSettings()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Clear):
		m.setStatus("", false)
		return m.dispatch(conversation.Clear{At: time.Now()})

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.ViewDown()
		return m, nil

	case key.Matches(msg, m.keyMap.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		if m.focus == focusAPIKey {
			return m.focusField(focusQuery)
		}
		if !m.state.CanSubmit() {
			return m, nil
		}
		m.setStatus("", false)
		sub := conversation.NewSubmit(m.state.Input)
		m.logger.Debug("query submitted",
			zap.String("request_id", sub.RequestID),
			zap.Int("query_len", len(sub.Query)),
		)
		return m.dispatch(sub)
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused text field and mirrors its value
// into the conversation state.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusAPIKey {
		m.apiKey, cmd = m.apiKey.Update(msg)
		if v := m.apiKey.Value(); v != m.state.APIKey {
			m.state, _ = conversation.Update(m.state, conversation.APIKeyChanged{Key: v})
		}
		m.syncComponents()
		return m, cmd
	}

	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.state.Input {
		m.state, _ = conversation.Update(m.state, conversation.InputChanged{Text: v})
	}
	m.syncComponents()
	return m, cmd
}

func (m Model) handleSearchResult(msg SearchResultMsg) (tea.Model, tea.Cmd) {
	m.cancelMgr.release(msg.RequestID)

	if msg.RequestID != m.state.RequestID {
		m.logger.Debug("stale search result dropped", zap.String("request_id", msg.RequestID))
		return m, nil
	}

	if msg.Err != nil {
		if !search.IsCanceled(msg.Err) {
			m.setStatus(msg.Err.Error(), true)
		}
		return m.dispatch(conversation.Failed{RequestID: msg.RequestID, Err: msg.Err, At: msg.At})
	}
	return m.dispatch(conversation.Resolved{RequestID: msg.RequestID, Result: msg.Result, At: msg.At})
}

func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("config reload failed", zap.Error(msg.Err))
		m.setStatus("Config reload failed: "+msg.Err.Error(), true)
		m.layout()
		return m, nil
	}
	if msg.Config == nil {
		return m, nil
	}

	if msg.Provider != nil {
		// A search already running finishes on the old provider.
		m.provider = msg.Provider
	}
	if mode := msg.Config.UI.Theme; mode != m.themeMode {
		m.themeMode = mode
		m.applyTheme(styles.NewThemeForReload(mode, m.autoDark))
	}
	m.showTimestamps = msg.Config.UI.ShowTimestamps
	if msg.Config.UI.Markdown != m.useMarkdown {
		m.setMarkdown(msg.Config.UI.Markdown)
	}

	m.logger.Info("config reloaded",
		zap.Bool("provider_swapped", msg.Provider != nil),
		zap.String("theme", m.themeMode),
		zap.Strings("needs_restart", msg.Restart),
	)
	status := "Config reloaded."
	if len(msg.Restart) > 0 {
		status += " Restart to apply: " + strings.Join(msg.Restart, ", ") + "."
	}
	m.setStatus(status, false)
	m.layout()
	m.refreshContent(true)
	return m, nil
}

// =============================================================================
// STATE TRANSITIONS
// =============================================================================

// dispatch runs ev through the conversation reducer and carries out the
// effect it asks for.
func (m Model) dispatch(ev conversation.Event) (tea.Model, tea.Cmd) {
	next, effect := conversation.Update(m.state, ev)
	m.state = next

	var cmds []tea.Cmd
	switch eff := effect.(type) {
	case conversation.Resolve:
		ctx, cancel := context.WithCancel(m.ctx)
		m.cancelMgr.set(eff.RequestID, cancel)
		cmds = append(cmds, ResolveCmd(ctx, m.provider, eff), m.spinner.Tick)
	case conversation.CancelRequest:
		m.cancelMgr.cancel()
	}

	cmds = append(cmds, m.syncFocus())
	m.syncComponents()
	m.layout()
	m.refreshContent(false)
	return m, tea.Batch(cmds...)
}

func (m Model) toggleSettings() (tea.Model, tea.Cmd) {
	m.state, _ = conversation.Update(m.state, conversation.ToggleSettings{})
	if m.state.SettingsOpen {
		return m.focusField(focusAPIKey)
	}
	return m.focusField(focusQuery)
}

func (m Model) focusField(f focus) (tea.Model, tea.Cmd) {
	m.focus = f
	cmd := m.syncFocus()
	m.syncComponents()
	m.layout()
	return m, cmd
}

// syncFocus makes the text fields follow the focus and loading state. The
// query field is blurred while a search runs so typing is ignored.
func (m *Model) syncFocus() tea.Cmd {
	if m.input.Value() != m.state.Input {
		m.input.SetValue(m.state.Input)
	}

	if m.focus == focusAPIKey && m.state.SettingsOpen {
		m.input.Blur()
		if !m.apiKey.Focused() {
			return m.apiKey.Focus()
		}
		return nil
	}

	m.focus = focusQuery
	m.apiKey.Blur()
	if m.state.InputDisabled() {
		m.input.Blur()
		return nil
	}
	if !m.input.Focused() {
		return m.input.Focus()
	}
	return nil
}

// syncComponents copies the current state into the stateless components.
func (m *Model) syncComponents() {
	m.inputBar.Field = m.input.View()
	m.inputBar.Disabled = m.state.InputDisabled()
	m.inputBar.CanSubmit = m.state.CanSubmit()

	m.settings.Field = m.apiKey.View()
	m.settings.Focused = m.focus == focusAPIKey

	if !m.state.Loading {
		m.loading.Frame = ""
	} else if m.loading.Frame == "" {
		m.loading.Frame = m.spinner.View()
	}

	m.footer.Help = m.help.View(m.keyMap.ForContext(m.helpContext()))
}

func (m *Model) setStatus(text string, isError bool) {
	m.statusMsg = text
	m.statusIsError = isError
	m.footer.Status = text
	m.footer.StatusIsError = isError
}
