// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/webqa/internal/config"
	"github.com/jeranaias/webqa/internal/ui/chat"
	"github.com/jeranaias/webqa/internal/ui/styles"
)

func newTUICommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the full-screen chat (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd)
		},
	}
}

// runTUI runs the Bubble Tea program until the user quits. Edits to the
// config file are pushed into the running program.
func (a *app) runTUI(cmd *cobra.Command) error {
	if err := a.setup(cmd); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	m := chat.New(chat.Options{
		Provider:       a.provider(),
		Theme:          styles.NewThemeWithMode(a.cfg.UI.Theme),
		ThemeMode:      a.cfg.UI.Theme,
		AutoDark:       lipgloss.HasDarkBackground(),
		Logger:         a.logger,
		Context:        ctx,
		ShowTimestamps: a.cfg.UI.ShowTimestamps,
		Markdown:       a.cfg.UI.Markdown,
		APIKey:         a.cfg.Settings.APIKey,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	w, err := config.Watch(ctx, a.configPath, config.DefaultWatchDebounce, func(cfg *config.Config, err error) {
		p.Send(a.reloadMsg(cfg, err))
	})
	if err != nil {
		a.logger.Warn("config watch disabled", zap.String("path", a.configPath), zap.Error(err))
	} else {
		defer w.Close()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	a.logger.Info("webqa exiting")
	return nil
}

// reloadMsg turns a watcher result into the message the chat applies. The
// flags are laid over the new file and the search stack is rebuilt from it.
// Log settings and the API key seed only take effect on the next start.
func (a *app) reloadMsg(cfg *config.Config, err error) chat.ConfigReloadedMsg {
	if err != nil {
		return chat.ConfigReloadedMsg{Err: err}
	}
	if err := a.applyFlags(cfg); err != nil {
		return chat.ConfigReloadedMsg{Err: err}
	}

	var restart []string
	if cfg.Log != a.cfg.Log {
		restart = append(restart, "log")
	}
	if cfg.Settings.APIKey != a.cfg.Settings.APIKey {
		restart = append(restart, "settings.api_key")
	}
	return chat.ConfigReloadedMsg{
		Config:   cfg,
		Provider: a.providerFor(cfg),
		Restart:  restart,
	}
}
