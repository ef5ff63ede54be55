// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeranaias/webqa/internal/conversation"
)

// errNoAnswer is returned when a search ends without an answer, which only
// happens on cancellation.
var errNoAnswer = errors.New("no answer")

func newAskCommand(a *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "ask QUESTION...",
		Short: "Answer a single question",
		Example: `  webqa ask "What's the weather today?"
  webqa ask --delay 0 latest tech news`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return a.ask(ctx, cmd.OutOrStdout(), strings.Join(args, " "), a.markdownFor(plain))
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "never render markdown, even when ui.markdown is on")
	return cmd
}

// markdownFor reports whether answers go through glamour: only when the
// config asks for it and --plain was not given.
func (a *app) markdownFor(plain bool) bool {
	return a.cfg.UI.Markdown && !plain
}

// ask runs one question through the conversation controller and prints the
// answer with its sources.
func (a *app) ask(ctx context.Context, out io.Writer, query string, markdown bool) error {
	if strings.TrimSpace(query) == "" {
		return errors.New("question is empty")
	}

	st := conversation.NewState(time.Now())
	st, err := conversation.Ask(ctx, a.provider(), st, query)
	if err != nil {
		return err
	}

	msg, ok := st.LastAnswer()
	if !ok || msg.ID == conversation.GreetingID {
		return errNoAnswer
	}
	newAnswerPrinter(out, markdown).Print(msg)
	return nil
}
