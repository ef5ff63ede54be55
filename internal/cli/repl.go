// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/webqa/internal/config"
	"github.com/jeranaias/webqa/internal/conversation"
	"github.com/jeranaias/webqa/internal/model"
	"github.com/jeranaias/webqa/internal/search"
)

const replPrompt = "webqa> "

const answerPreviewRunes = 40

const replHelp = `Type a question and press Enter.
  /clear   start over
  /help    show this help
  /quit    exit (or Ctrl+D)
Ctrl+C cancels a running search.`

func newREPLCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "repl",
		Aliases: []string{"chat"},
		Short:   "Chat in line mode with input history",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			if !IsTTY() {
				return errors.New("stdin is not a terminal; use 'webqa ask' for piped input")
			}

			in := newLinerInput()
			defer in.Close()

			r := &repl{
				in:       in,
				out:      cmd.OutOrStdout(),
				provider: a.provider(),
				logger:   a.logger,
				markdown: a.cfg.UI.Markdown,
			}
			return r.Run(cmd.Context())
		},
	}
}

// =============================================================================
// LINE INPUT
// =============================================================================

// lineInput is the part of liner the REPL needs.
type lineInput interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// linerInput wraps liner with a history file in the config directory.
type linerInput struct {
	*liner.State
	historyFile string
}

func newLinerInput() *linerInput {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	dir, err := config.ConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	in := &linerInput{State: line, historyFile: filepath.Join(dir, "repl_history")}

	if f, err := os.Open(in.historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
	return in
}

// Close saves history and restores the terminal.
func (in *linerInput) Close() error {
	if err := os.MkdirAll(filepath.Dir(in.historyFile), 0700); err == nil {
		if f, err := os.OpenFile(in.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err == nil {
			_, _ = in.State.WriteHistory(f)
			f.Close()
		}
	}
	return in.State.Close()
}

// =============================================================================
// REPL LOOP
// =============================================================================

type repl struct {
	in       lineInput
	out      io.Writer
	provider search.Provider
	logger   *zap.Logger
	markdown bool
}

// Run reads questions until EOF, Ctrl+C at the prompt, or /quit.
func (r *repl) Run(ctx context.Context) error {
	printer := newAnswerPrinter(r.out, r.markdown)
	st := conversation.NewState(time.Now())
	defer func() {
		r.logger.Debug("repl session ended",
			zap.Int("questions", st.Conversation.CountByRole(model.RoleUser)),
			zap.Int("answers", st.Conversation.CountByRole(model.RoleAssistant)))
	}()

	if greeting, ok := st.LastAnswer(); ok {
		printer.Print(greeting)
	}

	for {
		input, err := r.in.Prompt(printer.styles.Prompt.Render(replPrompt))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out)
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		r.in.AppendHistory(input)

		switch input {
		case "/quit", "/exit":
			return nil
		case "/help":
			fmt.Fprintln(r.out, printer.styles.Muted.Render(replHelp))
			continue
		case "/clear":
			st, _ = conversation.Update(st, conversation.Clear{At: time.Now()})
			greeting, _ := st.LastAnswer()
			printer.Print(greeting)
			continue
		}

		st, err = r.ask(ctx, st, input)
		switch {
		case err == nil:
			answer, _ := st.LastAnswer()
			r.logger.Debug("repl answer", zap.String("preview", answer.Preview(answerPreviewRunes)))
			printer.Print(answer)
		case search.IsCanceled(err):
			fmt.Fprintln(r.out, printer.styles.Muted.Render("[Canceled]"))
		default:
			r.logger.Debug("repl search failed", zap.Error(err))
			answer, _ := st.LastAnswer()
			printer.Print(answer)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// ask runs one question. Ctrl+C while it runs cancels only this question.
func (r *repl) ask(ctx context.Context, st conversation.State, query string) (conversation.State, error) {
	qctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	return conversation.Ask(qctx, r.provider, st, query)
}
