// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"

	"github.com/jeranaias/webqa/internal/model"
	"github.com/jeranaias/webqa/internal/ui/components"
)

// answerPrinter writes assistant messages in line mode. Markdown is only
// rendered when the writer is a terminal so piped output stays plain.
type answerPrinter struct {
	out      io.Writer
	styles   cliStyles
	markdown *components.MarkdownRenderer
	width    int
}

func newAnswerPrinter(out io.Writer, markdown bool) *answerPrinter {
	p := &answerPrinter{
		out:    out,
		styles: newCLIStyles(out),
		width:  terminalWidth(out),
	}
	if markdown && isTerminalWriter(out) {
		p.markdown = components.NewMarkdownRenderer("")
	}
	return p
}

// Print writes msg followed by its sources.
func (p *answerPrinter) Print(msg model.Message) {
	if msg.IsError {
		fmt.Fprintln(p.out, p.styles.Error.Render(msg.Content))
		return
	}

	body := msg.Content
	if p.markdown != nil {
		body = p.markdown.Render(body, p.width)
	} else {
		body = p.styles.Answer.Render(body)
	}
	fmt.Fprintln(p.out, body)

	if !msg.HasSources() {
		return
	}
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.styles.Label.Render(components.SourcesTitle))
	for _, src := range msg.Sources {
		fmt.Fprintf(p.out, "%s %s\n", components.SourceBullet, p.styles.Source.Render(src))
	}
}
