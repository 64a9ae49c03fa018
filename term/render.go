// Copyright (c) Microsoft. All rights reserved.

package term

import (
	"context"
	"fmt"
	"io"

	"github.com/jochenvw/azchat/chat"
)

// Printer writes styled chat output to a terminal. With color disabled
// all styling is a no-op and raw text is written unchanged.
type Printer struct {
	w     io.Writer
	color bool
	theme Theme
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer, color bool, theme Theme) *Printer {
	return &Printer{w: w, color: color, theme: theme}
}

func (p *Printer) write(text string, s Style) {
	if p.color {
		text = s.Apply(text)
	}
	fmt.Fprint(p.w, text)
}

// Meta writes an informational line (banners, notices).
func (p *Printer) Meta(text string) {
	p.write(text, p.theme.Meta)
	fmt.Fprintln(p.w)
}

// UserPrompt writes the user input prompt, e.g. "You: ", without a
// trailing newline.
func (p *Printer) UserPrompt(name string) {
	p.write(name+":", p.theme.UserPrefix)
	fmt.Fprint(p.w, " ")
}

// AssistantPrefix writes the assistant display-name prefix without a
// trailing newline.
func (p *Printer) AssistantPrefix(name string) {
	p.write(name+":", p.theme.AssistantPrefix)
	fmt.Fprint(p.w, " ")
}

// Fragment writes one streamed fragment of assistant text.
func (p *Printer) Fragment(text string) {
	p.write(text, p.theme.AssistantText)
}

// AssistantLine writes a complete assistant reply followed by a newline.
func (p *Printer) AssistantLine(text string) {
	p.write(text, p.theme.AssistantText)
	fmt.Fprintln(p.w)
}

// Newline terminates the current output line.
func (p *Printer) Newline() {
	fmt.Fprintln(p.w)
}

// RenderStream consumes a fragment stream, writing each fragment as it
// arrives, and folds the fragments into the complete response once the
// stream is exhausted. Fragments written before a mid-stream failure
// stay on screen; the partial fold is returned alongside the error.
func (p *Printer) RenderStream(ctx context.Context, stream *chat.ResponseStream[chat.ChatResponseUpdate]) (*chat.ChatResponse, error) {
	var updates []chat.ChatResponseUpdate
	for {
		u, ok, err := stream.Next(ctx)
		if err != nil {
			p.Newline()
			return chat.ChatResponseFromUpdates(updates), err
		}
		if !ok {
			break
		}
		updates = append(updates, u)
		if u.Text != "" {
			p.Fragment(u.Text)
		}
	}
	p.Newline()
	return chat.ChatResponseFromUpdates(updates), nil
}
