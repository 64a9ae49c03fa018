// Copyright (c) Microsoft. All rights reserved.

// Package cli implements the one-shot and interactive front ends of the
// chat client: reading input lines, interpreting meta-commands, running
// chat turns and rendering the replies.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jochenvw/azchat/chat"
	"github.com/jochenvw/azchat/config"
	"github.com/jochenvw/azchat/telemetry"
	"github.com/jochenvw/azchat/term"
)

// App wires configuration, transport, session state and rendering.
type App struct {
	Config    *config.Config
	Client    chat.ChatClient
	Telemetry *telemetry.Telemetry // optional; nil records nothing

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// theme builds the display theme, applying per-role overrides from
// configuration.
func (a *App) theme() term.Theme {
	th := term.DefaultTheme()
	if s, ok := term.Named(a.Config.UserColor); ok {
		th.UserPrefix = term.StyleBold + ";" + s
	}
	if s, ok := term.Named(a.Config.AssistantColor); ok {
		th.AssistantPrefix = term.StyleBold + ";" + s
		th.AssistantText = s
	}
	return th
}

// OneShot sends a single prompt and prints only the final assistant
// text, unstyled. The session is discarded afterwards.
func (a *App) OneShot(ctx context.Context, prompt string, streaming bool) error {
	session := chat.NewSession(chat.WithSystemPrompt(a.Config.SystemPrompt))
	session.Append(chat.NewUserMessage(prompt))

	printer := term.NewPrinter(a.Out, false, term.DefaultTheme())
	_, err := a.turn(ctx, session, printer, streaming)
	return err
}

// Interactive runs the REPL until /exit, /quit, EOF, or cancellation.
// Transport errors are reported and the loop continues; only the error
// from reading input terminates it abnormally.
func (a *App) Interactive(ctx context.Context, streaming bool) error {
	session := chat.NewSession(chat.WithSystemPrompt(a.Config.SystemPrompt))
	printer := term.NewPrinter(a.Out, a.Config.Color, a.theme())

	printer.Meta("Type your message. Commands: /exit, /quit, /clear")

	scanner := bufio.NewScanner(a.In)
	for {
		printer.UserPrompt(a.Config.UserName)
		if !scanner.Scan() {
			printer.Newline()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch ParseCommand(line) {
		case CmdExit:
			return nil
		case CmdClear:
			session.Clear()
			printer.Meta("History cleared.")
			continue
		}

		session.Append(chat.NewUserMessage(line))
		printer.AssistantPrefix(a.Config.AssistantName)

		if _, err := a.turn(ctx, session, printer, streaming); err != nil {
			if ctx.Err() != nil {
				printer.Meta("Interrupted.")
				return nil
			}
			fmt.Fprintf(a.Err, "error (%s): %v\n", chat.Category(err), err)
			continue
		}
	}
	return scanner.Err()
}

// turn issues one request for the session's current history, renders
// the reply, and appends the assistant message on success. On failure
// nothing is appended; streamed text already rendered stays on screen.
func (a *App) turn(ctx context.Context, session *chat.Session, printer *term.Printer, streaming bool) (*chat.ChatResponse, error) {
	ctx, done := a.Telemetry.StartTurn(ctx, streaming)

	var resp *chat.ChatResponse
	var err error
	if streaming {
		var stream *chat.ResponseStream[chat.ChatResponseUpdate]
		stream, err = a.Client.StreamResponse(ctx, session.Snapshot())
		if err == nil {
			defer stream.Close()
			resp, err = printer.RenderStream(ctx, stream)
		}
	} else {
		resp, err = a.Client.Response(ctx, session.Snapshot())
		if err == nil {
			printer.AssistantLine(resp.Text())
		}
	}

	if err != nil {
		done(chat.Usage{}, err)
		return nil, err
	}

	msg := resp.Message
	if msg.Role == "" {
		msg.Role = chat.RoleAssistant
	}
	session.Append(msg)

	done(resp.Usage, nil)
	return resp, nil
}
