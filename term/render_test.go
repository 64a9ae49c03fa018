// Copyright (c) Microsoft. All rights reserved.

package term_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jochenvw/azchat/chat"
	"github.com/jochenvw/azchat/term"
)

func TestStyleApply(t *testing.T) {
	got := term.StyleBoldCyan.Apply("You:")
	want := "\x1b[1;36mYou:\x1b[0m"
	if got != want {
		t.Errorf("Apply = %q, want %q", got, want)
	}

	if got := term.Style("").Apply("raw"); got != "raw" {
		t.Errorf("empty style = %q, want raw", got)
	}
}

func TestNamed(t *testing.T) {
	s, ok := term.Named("cyan")
	if !ok || s != term.StyleCyan {
		t.Errorf("Named(cyan) = %q, %v", s, ok)
	}
	if _, ok := term.Named("chartreuse"); ok {
		t.Error("unknown color should report ok=false")
	}
}

func TestStripANSI(t *testing.T) {
	styled := term.StyleBoldGreen.Apply("Assistant:") + " " + term.StyleGreen.Apply("hello")
	if got := term.StripANSI(styled); got != "Assistant: hello" {
		t.Errorf("StripANSI = %q", got)
	}
}

func renderAll(t *testing.T, color bool, fragments []string) string {
	t.Helper()
	var buf strings.Builder
	p := term.NewPrinter(&buf, color, term.DefaultTheme())

	stream := chat.NewResponseStream(context.Background(), func(ctx context.Context, ch chan<- chat.ChatResponseUpdate) error {
		for _, f := range fragments {
			ch <- chat.ChatResponseUpdate{Text: f}
		}
		return nil
	})
	defer stream.Close()

	p.AssistantPrefix("Assistant")
	resp, err := p.RenderStream(context.Background(), stream)
	if err != nil {
		t.Fatalf("RenderStream: %v", err)
	}
	if resp.Text() != strings.Join(fragments, "") {
		t.Errorf("folded = %q", resp.Text())
	}
	return buf.String()
}

// Color-disabled output must equal color-enabled output stripped of
// escape sequences, byte for byte.
func TestColorOffMatchesStrippedColorOn(t *testing.T) {
	fragments := []string{"Hel", "lo, ", "world", "!"}

	plain := renderAll(t, false, fragments)
	styled := renderAll(t, true, fragments)

	if term.StripANSI(styled) != plain {
		t.Errorf("stripped styled = %q, plain = %q", term.StripANSI(styled), plain)
	}
	if plain != "Assistant: Hello, world!\n" {
		t.Errorf("plain = %q", plain)
	}
}

func TestRenderStreamPartialOnError(t *testing.T) {
	var buf strings.Builder
	p := term.NewPrinter(&buf, false, term.DefaultTheme())

	stream := chat.NewResponseStream(context.Background(), func(ctx context.Context, ch chan<- chat.ChatResponseUpdate) error {
		ch <- chat.ChatResponseUpdate{Text: "partial "}
		ch <- chat.ChatResponseUpdate{Text: "output"}
		return chat.ErrNetwork
	})
	defer stream.Close()

	resp, err := p.RenderStream(context.Background(), stream)
	if err == nil {
		t.Fatal("expected mid-stream error")
	}
	// Fragments written before the failure stay rendered.
	if got := buf.String(); got != "partial output\n" {
		t.Errorf("rendered = %q", got)
	}
	if resp.Text() != "partial output" {
		t.Errorf("partial fold = %q", resp.Text())
	}
}
