// Copyright (c) Microsoft. All rights reserved.

package chat_test

import (
	"fmt"
	"testing"

	"github.com/jochenvw/azchat/chat"
)

func TestSessionAppendPreservesOrder(t *testing.T) {
	s := chat.NewSession()

	if s.ID() == "" {
		t.Fatal("session ID should not be empty")
	}

	const n = 7
	for i := 0; i < n; i++ {
		s.Append(chat.NewUserMessage(fmt.Sprintf("turn-%d", i)))
	}

	snap := s.Snapshot()
	if len(snap) != n {
		t.Fatalf("len = %d, want %d", len(snap), n)
	}
	for i, m := range snap {
		want := fmt.Sprintf("turn-%d", i)
		if m.Content != want {
			t.Errorf("[%d].Content = %q, want %q", i, m.Content, want)
		}
	}
}

func TestSessionSnapshotIsCopy(t *testing.T) {
	s := chat.NewSession()
	s.Append(chat.NewUserMessage("hello"))

	snap := s.Snapshot()
	snap[0] = chat.NewAssistantMessage("modified")

	if got := s.Snapshot()[0].Content; got != "hello" {
		t.Errorf("Snapshot should return a copy; got %q", got)
	}
}

func TestSessionSystemPromptSeed(t *testing.T) {
	s := chat.NewSession(chat.WithSystemPrompt("be terse"))

	snap := s.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("len = %d, want 1", len(snap))
	}
	if snap[0].Role != chat.RoleSystem {
		t.Errorf("role = %q, want system", snap[0].Role)
	}
	if snap[0].Content != "be terse" {
		t.Errorf("content = %q", snap[0].Content)
	}
}

func TestSessionClearKeepsSystemPrompt(t *testing.T) {
	s := chat.NewSession(chat.WithSystemPrompt("be terse"))
	s.Append(chat.NewUserMessage("hi"))
	s.Append(chat.NewAssistantMessage("hello"))

	s.Clear()

	snap := s.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("len after clear = %d, want 1", len(snap))
	}
	if snap[0].Role != chat.RoleSystem {
		t.Errorf("role = %q, want system", snap[0].Role)
	}

	// Clear is idempotent.
	s.Clear()
	if got := s.Len(); got != 1 {
		t.Errorf("len after second clear = %d, want 1", got)
	}
}

func TestSessionClearWithoutSystemPrompt(t *testing.T) {
	s := chat.NewSession()
	s.Append(chat.NewUserMessage("hi"))

	s.Clear()
	if got := s.Len(); got != 0 {
		t.Errorf("len after clear = %d, want 0", got)
	}

	s.Clear()
	if got := s.Len(); got != 0 {
		t.Errorf("len after second clear = %d, want 0", got)
	}
}
