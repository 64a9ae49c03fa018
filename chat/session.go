// Copyright (c) Microsoft. All rights reserved.

package chat

import (
	"crypto/rand"
	"fmt"
	"sync"
)

// Session holds the ordered conversation history for one program run.
// It is optionally seeded with a system message; [Session.Clear] resets
// the history back to that seed. History only ever grows by appending —
// no truncation or summarization is performed.
type Session struct {
	mu       sync.Mutex
	id       string
	system   string
	messages []Message
}

// SessionOption configures a [Session].
type SessionOption func(*Session)

// WithSystemPrompt seeds the session with a system message. An empty
// prompt leaves the session unseeded.
func WithSystemPrompt(prompt string) SessionOption {
	return func(s *Session) {
		s.system = prompt
	}
}

// NewSession creates a Session with a generated ID.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		id: newUUID(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.system != "" {
		s.messages = []Message{NewSystemMessage(s.system)}
	}
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Append adds a message to the end of the history.
func (s *Session) Append(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// Clear resets the history to the initial system message, if any.
// Clearing an already-cleared session is a no-op.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.system != "" {
		s.messages = []Message{NewSystemMessage(s.system)}
		return
	}
	s.messages = nil
}

// Snapshot returns a copy of the current history in order, suitable
// for use as a request payload. Mutating the returned slice does not
// affect the session.
func (s *Session) Snapshot() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]Message, len(s.messages))
	copy(cp, s.messages)
	return cp
}

// Len returns the number of messages currently in the history.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

func newUUID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	b[8] = (b[8] & 0x3f) | 0x80 // variant 10
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}
