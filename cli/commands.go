// Copyright (c) Microsoft. All rights reserved.

package cli

// Command is an interactive meta-command recognized by the REPL.
type Command int

const (
	// CmdNone marks input that is not a command; it is forwarded to the
	// backend as chat content. This includes unrecognized slash-prefixed
	// input such as "/foobar".
	CmdNone Command = iota

	// CmdExit terminates the interactive loop.
	CmdExit

	// CmdClear resets the session history and keeps the loop running.
	CmdClear
)

// ParseCommand classifies one line of interactive input. Matching is
// exact and case-sensitive.
func ParseCommand(line string) Command {
	switch line {
	case "/exit", "/quit":
		return CmdExit
	case "/clear":
		return CmdClear
	}
	return CmdNone
}
