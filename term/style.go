// Copyright (c) Microsoft. All rights reserved.

// Package term renders chat output to a terminal with optional ANSI
// styling. With color disabled every write degrades to the raw text,
// so the plain output equals the styled output minus escape sequences.
package term

import "regexp"

// Style is an SGR parameter list, e.g. "1;36" for bold cyan.
// The empty Style renders text unchanged.
type Style string

const (
	StyleBold        Style = "1"
	StyleBoldDim     Style = "1;2"
	StyleCyan        Style = "36"
	StyleGreen       Style = "32"
	StyleMagenta     Style = "35"
	StyleBoldCyan    Style = "1;36"
	StyleBoldGreen   Style = "1;32"
	StyleBoldMagenta Style = "1;35"
)

// Apply wraps text in the style's escape sequence followed by a reset.
func (s Style) Apply(text string) string {
	if s == "" {
		return text
	}
	return "\x1b[" + string(s) + "m" + text + "\x1b[0m"
}

// Named maps a color name from configuration to a Style. Unknown names
// report ok=false so callers can keep their theme default.
func Named(name string) (Style, bool) {
	switch name {
	case "black":
		return "30", true
	case "red":
		return "31", true
	case "green":
		return StyleGreen, true
	case "yellow":
		return "33", true
	case "blue":
		return "34", true
	case "magenta":
		return StyleMagenta, true
	case "cyan":
		return StyleCyan, true
	case "white":
		return "37", true
	}
	return "", false
}

// Theme maps chat roles to display styles.
type Theme struct {
	UserPrefix      Style
	AssistantPrefix Style
	AssistantText   Style
	SystemPrefix    Style
	Meta            Style
}

// DefaultTheme returns the standard theme: cyan user prefix, green
// assistant, magenta system, dim meta text.
func DefaultTheme() Theme {
	return Theme{
		UserPrefix:      StyleBoldCyan,
		AssistantPrefix: StyleBoldGreen,
		AssistantText:   StyleGreen,
		SystemPrefix:    StyleBoldMagenta,
		Meta:            StyleBoldDim,
	}
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes SGR escape sequences from s.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
