// Package textutil provides small text helpers for terminal output.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// SanitizeTerminal replaces control characters that could break terminal
// layout or smuggle escape sequences into the output.
func SanitizeTerminal(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return ' '
		}
		return r
	}, s)
}

// Truncate shortens s to fit within maxWidth terminal cells. Uses
// runewidth so full-width characters (CJK, emoji) that occupy two cells
// are accounted for.
func Truncate(s string, maxWidth int) string {
	s = SanitizeTerminal(s)
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}
