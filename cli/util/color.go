package util

import (
	"github.com/fatih/color"
	"github.com/mgutz/ansi"
)

var (
	bold = ansi.ColorFunc("default+b")
)

// Bold makes the input string bold.
func Bold(s string) string {
	if color.NoColor {
		return s
	}
	return bold(s)
}

// Success highlights a message about successfully finished operation.
func Success(s string) string {
	return color.GreenString(s)
}
