package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the Braid ASCII banner with a teal-to-violet fade.
func PrintBanner() {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"  _                 _     _ ", "#2dd4bf"},
		{" | |__  _ __ __ _  (_) __| |", "#22d3ee"},
		{" | '_ \\| '__/ _` | | |/ _` |", "#60a5fa"},
		{" | |_) | | | (_| | | | (_| |", "#818cf8"},
		{" |_.__/|_|  \\__,_| |_|\\__,_|", "#a78bfa"},
	}

	fmt.Println()
	for _, ln := range lines {
		fmt.Println(termenv.String(ln.text).Foreground(p.Color(ln.color)))
	}
	fmt.Println()
}
