package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{`  _____           _`, "#818cf8"},
	{` |_   _|  _ _ _ _(_)_ _  __ _`, "#a78bfa"},
	{`   | || || | '_| | ' \/ _` + "`" + ` |`, "#c084fc"},
	{`   |_| \_,_|_| |_|_||_\__, |`, "#e879f9"},
	{`                      |___/`, "#f472b6"},
}

// PrintBanner outputs the ASCII art banner followed by the version.
// Colours degrade to plain text when w is not a terminal.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)

	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  v"+version).Faint())
	fmt.Fprintln(w)
}

// HeadStyler returns a cell styler that renders the head cell in reverse video on w.
// On non-terminals the cell is returned unchanged.
func HeadStyler(w io.Writer) func(string) string {
	out := termenv.NewOutput(w)
	return func(cell string) string {
		return out.String(cell).Reverse().Bold().String()
	}
}
