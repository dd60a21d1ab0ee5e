package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter renders one kind of CLI text. Without color it falls back to
// plain decorations so the meaning survives.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

func (f Formatter) Sprint(a ...any) string {
	return f.render(fmt.Sprint(a...))
}

func (f Formatter) Sprintf(format string, a ...any) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// EnsureNewline appends a newline unless s already ends with one.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// noColor honours NO_COLOR (https://no-color.org/) as well as fatih/color's
// own terminal detection.
func noColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	return color.NoColor
}

var (
	// Code formats commands to run: `passvault add`.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path formats the key file, database and config locations.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Flag formats CLI flags such as --show.
	Flag = Formatter{color.New(color.FgYellow), "", ""}

	Success = Formatter{color.New(color.FgGreen), "", ""}
	Error   = Formatter{color.New(color.FgRed), "", ""}
	Warning = Formatter{color.New(color.FgYellow), "", ""}
	Info    = Formatter{color.New(color.FgCyan), "", ""}

	// Highlight formats services and logins.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	// Secret formats a revealed password.
	Secret = Formatter{color.New(color.FgMagenta, color.Bold), "", ""}

	// Muted formats secondary details such as record ids and timestamps.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)
