// Package ui formats text for the passvault CLI.
//
// Each formatter names a kind of content rather than a color:
//
//	ui.Code.Sprint("passvault add")          // commands
//	ui.Path.Sprint("~/.local/share/passvault") // file locations
//	ui.Highlight.Sprint("github")            // services and logins
//	ui.Secret.Sprint(password)               // revealed passwords
//	ui.Muted.Sprint("#12")                   // secondary details
//
// When NO_COLOR is set or the terminal cannot show colors, Code falls back
// to `backticks`, Highlight to 'quotes' and Muted to (parentheses). The
// other formatters print the text unchanged.
//
// Mask replaces a password with a fixed-width placeholder and Banner draws
// the greeting banner with go-figure.
package ui
