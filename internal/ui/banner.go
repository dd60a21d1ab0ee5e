package ui

import (
	"strings"

	"github.com/common-nighthawk/go-figure"
)

const bannerFont = "small"

// Banner renders text as ASCII art for the greeting screen. It is colored
// like Info unless color is disabled.
func Banner(text string) string {
	art := strings.TrimRight(figure.NewFigure(text, bannerFont, true).String(), "\n ")
	if noColor() {
		return art
	}
	return Info.color.Sprint(art)
}
