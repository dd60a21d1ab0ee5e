package ui

import "strings"

const (
	maskRune  = "•"
	maskWidth = 8
)

// Mask hides a password. The output has a fixed width so it does not leak
// the password length.
func Mask(password string) string {
	if password == "" {
		return ""
	}
	return strings.Repeat(maskRune, maskWidth)
}

// Unreadable is shown in place of a password that cannot be decrypted.
func Unreadable() string {
	return Error.Sprint("<unreadable>")
}
