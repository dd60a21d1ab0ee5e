package utils

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadLine reads one line from r without its line ending. A final line
// without a newline is returned as is; io.EOF is only returned when
// nothing was read.
func ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// PromptLine writes prompt to w and reads the answer from r. An empty answer
// yields defaultValue.
func PromptLine(r *bufio.Reader, w io.Writer, prompt, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(w, "%s [%s]: ", prompt, defaultValue)
	} else {
		fmt.Fprintf(w, "%s: ", prompt)
	}

	input, err := ReadLine(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return defaultValue, nil
	}
	return input, nil
}

// Confirm asks a yes/no question that defaults to no.
func Confirm(r *bufio.Reader, w io.Writer, prompt string) bool {
	fmt.Fprintf(w, "%s [y/N]: ", prompt)
	response, err := ReadLine(r)
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
