// Package utils holds small helpers shared by the passvault commands.
//
// # Prompts
//
// ReadLine, PromptLine and Confirm read answers from a *bufio.Reader so that
// commands can be driven from tests. ReadPassword reads a password from the
// terminal without echoing it.
//
// # Strings
//
// ParseIDs turns command line arguments into record ids and Pluralize picks
// the right noun for a count.
package utils
