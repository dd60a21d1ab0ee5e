package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIDs parses record ids given on the command line. Each argument may
// hold several ids separated by commas.
func ParseIDs(args []string) ([]int64, error) {
	var ids []int64
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			id, err := strconv.ParseInt(field, 10, 64)
			if err != nil || id <= 0 {
				return nil, fmt.Errorf("invalid record id %q", field)
			}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no record id given")
	}
	return ids, nil
}

// Pluralize returns singular when n is 1 and plural otherwise.
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
