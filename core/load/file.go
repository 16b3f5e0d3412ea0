// Package load reads problem pages from disk.
package load

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
)

// ErrNotFound is returned when the input file does not exist.
var ErrNotFound = errors.New("file not found")

var urlPattern = regexp.MustCompile(`^https?://`)

// IsURL reports whether input should be fetched over HTTP(S).
func IsURL(input string) bool {
	return urlPattern.MatchString(input)
}

// ReadFile returns the UTF-8 contents of path.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: '%s'", ErrNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
