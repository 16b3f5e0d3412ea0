// Package output handles file naming and writing for taskmd outputs.
// File inputs default to the input path with its extension replaced;
// URL inputs default to the last path segment of the URL.
package output

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Stdout is the destination name that selects standard output.
const Stdout = "-"

// defaultName is used when a URL has no usable last path segment.
const defaultName = "problem"

// Writer writes rendered output to disk or to Out.
type Writer struct {
	Out io.Writer
}

// New creates a Writer whose standard output is out (os.Stdout when nil).
func New(out io.Writer) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{Out: out}
}

// Write stores data at dest and returns where it went. An empty dest or
// "-" writes to standard output. Parent directories are created as needed.
func (w *Writer) Write(dest string, data []byte) (string, error) {
	if dest == "" || dest == Stdout {
		if _, err := w.Out.Write(data); err != nil {
			return "", fmt.Errorf("writing to stdout: %w", err)
		}
		return Stdout, nil
	}

	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", dest, err)
	}
	return dest, nil
}

// PathForFile replaces the extension of input with ext.
// Example: problems/abc001_a.html → problems/abc001_a.md
func PathForFile(input, ext string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}

// PathForURL derives a file name from the last path segment of rawURL,
// appending ext when the segment does not already end with it.
// Example: https://atcoder.jp/contests/abc419/tasks/abc419_e → abc419_e.md
func PathForURL(rawURL, ext string) string {
	p := rawURL
	if parsed, err := url.Parse(rawURL); err == nil {
		p = parsed.Path
	}

	p = strings.TrimRight(p, "/")
	name := p[strings.LastIndex(p, "/")+1:]
	if name == "" {
		name = defaultName
	}
	if !strings.HasSuffix(name, ext) {
		name += ext
	}
	return name
}
