// Package render provides output renderers for the taskmd pipeline.
// This file implements the Markdown renderer: the converted Markdown as-is,
// optionally preceded by a YAML front matter block.
package render

import (
	"bytes"
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/gaurav-prasanna/taskmd/core"
)

// MarkdownRenderer writes Markdown as-is. It's the simplest renderer
// since Markdown is already the canonical pipeline format.
type MarkdownRenderer struct {
	// FrontMatter prepends a "---" delimited YAML block with the metadata.
	FrontMatter bool
}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer(frontMatter bool) *MarkdownRenderer {
	return &MarkdownRenderer{FrontMatter: frontMatter}
}

// Render returns the Markdown as bytes.
func (r *MarkdownRenderer) Render(markdown string, meta core.ProblemMetadata) ([]byte, error) {
	if !r.FrontMatter {
		return []byte(markdown), nil
	}

	fm, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshaling front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(fm)
	buf.WriteString("---\n\n")
	buf.WriteString(markdown)
	return buf.Bytes(), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
