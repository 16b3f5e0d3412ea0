// Package render — JSON renderer.
// Builds the structured JSON output from Markdown and problem metadata.
// The Markdown is parsed with goldmark to collect headings, sample code
// blocks, list items and inline math variables.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/gaurav-prasanna/taskmd/core"
)

// JSONRenderer produces structured JSON output from Markdown.
type JSONRenderer struct {
	md goldmark.Markdown
}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{md: goldmark.New()}
}

// Render converts Markdown and metadata into the JSON document.
func (r *JSONRenderer) Render(markdown string, meta core.ProblemMetadata) ([]byte, error) {
	source := []byte(markdown)
	doc := r.md.Parser().Parse(text.NewReader(source))

	page := core.ProblemJSON{
		Metadata: meta,
		Markdown: markdown,
		Sections: []core.Section{},
		Samples:  []string{},
	}

	var current *core.Section
	var sectionText bytes.Buffer
	flush := func() {
		if current != nil {
			current.Text = strings.TrimSpace(sectionText.String())
			page.Sections = append(page.Sections, *current)
		}
		sectionText.Reset()
	}

	// Top-level blocks delimit sections; the walk below counts structure.
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			flush()
			current = &core.Section{Heading: plainText(h, source), Level: h.Level}
			continue
		}
		if current != nil {
			sectionText.WriteString(blockText(n, source))
			sectionText.WriteString("\n\n")
		}
	}
	flush()

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			page.Structure.Headings++
		case *ast.FencedCodeBlock:
			page.Structure.CodeBlocks++
			page.Samples = append(page.Samples, strings.TrimSuffix(linesText(node, source), "\n"))
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			page.Structure.ListItems++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking markdown: %w", err)
	}
	page.Structure.Variables = len(variableRegex.FindAllString(markdown, -1))

	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// --- Markdown AST helpers ---

// variableRegex matches inline math produced from <var> elements.
var variableRegex = regexp.MustCompile(`\$[^$\n]+\$`)

// plainText concatenates the text segments below n.
func plainText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// linesText returns the raw source lines of a leaf block.
func linesText(n ast.Node, source []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}

// blockText renders a top-level block back to readable text.
func blockText(n ast.Node, source []byte) string {
	switch node := n.(type) {
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return "```\n" + linesText(node, source) + "```"
	case *ast.Paragraph, *ast.TextBlock:
		return strings.TrimSpace(linesText(node, source))
	case *ast.List:
		var lines []string
		listText(node, source, "", &lines)
		return strings.Join(lines, "\n")
	default:
		return strings.TrimSpace(plainText(n, source))
	}
}

// listText writes one "- item" line per list item, indenting nested lists
// by two spaces.
func listText(list *ast.List, source []byte, indent string, lines *[]string) {
	for li := list.FirstChild(); li != nil; li = li.NextSibling() {
		for c := li.FirstChild(); c != nil; c = c.NextSibling() {
			if nested, ok := c.(*ast.List); ok {
				listText(nested, source, indent+"  ", lines)
				continue
			}
			*lines = append(*lines, indent+"- "+blockText(c, source))
		}
	}
}
