// Package core defines the pipeline interfaces and shared types for taskmd.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"
	"fmt"
	"strings"
)

// Language selects which localized part of a problem statement is rendered.
type Language string

const (
	LanguageJA Language = "ja"
	LanguageEN Language = "en"
)

// DefaultLanguage is used when no language is requested.
const DefaultLanguage = LanguageJA

// ParseLanguage validates a language name. Empty input yields DefaultLanguage.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultLanguage, nil
	case LanguageJA:
		return LanguageJA, nil
	case LanguageEN:
		return LanguageEN, nil
	default:
		return "", fmt.Errorf("unsupported language %q (want ja or en)", s)
	}
}

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Limits holds the time and memory constraints of a problem.
// Both values are always set together.
type Limits struct {
	Time   string `json:"time" yaml:"time"`
	Memory string `json:"memory" yaml:"memory"`
}

// Problem is the structured result of parsing one statement page.
type Problem struct {
	Title    string
	Limits   *Limits
	Language Language
	Markdown string
}

// ProblemMetadata is handed to renderers alongside the Markdown body.
type ProblemMetadata struct {
	Source      string   `json:"source" yaml:"source,omitempty"`
	Title       string   `json:"title" yaml:"title,omitempty"`
	Language    Language `json:"language" yaml:"language"`
	TimeLimit   string   `json:"time_limit,omitempty" yaml:"time_limit,omitempty"`
	MemoryLimit string   `json:"memory_limit,omitempty" yaml:"memory_limit,omitempty"`
	ConvertedAt string   `json:"converted_at" yaml:"converted_at,omitempty"` // ISO8601
}

// Section represents a heading-delimited section of content.
type Section struct {
	Heading string `json:"heading"`
	Level   int    `json:"level"`
	Text    string `json:"text"`
}

// ProblemStructure holds structural counts parsed from the Markdown.
type ProblemStructure struct {
	Headings   int `json:"headings"`
	CodeBlocks int `json:"code_blocks"`
	ListItems  int `json:"list_items"`
	Variables  int `json:"variables"`
}

// ProblemJSON is the complete JSON output for a single problem.
type ProblemJSON struct {
	Metadata  ProblemMetadata  `json:"metadata"`
	Markdown  string           `json:"markdown"`
	Sections  []Section        `json:"sections"`
	Samples   []string         `json:"samples"`
	Structure ProblemStructure `json:"structure"`
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Renderer converts Markdown (and metadata) into a final output format.
type Renderer interface {
	Render(markdown string, meta ProblemMetadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".json").
	Extension() string
}

// Logger is the subset of the go-logger API the pipeline stages use.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
