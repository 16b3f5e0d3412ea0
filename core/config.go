package core

import (
	"fmt"
	"time"
)

// Output formats understood by the render stage.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Config holds the resolved settings for one conversion run.
type Config struct {
	// Language selects the localized statement (default ja).
	Language Language `yaml:"language"`

	// Format selects the renderer: markdown or json.
	Format string `yaml:"format"`

	// FrontMatter prefixes Markdown output with a YAML metadata block.
	FrontMatter bool `yaml:"front_matter"`

	// Timeout bounds a single HTTP fetch.
	Timeout time.Duration `yaml:"timeout"`

	// UserAgent is sent with HTTP requests.
	UserAgent string `yaml:"user_agent"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Validate rejects unknown languages and formats.
func (c Config) Validate() error {
	if _, err := ParseLanguage(string(c.Language)); err != nil {
		return err
	}
	switch c.Format {
	case FormatMarkdown, FormatJSON:
	default:
		return fmt.Errorf("unsupported format %q (want %s or %s)", c.Format, FormatMarkdown, FormatJSON)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative (got %s)", c.Timeout)
	}
	return nil
}
