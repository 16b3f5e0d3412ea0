// Package problem converts one problem statement page into Markdown.
// It ties the extract stage (title, limits, statement root) to the
// normalize stage (section, list and inline walkers).
package problem

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/taskmd/core"
	"github.com/gaurav-prasanna/taskmd/core/extract"
	"github.com/gaurav-prasanna/taskmd/core/logging"
	"github.com/gaurav-prasanna/taskmd/core/normalize"
)

// Parser converts statement HTML to Markdown. A Parser keeps no state
// between calls and may be shared.
type Parser struct {
	log core.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used to report omitted parts of a page.
func WithLogger(l core.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.log = l
		}
	}
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{log: logging.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse returns the Markdown rendering of html for lang.
func (p *Parser) Parse(html string, lang core.Language) (string, error) {
	prob, err := p.Extract(html, lang)
	if err != nil {
		return "", err
	}
	return prob.Markdown, nil
}

// Extract parses html and returns the problem with its Markdown body.
// Missing title, limits or localized statement are omitted from the
// output; they never cause an error.
func (p *Parser) Extract(html string, lang core.Language) (*core.Problem, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	prob := &core.Problem{Language: lang}
	buf := normalize.NewBuffer()

	if title, ok := extract.Title(doc); ok {
		prob.Title = title
		buf.Line("# " + title)
		buf.Blank()
	} else {
		p.log.Debug("no title found")
	}

	if limits, ok := extract.Limits(doc); ok {
		prob.Limits = &limits
		buf.Line("**Time Limit:** " + limits.Time)
		buf.Line("**Memory Limit:** " + limits.Memory)
		buf.Blank()
	} else {
		p.log.Debug("no limits found")
	}

	root, localized, ok := extract.Statement(doc, lang)
	if !ok {
		p.log.Debug("no task statement found")
	} else {
		if !localized {
			p.log.Debug("no localized statement, using whole container", "language", lang)
		}
		normalize.Section(buf, extract.Sections(root))
	}

	prob.Markdown = buf.String()
	return prob, nil
}
