// Package normalize turns the statement part of a problem page into Markdown
// lines. It understands the handful of elements problem statements are built
// from (h3, p, ul, pre, div and the inline var/code/strong/em markers) and
// ignores everything else.
package normalize

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// kind classifies a node for the section, inline and list walkers.
type kind int

const (
	kindOther kind = iota
	kindText
	kindHeading
	kindParagraph
	kindList
	kindOrderedList
	kindCodeBlock
	kindContainer
	kindVariable
	kindBold
	kindItalic
	kindCodeSpan
)

func kindOf(n *html.Node) kind {
	switch n.Type {
	case html.TextNode:
		return kindText
	case html.ElementNode:
	default:
		return kindOther
	}

	switch n.DataAtom {
	case atom.H3:
		return kindHeading
	case atom.P:
		return kindParagraph
	case atom.Ul:
		return kindList
	case atom.Ol:
		return kindOrderedList
	case atom.Pre:
		return kindCodeBlock
	case atom.Div:
		return kindContainer
	case atom.Var:
		return kindVariable
	case atom.Strong:
		return kindBold
	case atom.Em:
		return kindItalic
	case atom.Code:
		return kindCodeSpan
	default:
		return kindOther
	}
}

var (
	itemMatcher = cascadia.MustCompile("li")
	listMatcher = cascadia.MustCompile("ul")
)

// subscript braces the first underscore group of a variable name.
// The group takes letters and digits of any script plus '_', so x_i_j
// becomes x_{i_j} and x_α becomes x_{α}.
var subscript = regexp.MustCompile(`_([\p{L}\p{N}_]+)`)

// scoreMarkers flag a paragraph as the points line of a problem.
var scoreMarkers = []string{"配点", "Score"}

// Section writes the Markdown for every node in sel, walking its direct
// element children in document order. Nested div wrappers are walked with
// the same rules.
func Section(buf *Buffer, sel *goquery.Selection) {
	sel.Each(func(_ int, s *goquery.Selection) {
		s.Children().Each(func(_ int, child *goquery.Selection) {
			element(buf, child)
		})
	})
}

func element(buf *Buffer, el *goquery.Selection) {
	switch kindOf(el.Get(0)) {
	case kindHeading:
		buf.Blank()
		buf.Line("## " + strings.TrimSpace(el.Text()))
		buf.Blank()

	case kindParagraph:
		text := el.Text()
		if isScore(text) {
			buf.Blank()
			buf.Line("**" + strings.TrimSpace(text) + "**")
			buf.Blank()
			return
		}
		if converted := Inline(el); converted != "" {
			buf.Line(converted)
		}

	case kindList:
		List(buf, el, 0)
		buf.Blank()

	case kindCodeBlock:
		code := strings.TrimSpace(el.Text())
		if code == "" {
			return
		}
		buf.Line("```")
		buf.Line(code)
		buf.Line("```")
		buf.Blank()

	case kindContainer:
		Section(buf, el)
	}
}

func isScore(text string) bool {
	for _, m := range scoreMarkers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

// List writes one bullet per direct <li> of ul, indented two spaces per
// depth level. Items whose inline text is empty produce no bullet, but their
// nested list is still written.
func List(buf *Buffer, ul *goquery.Selection, depth int) {
	indent := strings.Repeat("  ", depth)
	ul.ChildrenMatcher(itemMatcher).Each(func(_ int, li *goquery.Selection) {
		if text := Inline(li); text != "" {
			buf.Line(indent + "- " + text)
		}
		if nested := li.ChildrenMatcher(listMatcher).First(); nested.Length() > 0 {
			List(buf, nested, depth+1)
		}
	})
}

// Inline converts the direct child nodes of sel into a single line of
// Markdown. Nested lists are skipped; they belong to List.
func Inline(sel *goquery.Selection) string {
	var b strings.Builder
	sel.Contents().Each(func(_ int, c *goquery.Selection) {
		switch kindOf(c.Get(0)) {
		case kindText:
			b.WriteString(c.Get(0).Data)
		case kindVariable:
			b.WriteString("$" + Variable(c.Text()) + "$")
		case kindCodeSpan:
			b.WriteString("`" + strings.TrimSpace(c.Text()) + "`")
		case kindBold:
			b.WriteString("**" + strings.TrimSpace(c.Text()) + "**")
		case kindItalic:
			b.WriteString("*" + strings.TrimSpace(c.Text()) + "*")
		case kindList, kindOrderedList:
		default:
			if c.Get(0).Type == html.ElementNode {
				b.WriteString(Inline(c))
			}
		}
	})
	return strings.TrimSpace(b.String())
}

// Variable formats the text of a <var> element as a LaTeX math body.
func Variable(text string) string {
	return subscript.ReplaceAllString(strings.TrimSpace(text), "_{${1}}")
}
