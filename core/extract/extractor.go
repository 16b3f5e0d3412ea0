// Package extract locates the parts of a problem page the Markdown is built
// from:
//  1. the problem title (<title>, then the span.h2 heading)
//  2. the time/memory limits paragraph
//  3. the statement root for the requested language
//
// Every lookup is an ordered list of alternatives; a miss is reported with
// ok == false and never as an error.
package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/taskmd/core"
)

// titleMatchers are tried in order; the first non-empty text wins.
var titleMatchers = []cascadia.Selector{
	cascadia.MustCompile("title"),
	cascadia.MustCompile("span.h2"),
}

var (
	paragraphMatcher = cascadia.MustCompile("p")
	statementMatcher = cascadia.MustCompile("div#task-statement")
	sectionMatcher   = cascadia.MustCompile("section")
)

// limitsMarker selects the paragraph holding the limits line.
var limitsMarker = regexp.MustCompile(`実行時間制限|Time Limit`)

// limitsPatterns are tried in order: Japanese first, then English.
// Digit, space and word classes are Unicode-aware, so full-width digits and
// ideographic spaces are accepted.
var limitsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`実行時間制限[：:][\s\p{Zs}]*(\p{Nd}+(?:\.\p{Nd}+)?[\s\p{Zs}]*sec).*メモリ制限[：:][\s\p{Zs}]*(\p{Nd}+[\s\p{Zs}]*[\p{L}\p{N}_]+)`),
	regexp.MustCompile(`Time[\s\p{Zs}]+Limit[：:][\s\p{Zs}]*(\p{Nd}+(?:\.\p{Nd}+)?[\s\p{Zs}]*sec).*Memory[\s\p{Zs}]+Limit[：:][\s\p{Zs}]*(\p{Nd}+[\s\p{Zs}]*[\p{L}\p{N}_]+)`),
}

// Title returns the trimmed problem title. A <title> whose text is blank
// after trimming counts as missing, so span.h2 is tried next.
func Title(doc *goquery.Document) (string, bool) {
	for _, m := range titleMatchers {
		sel := doc.FindMatcher(m).First()
		if sel.Length() == 0 {
			continue
		}
		if title := strings.TrimSpace(sel.Text()); title != "" {
			return title, true
		}
	}
	return "", false
}

// Limits parses the first paragraph whose only text mentions a time limit.
// Paragraphs with mixed content, such as prose around a <b>Time Limit</b>
// fragment, are skipped. Only the selected paragraph is parsed; if neither
// pattern matches it, no limits are reported.
func Limits(doc *goquery.Document) (core.Limits, bool) {
	var text string
	doc.FindMatcher(paragraphMatcher).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		t, ok := soleText(s.Get(0))
		if ok && limitsMarker.MatchString(t) {
			text = t
			return false
		}
		return true
	})
	if text == "" {
		return core.Limits{}, false
	}
	return ParseLimits(text)
}

// soleText descends through single-child elements and returns the text node
// at the bottom. ok is false when any level has zero or several children.
func soleText(n *html.Node) (string, bool) {
	for n != nil {
		if n.Type == html.TextNode {
			return n.Data, true
		}
		if n.FirstChild == nil || n.FirstChild != n.LastChild {
			return "", false
		}
		n = n.FirstChild
	}
	return "", false
}

// ParseLimits applies the Japanese and then the English limits pattern.
func ParseLimits(text string) (core.Limits, bool) {
	for _, re := range limitsPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return core.Limits{Time: m[1], Memory: m[2]}, true
		}
	}
	return core.Limits{}, false
}

// Statement returns the root element of the statement for lang.
// When the page has no span.lang-<lang> the whole statement container is
// returned and localized is false. ok is false when there is no container.
func Statement(doc *goquery.Document, lang core.Language) (root *goquery.Selection, localized bool, ok bool) {
	container := doc.FindMatcher(statementMatcher).First()
	if container.Length() == 0 {
		return nil, false, false
	}
	if m, err := cascadia.Compile("span.lang-" + string(lang)); err == nil {
		if sel := container.FindMatcher(m).First(); sel.Length() > 0 {
			return sel, true, true
		}
	}
	return container, false, true
}

// Sections returns every <section> below root in document order, or root
// itself when it has none.
func Sections(root *goquery.Selection) *goquery.Selection {
	sections := root.FindMatcher(sectionMatcher)
	if sections.Length() > 0 {
		return sections
	}
	return root
}
