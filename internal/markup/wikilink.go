package markup

import (
	"fmt"
	"regexp"
	"strings"
)

// URLFormatter maps a cleaned URL to the href emitted for a wikilink anchor.
type URLFormatter func(cleaned string) string

// DisplayRoute is the default formatter: the display route for a page.
func DisplayRoute(url string) string {
	return "/" + url + "/"
}

// wikilinkPattern matches [[target]] and [[target|Display Name]]. The target
// must not start with '<' and neither part may contain ']' or '|'.
var wikilinkPattern = regexp.MustCompile(`\[\[([^<\]|][^\]|]*?)\s*(?:\|\s*([^\]|]+?)\s*)?\]\]`)

// codeTag guards against rewriting inside inline code: a match immediately
// preceded by a <code> tag is left untouched.
const codeTag = "<code>"

// WikiLinks rewrites wikilink syntax in rendered HTML using DisplayRoute.
func WikiLinks(html string) string {
	return RewriteWikiLinks(html, DisplayRoute)
}

// RewriteWikiLinks scans html left to right and replaces each wikilink
// occurrence exactly once, in position order. The link text is the display
// name when given, else the raw target; the href is the formatted clean URL.
func RewriteWikiLinks(html string, format URLFormatter) string {
	matches := wikilinkPattern.FindAllStringSubmatchIndex(html, -1)
	if len(matches) == 0 {
		return html
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start >= len(codeTag) && html[start-len(codeTag):start] == codeTag {
			continue
		}
		target := html[m[2]:m[3]]
		title := target
		if m[4] >= 0 {
			title = html[m[4]:m[5]]
		}
		b.WriteString(html[last:start])
		fmt.Fprintf(&b, "<a href='%s'>%s</a>", format(CleanURL(target)), title)
		last = end
	}
	b.WriteString(html[last:])
	return b.String()
}

var spaceRun = regexp.MustCompile(`\s+`)

// CleanURL normalizes a page URL: backslashes become forward slashes, and
// each path segment has its whitespace runs collapsed to one space, is
// trimmed and lower-cased, and has spaces replaced with underscores.
func CleanURL(url string) string {
	url = strings.ReplaceAll(url, "\\", "/")
	segs := strings.Split(url, "/")
	for i, s := range segs {
		s = spaceRun.ReplaceAllString(s, " ")
		s = strings.ToLower(strings.TrimSpace(s))
		segs[i] = strings.ReplaceAll(s, " ", "_")
	}
	return strings.Join(segs, "/")
}
