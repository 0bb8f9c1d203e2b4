package types

import (
	"fmt"
	"time"
)

// Page represents a wiki page. The store row carries ID, URL, Content and the
// two timestamps; HTML, Body and Meta are derived by the content processor and
// are not persisted. A page with ID 0 has not been saved yet.
type Page struct {
	ID          int64     // Assigned by the store on insert.
	URL         string    // Unique key across all pages.
	Content     string    // Raw source: front matter + blank line + body.
	DateCreated time.Time // Timestamp of first save.
	LastEdited  time.Time // Timestamp of last save.

	// Derived by rendering; zero until the processor has run.
	HTML string
	Body string
	Meta *Meta
}

// Metadata keys with documented fallback behavior.
const (
	MetaTitle = "title"
	MetaTags  = "tags"
)

// Title returns the page title from metadata, falling back to the URL when no
// explicit title exists.
func (p *Page) Title() string {
	if p.Meta != nil {
		if v, ok := p.Meta.Get(MetaTitle); ok {
			return v
		}
	}
	return p.URL
}

// Tags returns the comma-joined tags string, or "" when absent.
func (p *Page) Tags() string {
	if p.Meta != nil {
		if v, ok := p.Meta.Get(MetaTags); ok {
			return v
		}
	}
	return ""
}

// SetForm replaces the page source with the given editor fields, rebuilding
// Content as a front-matter block followed by the body. Derived HTML and Body
// are stale until the page is rendered again.
func (p *Page) SetForm(title, tags, body string) {
	if p.Meta == nil {
		p.Meta = NewMeta()
	}
	p.Meta.Set(MetaTitle, title)
	p.Meta.Set(MetaTags, tags)
	p.Content = fmt.Sprintf("title: %s\ntags: %s\n\n%s", title, tags, body)
}

func (p *Page) String() string {
	return fmt.Sprintf("<Page: %s>", p.URL)
}
