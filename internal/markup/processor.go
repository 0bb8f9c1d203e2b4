// Package markup implements the content-processing pipeline that turns raw
// page source (front matter + markdown body) into rendered HTML, the body
// source, and an ordered metadata map, plus the wikilink rewriting that runs
// over the rendered HTML.
package markup

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"

	"github.com/tomebase/tome/pkg/types"
)

// PreProcessor transforms raw page source before anything else runs.
type PreProcessor func(string) string

// PostProcessor transforms rendered HTML after the markdown stage.
type PostProcessor func(string) string

// Processor runs the fixed pipeline: preprocess, split raw source, extract
// metadata, render markdown, postprocess. A Processor holds no per-document
// state; Process output is identical across repeated calls with the same
// input.
//
// The markdown engine is configured with tables, fenced code blocks, and
// syntax highlighting. The front-matter block is split off before rendering,
// so only the body reaches the engine.
type Processor struct {
	md   goldmark.Markdown
	pre  []PreProcessor
	post []PostProcessor
}

// NewProcessor returns a Processor with no preprocessors and the wikilink
// rewriter as the first postprocessor.
func NewProcessor() *Processor {
	return &Processor{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				highlighting.NewHighlighting(
					highlighting.WithStyle("friendly"),
				),
			),
		),
		post: []PostProcessor{WikiLinks},
	}
}

// UsePre appends a preprocessor to the pipeline.
func (p *Processor) UsePre(f PreProcessor) {
	p.pre = append(p.pre, f)
}

// UsePost appends a postprocessor; it runs after the wikilink rewriter.
func (p *Processor) UsePost(f PostProcessor) {
	p.post = append(p.post, f)
}

// Process runs the full pipeline over text and returns the final HTML, the
// body markdown source, and the ordered metadata. The source must contain a
// blank line separating front matter from body; without one the result is
// ErrMalformedPage.
func (p *Processor) Process(text string) (string, string, *types.Meta, error) {
	cur := text
	for _, pre := range p.pre {
		cur = pre(cur)
	}

	metaRaw, body, found := strings.Cut(cur, "\n\n")
	if !found {
		return "", "", nil, fmt.Errorf("%w: missing blank-line separator", types.ErrMalformedPage)
	}
	meta := ParseMeta(metaRaw)

	var buf bytes.Buffer
	if err := p.md.Convert([]byte(body), &buf); err != nil {
		return "", "", nil, fmt.Errorf("render markdown: %w", err)
	}
	html := buf.String()
	for _, post := range p.post {
		html = post(html)
	}
	return html, body, meta, nil
}

// ParseMeta parses a front-matter block line by line. Keys are "key: value"
// lines, lower-cased, kept in first-seen order; indented lines continue the
// previous value, joined by a newline. Lines without a colon are ignored.
func ParseMeta(raw string) *types.Meta {
	meta := types.NewMeta()
	var lastKey string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if (strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")) && lastKey != "" {
			prev, _ := meta.Get(lastKey)
			cont := strings.TrimSpace(line)
			if prev == "" {
				meta.Set(lastKey, cont)
			} else {
				meta.Set(lastKey, prev+"\n"+cont)
			}
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		lastKey = strings.ToLower(strings.TrimSpace(key))
		meta.Set(lastKey, strings.TrimSpace(value))
	}
	return meta
}
