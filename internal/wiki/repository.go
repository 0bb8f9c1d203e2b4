package wiki

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tomebase/tome/internal/markup"
	"github.com/tomebase/tome/internal/query"
	"github.com/tomebase/tome/pkg/types"
)

// Searchable page fields.
const (
	FieldTitle = "title"
	FieldTags  = "tags"
	FieldBody  = "body"
)

// SearchOrder selects the ordering of search results.
type SearchOrder string

const (
	OrderDefault     SearchOrder = "default"
	OrderCreatedAsc  SearchOrder = "created_asc"
	OrderCreatedDesc SearchOrder = "created_desc"
	OrderEditedAsc   SearchOrder = "edited_asc"
	OrderEditedDesc  SearchOrder = "edited_desc"
)

// Repository provides the page operations over the descriptor and executor
// layer. Each operation runs its statements through a fresh store connection;
// no state is shared across calls.
type Repository struct {
	exec *query.Executor
	proc *markup.Processor
	log  *zap.SugaredLogger
}

// NewRepository returns a Repository over the given executor.
func NewRepository(exec *query.Executor, log *zap.SugaredLogger) *Repository {
	return &Repository{
		exec: exec,
		proc: markup.NewProcessor(),
		log:  log,
	}
}

// Processor returns the repository's content processor, for callers that
// need to preview raw text without touching the store.
func (r *Repository) Processor() *markup.Processor {
	return r.proc
}

// Render runs the content processor over the page source and fills in the
// derived HTML, body and metadata. Render is idempotent.
func (r *Repository) Render(p *types.Page) error {
	html, body, meta, err := r.proc.Process(p.Content)
	if err != nil {
		return fmt.Errorf("render %q: %w", p.URL, err)
	}
	p.HTML, p.Body, p.Meta = html, body, meta
	return nil
}

// Exists reports whether a page with the given url is stored.
func (r *Repository) Exists(url string) (bool, error) {
	rows, err := r.exec.Exec(
		query.Pages.Select("id").Where("", query.Assign{Column: "uri", Value: url}))
	if err != nil {
		return false, fmt.Errorf("checking page %q: %w", url, err)
	}
	return len(rows) > 0, nil
}

// GetByURL returns the rendered page at url. Zero rows is ErrNotFound; more
// than one row is ErrAmbiguousResult, a store-integrity violation given the
// uri uniqueness constraint. Neither is normal control flow for callers that
// checked Exists first.
func (r *Repository) GetByURL(url string) (*types.Page, error) {
	rows, err := r.exec.Exec(
		query.Pages.Select().Where("", query.Assign{Column: "uri", Value: url}))
	if err != nil {
		return nil, fmt.Errorf("loading page %q: %w", url, err)
	}
	switch {
	case len(rows) == 0:
		return nil, fmt.Errorf("%w: %q", types.ErrNotFound, url)
	case len(rows) > 1:
		r.log.Errorw("uri uniqueness violated", "url", url, "rows", len(rows))
		return nil, fmt.Errorf("%w: %d rows for %q", types.ErrAmbiguousResult, len(rows), url)
	}
	p, err := pageFromRow(rows[0])
	if err != nil {
		return nil, err
	}
	if err := r.Render(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetOrBare returns the stored page at url with existed true, or a fresh
// unsaved page with existed false. A bare page has ID 0 until saved.
func (r *Repository) GetOrBare(url string) (page *types.Page, existed bool, err error) {
	ok, err := r.Exists(url)
	if err != nil {
		return nil, false, err
	}
	if ok {
		p, err := r.GetByURL(url)
		return p, true, err
	}
	return &types.Page{URL: url, Meta: types.NewMeta()}, false, nil
}

// Save upserts the page keyed by url: update when a row with that url
// exists, insert otherwise. Save never renames; use Move for that. The page
// is rendered first unless render is false, so the stored title always
// reflects the current content; with render false the caller owns keeping
// Meta in step with Content.
func (r *Repository) Save(p *types.Page, render bool) error {
	if render {
		if err := r.Render(p); err != nil {
			return err
		}
	}

	now := time.Now()
	exists, err := r.Exists(p.URL)
	if err != nil {
		return err
	}

	if exists {
		st := query.Pages.Update(
			query.Assign{Column: "title", Value: p.Title()},
			query.Assign{Column: "content", Value: []byte(p.Content)},
			query.Assign{Column: "last_edited", Value: now.Format(time.RFC3339)},
		).Where("", query.Assign{Column: "uri", Value: p.URL})
		if _, err := r.exec.Exec(st); err != nil {
			return fmt.Errorf("updating page %q: %w", p.URL, err)
		}
	} else {
		st := query.InsertPage(p.URL, p.Title(), []byte(p.Content), now, now)
		if _, err := r.exec.Exec(st); err != nil {
			return fmt.Errorf("inserting page %q: %w", p.URL, err)
		}
		p.DateCreated = now
	}
	p.LastEdited = now
	return nil
}

// Move updates the url of the page at url to newURL in place. It fails with
// ErrConflict when a page at newURL already exists, leaving the original row
// untouched.
func (r *Repository) Move(url, newURL string) error {
	taken, err := r.Exists(newURL)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: %q", types.ErrConflict, newURL)
	}
	st := query.Pages.Update(query.Assign{Column: "uri", Value: newURL}).
		Where("", query.Assign{Column: "uri", Value: url})
	if _, err := r.exec.Exec(st); err != nil {
		return fmt.Errorf("moving page %q to %q: %w", url, newURL, err)
	}
	r.log.Infow("moved page", "from", url, "to", newURL)
	return nil
}

// Delete removes the page at url. It returns false without error when no
// such page exists.
func (r *Repository) Delete(url string) (bool, error) {
	exists, err := r.Exists(url)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	st := query.Pages.Delete().Where("", query.Assign{Column: "uri", Value: url})
	if _, err := r.exec.Exec(st); err != nil {
		return false, fmt.Errorf("deleting page %q: %w", url, err)
	}
	r.log.Infow("deleted page", "url", url)
	return true, nil
}

// Index returns all pages, rendered and sorted by case-insensitive title.
func (r *Repository) Index() ([]*types.Page, error) {
	rows, err := r.exec.Exec(query.Pages.Select())
	if err != nil {
		return nil, fmt.Errorf("indexing pages: %w", err)
	}
	pages := make([]*types.Page, 0, len(rows))
	for _, row := range rows {
		p, err := pageFromRow(row)
		if err != nil {
			return nil, err
		}
		if err := r.Render(p); err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	sortByTitle(pages)
	return pages, nil
}

// IndexByTag returns the pages whose comma-joined tags field contains tag as
// a substring, sorted by case-insensitive title.
func (r *Repository) IndexByTag(tag string) ([]*types.Page, error) {
	pages, err := r.Index()
	if err != nil {
		return nil, err
	}
	var tagged []*types.Page
	for _, p := range pages {
		if strings.Contains(p.Tags(), tag) {
			tagged = append(tagged, p)
		}
	}
	return tagged, nil
}

// TagsToPages groups all pages by each individual trimmed tag token. Empty
// tokens produce no entry.
func (r *Repository) TagsToPages() (map[string][]*types.Page, error) {
	pages, err := r.Index()
	if err != nil {
		return nil, err
	}
	tags := make(map[string][]*types.Page)
	for _, p := range pages {
		for _, tag := range strings.Split(p.Tags(), ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			tags[tag] = append(tags[tag], p)
		}
	}
	return tags, nil
}

// Search returns pages where the regex term matches at least one of the
// given fields (title, tags, body; all three when fields is empty). Each
// page appears at most once, on its first matching field. Results keep
// index order for OrderDefault, else they are re-sorted by the requested
// timestamp.
func (r *Repository) Search(term string, ignoreCase bool, fields []string, order SearchOrder) ([]*types.Page, error) {
	if ignoreCase {
		term = "(?i)" + term
	}
	re, err := regexp.Compile(term)
	if err != nil {
		return nil, fmt.Errorf("%w: bad search term: %w", types.ErrInvalidQuery, err)
	}
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldTags, FieldBody}
	}

	pages, err := r.Index()
	if err != nil {
		return nil, err
	}
	var matched []*types.Page
	for _, p := range pages {
		for _, field := range fields {
			var value string
			switch field {
			case FieldTitle:
				value = p.Title()
			case FieldTags:
				value = p.Tags()
			case FieldBody:
				value = p.Body
			}
			if re.MatchString(value) {
				matched = append(matched, p)
				break
			}
		}
	}

	switch order {
	case OrderCreatedAsc:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].DateCreated.Before(matched[j].DateCreated) })
	case OrderCreatedDesc:
		sort.SliceStable(matched, func(i, j int) bool { return matched[j].DateCreated.Before(matched[i].DateCreated) })
	case OrderEditedAsc:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].LastEdited.Before(matched[j].LastEdited) })
	case OrderEditedDesc:
		sort.SliceStable(matched, func(i, j int) bool { return matched[j].LastEdited.Before(matched[i].LastEdited) })
	}
	return matched, nil
}

func sortByTitle(pages []*types.Page) {
	sort.SliceStable(pages, func(i, j int) bool {
		return strings.ToLower(pages[i].Title()) < strings.ToLower(pages[j].Title())
	})
}
