package query

import (
	"fmt"
	"time"

	"github.com/tomebase/tome/pkg/types"
)

// Descriptor holds the schema metadata for one entity table: its name and
// natural column order. Descriptors are stateless process-wide constants;
// their factory methods produce a Statement pre-populated for the entity.
type Descriptor struct {
	name   string
	fields []string
}

// The four entity descriptors.
var (
	Users      = Descriptor{name: "USER", fields: []string{"id", "username", "password", "email", "active"}}
	Pages      = Descriptor{name: "PAGE", fields: []string{"id", "uri", "title", "content", "date_created", "last_edited"}}
	Tags       = Descriptor{name: "TAG", fields: []string{"id", "name", "category_id"}}
	Categories = Descriptor{name: "CATEGORY", fields: []string{"id", "name"}}
)

// Name returns the table name.
func (d Descriptor) Name() string { return d.name }

// Fields returns the table's columns in natural order.
func (d Descriptor) Fields() []string {
	out := make([]string, len(d.fields))
	copy(out, d.fields)
	return out
}

func (d Descriptor) hasField(col string) bool {
	for _, f := range d.fields {
		if f == col {
			return true
		}
	}
	return false
}

// Select builds a SELECT over the named columns; with no columns it projects
// all columns. A column not in the descriptor latches ErrInvalidQuery.
func (d Descriptor) Select(cols ...string) *Statement {
	for _, c := range cols {
		if !d.hasField(c) {
			s := &Statement{verb: VerbSelect, table: d.name}
			s.err = fmt.Errorf("%w: table %s has no column %q", types.ErrInvalidQuery, d.name, c)
			return s
		}
	}
	return Build(d.name, VerbSelect, cols, nil)
}

// Update builds an UPDATE over an arbitrary subset of columns. Unknown
// columns latch ErrInvalidQuery.
func (d Descriptor) Update(sets ...Assign) *Statement {
	for _, a := range sets {
		if !d.hasField(a.Column) {
			s := &Statement{verb: VerbUpdate, table: d.name}
			s.err = fmt.Errorf("%w: table %s has no column %q", types.ErrInvalidQuery, d.name, a.Column)
			return s
		}
	}
	return Build(d.name, VerbUpdate, nil, sets)
}

// Delete builds an unconditional DELETE.
//
// HAZARD: executing the result without chaining Where clears the entire
// table. That is a legitimate capability (callers may want a full clear) and
// is deliberately not guarded; scope the statement with Where for anything
// less than a full clear.
func (d Descriptor) Delete() *Statement {
	return Build(d.name, VerbDelete, nil, nil)
}

func (d Descriptor) insert(sets ...Assign) *Statement {
	return Build(d.name, VerbInsert, nil, sets)
}

func missing(table, field string) *Statement {
	return &Statement{
		verb:  VerbInsert,
		table: table,
		err:   fmt.Errorf("%w: %s.%s", types.ErrMissingField, table, field),
	}
}

// InsertPage builds a parameterized INSERT for a page row. All arguments are
// required; an empty one latches ErrMissingField.
func InsertPage(uri, title string, content []byte, created, edited time.Time) *Statement {
	switch {
	case uri == "":
		return missing(Pages.name, "uri")
	case title == "":
		return missing(Pages.name, "title")
	case created.IsZero():
		return missing(Pages.name, "date_created")
	case edited.IsZero():
		return missing(Pages.name, "last_edited")
	}
	return Pages.insert(
		Assign{"uri", uri},
		Assign{"title", title},
		Assign{"content", content},
		Assign{"date_created", created.Format(time.RFC3339)},
		Assign{"last_edited", edited.Format(time.RFC3339)},
	)
}

// InsertUser builds a parameterized INSERT for a user row. Username, password
// and email are required; an empty one latches ErrMissingField.
func InsertUser(username, password, email string, active bool) *Statement {
	switch {
	case username == "":
		return missing(Users.name, "username")
	case password == "":
		return missing(Users.name, "password")
	case email == "":
		return missing(Users.name, "email")
	}
	return Users.insert(
		Assign{"username", username},
		Assign{"password", password},
		Assign{"email", email},
		Assign{"active", active},
	)
}

// InsertTag builds a parameterized INSERT for a tag row.
func InsertTag(name string, categoryID int64) *Statement {
	if name == "" {
		return missing(Tags.name, "name")
	}
	return Tags.insert(
		Assign{"name", name},
		Assign{"category_id", categoryID},
	)
}

// InsertCategory builds a parameterized INSERT for a category row.
func InsertCategory(name string) *Statement {
	if name == "" {
		return missing(Categories.name, "name")
	}
	return Categories.insert(Assign{"name", name})
}
