// Package query implements the schema-aware statement construction and
// execution layer between the wiki domain model and the SQLite store: a
// clause-list statement builder, per-entity table descriptors, and a
// per-call executor.
package query

import (
	"fmt"
	"strings"

	"github.com/tomebase/tome/pkg/types"
)

// Statement verbs.
const (
	VerbInsert = "INSERT"
	VerbSelect = "SELECT"
	VerbUpdate = "UPDATE"
	VerbDelete = "DELETE"
)

// validVerbs is the set of recognized statement verbs.
var validVerbs = map[string]bool{
	VerbInsert: true,
	VerbSelect: true,
	VerbUpdate: true,
	VerbDelete: true,
}

// Assign pairs a column with a bound value. It is used for INSERT columns,
// UPDATE assignments, and WHERE conditions alike.
type Assign struct {
	Column string
	Value  any
}

// Statement is a single SQL command assembled as an ordered list of clause
// fragments plus a parallel list of bound parameters. The verb clause is
// always first; WHERE and GROUP BY clauses are appended in call order.
//
// Every value — INSERT, UPDATE and WHERE — is parameter-bound, never
// interpolated into the clause text. Only identifiers (table and column
// names, GROUP BY columns) appear textually.
//
// Construction errors latch onto the statement and surface from Build before
// anything reaches the store; chained calls after an error are no-ops. A
// Statement is meant to be consumed exactly once by the executor; re-executing
// one is not guaranteed safe.
type Statement struct {
	verb    string
	table   string
	clauses []string
	args    []any
	err     error
}

// Build assembles the primary verb clause for a statement against table.
// INSERT requires at least one column/value pair and parameter-binds every
// value. SELECT with no columns projects all columns. UPDATE requires at
// least one assignment. DELETE takes no column list. An unknown verb latches
// ErrInvalidQuery.
func Build(table, verb string, cols []string, sets []Assign) *Statement {
	s := &Statement{verb: verb, table: table}
	if !validVerbs[verb] {
		s.err = fmt.Errorf("%w: unknown verb %q", types.ErrInvalidQuery, verb)
		return s
	}

	var cmd string
	switch verb {
	case VerbInsert:
		if len(sets) == 0 {
			s.err = fmt.Errorf("%w: no fields for INSERT", types.ErrInvalidQuery)
			return s
		}
		names := make([]string, len(sets))
		marks := make([]string, len(sets))
		for i, a := range sets {
			names[i] = a.Column
			marks[i] = "?"
			s.args = append(s.args, a.Value)
		}
		cmd = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			table, strings.Join(names, ", "), strings.Join(marks, ", "))
	case VerbSelect:
		if len(cols) == 0 {
			cmd = fmt.Sprintf("SELECT * FROM %s", table)
		} else {
			cmd = fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), table)
		}
	case VerbUpdate:
		if len(sets) == 0 {
			s.err = fmt.Errorf("%w: no assignments for UPDATE", types.ErrInvalidQuery)
			return s
		}
		parts := make([]string, len(sets))
		for i, a := range sets {
			parts[i] = a.Column + " = ?"
			s.args = append(s.args, a.Value)
		}
		cmd = fmt.Sprintf("UPDATE %s SET %s", table, strings.Join(parts, ", "))
	case VerbDelete:
		cmd = fmt.Sprintf("DELETE FROM %s", table)
	}

	s.clauses = append(s.clauses, cmd)
	return s
}

// Where appends a WHERE clause. Multiple conditions are joined with the given
// boolean operator; "" defaults to AND. Zero conditions latch ErrInvalidQuery.
// Condition values are parameter-bound.
func (s *Statement) Where(join string, conds ...Assign) *Statement {
	if s.err != nil {
		return s
	}
	if len(conds) == 0 {
		s.err = fmt.Errorf("%w: no conditions for WHERE", types.ErrInvalidQuery)
		return s
	}
	switch join {
	case "", "AND":
		join = "AND"
	case "OR":
	default:
		s.err = fmt.Errorf("%w: unknown WHERE join %q", types.ErrInvalidQuery, join)
		return s
	}

	parts := make([]string, len(conds))
	for i, c := range conds {
		parts[i] = c.Column + " = ?"
		s.args = append(s.args, c.Value)
	}
	s.clauses = append(s.clauses, "WHERE "+strings.Join(parts, " "+join+" "))
	return s
}

// GroupBy appends a GROUP BY clause over the given columns. Column names are
// identifiers and appear textually.
func (s *Statement) GroupBy(cols ...string) *Statement {
	if s.err != nil {
		return s
	}
	s.clauses = append(s.clauses, "GROUP BY "+strings.Join(cols, ", "))
	return s
}

// Command returns the assembled command text, the bound parameters, and any
// construction error latched during the chain.
func (s *Statement) Command() (string, []any, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return strings.Join(s.clauses, " ") + ";", s.args, nil
}

// Verb returns the statement's primary verb.
func (s *Statement) Verb() string {
	return s.verb
}
