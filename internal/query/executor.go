package query

import (
	"database/sql"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/tomebase/tome/pkg/types"
)

// Executor runs assembled statements against the store file. Every call opens
// its own connection, enables foreign-key enforcement, executes, fetches, and
// closes — no pooling, no shared connection lifetime, no retries. Execution
// is blocking and synchronous end to end.
type Executor struct {
	path string
	log  *zap.SugaredLogger
}

// NewExecutor returns an Executor bound to the store file at path.
func NewExecutor(path string, log *zap.SugaredLogger) *Executor {
	return &Executor{path: path, log: log}
}

// Path returns the store file path the executor is bound to.
func (e *Executor) Path() string { return e.path }

// Exec runs the statement and returns all result rows as ordered tuples.
// Column order matches the projection for SELECT and is empty for other
// verbs. Construction errors surface before any store access; every store
// failure is wrapped under types.ErrDatabase with its cause preserved.
func (e *Executor) Exec(st *Statement) (rows [][]any, err error) {
	command, args, err := st.Command()
	if err != nil {
		return nil, err
	}
	e.log.Debugw("executing statement", "command", command)

	db, err := sql.Open("sqlite", e.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", types.ErrDatabase, e.path, err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: close: %w", types.ErrDatabase, cerr))
		}
	}()

	// Single connection so the pragma binds to the connection that runs the
	// statement; pragmas are per-connection state.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		return nil, fmt.Errorf("%w: enable foreign keys: %w", types.ErrDatabase, err)
	}

	if st.Verb() != VerbSelect {
		if _, err := db.Exec(command, args...); err != nil {
			return nil, fmt.Errorf("%w: exec: %w", types.ErrDatabase, err)
		}
		return nil, nil
	}

	result, err := db.Query(command, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: query: %w", types.ErrDatabase, err)
	}
	defer result.Close()

	cols, err := result.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: columns: %w", types.ErrDatabase, err)
	}
	for result.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := result.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%w: scan: %w", types.ErrDatabase, err)
		}
		rows = append(rows, vals)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("%w: fetch: %w", types.ErrDatabase, err)
	}
	return rows, nil
}
