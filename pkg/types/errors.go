package types

import "errors"

// Query construction errors. These are raised while a statement is being
// assembled, before anything reaches the store.
var (
	ErrInvalidQuery = errors.New("invalid query construction")
	ErrMissingField = errors.New("required field missing")
)

// ErrDatabase wraps any failure during connect, execute, fetch, or close.
// The cause is preserved in the wrap chain; callers match with errors.Is.
var ErrDatabase = errors.New("database operation failed")

// Repository errors for unique-keyed lookups and identifier collisions.
// ErrAmbiguousResult signals a store-integrity violation: more than one row
// shares a key that the schema declares unique.
var (
	ErrNotFound        = errors.New("page not found")
	ErrAmbiguousResult = errors.New("ambiguous result for unique key")
	ErrConflict        = errors.New("target identifier already exists")
)

// ErrMalformedPage is returned when page content cannot be split into a
// front-matter block and a body.
var ErrMalformedPage = errors.New("page content has no front matter separator")
