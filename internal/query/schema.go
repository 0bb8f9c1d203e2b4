package query

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/tomebase/tome/pkg/types"
)

// Schema DDL for the four entity tables. PAGE.uri uniqueness is load-bearing
// for every lookup and for move.
const (
	createUser = `CREATE TABLE USER (
    id INTEGER PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    email TEXT NOT NULL,
    active INTEGER NOT NULL
);`

	createPage = `CREATE TABLE PAGE (
    id INTEGER PRIMARY KEY,
    uri TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    content BLOB NOT NULL,
    date_created TEXT NOT NULL,
    last_edited TEXT NOT NULL
);`

	createCategory = `CREATE TABLE CATEGORY (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);`

	createTag = `CREATE TABLE TAG (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    category_id INTEGER,
    FOREIGN KEY (category_id) REFERENCES CATEGORY(id)
);`
)

// schemaDDL lists the CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createUser,
	createPage,
	createCategory,
	createTag,
}

// seedHomeContent is the placeholder source for the first-run home page.
const seedHomeContent = "title: Home\ntags: \n\nWelcome to your new wiki.\n\nEdit this page to get started, or use [[create|the create page]] to add more."

// EnsureStore creates the store file, its schema, and the seeded home page on
// first run. When the file already exists it does nothing. Returns an
// executor bound to the store either way.
func EnsureStore(path string, log *zap.SugaredLogger) (*Executor, error) {
	exec := NewExecutor(path, log)

	if _, err := os.Stat(path); err == nil {
		return exec, nil
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: stat %s: %w", types.ErrDatabase, path, err)
	}

	log.Infow("creating store", "path", path)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", types.ErrDatabase, path, err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: create schema: %w", types.ErrDatabase, err)
		}
	}
	if err := db.Close(); err != nil {
		return nil, fmt.Errorf("%w: close: %w", types.ErrDatabase, err)
	}

	now := time.Now()
	if _, err := exec.Exec(InsertPage("home", "Home", []byte(seedHomeContent), now, now)); err != nil {
		return nil, fmt.Errorf("seed home page: %w", err)
	}
	return exec, nil
}
