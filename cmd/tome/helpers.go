// Shared helpers for tome CLI commands.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tomebase/tome/internal/query"
	"github.com/tomebase/tome/internal/wiki"
)

// openStore opens the wiki database, creating the schema and the seed home
// page on first run.
func openStore() (*query.Executor, error) {
	exec, err := query.EnsureStore(cfg.DBFile, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return exec, nil
}

// openRepository opens the store and wraps it in a page repository.
func openRepository() (*wiki.Repository, error) {
	exec, err := openStore()
	if err != nil {
		return nil, err
	}
	return wiki.NewRepository(exec, logger), nil
}

// openUserManager opens the store and wraps it in a user manager.
func openUserManager() (*wiki.UserManager, error) {
	exec, err := openStore()
	if err != nil {
		return nil, err
	}
	return wiki.NewUserManager(exec, logger), nil
}

// readSource reads page source from the named file, or from stdin when the
// name is empty or "-".
func readSource(name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}
