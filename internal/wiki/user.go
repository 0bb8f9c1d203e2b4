package wiki

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tomebase/tome/internal/query"
	"github.com/tomebase/tome/pkg/types"
)

// UserManager loads and creates user accounts. Users are loaded fresh on
// every lookup; there is no in-process cache.
type UserManager struct {
	exec *query.Executor
	log  *zap.SugaredLogger
}

// NewUserManager returns a UserManager over the given executor.
func NewUserManager(exec *query.Executor, log *zap.SugaredLogger) *UserManager {
	return &UserManager{exec: exec, log: log}
}

// GetUser returns the account with the given username. Zero rows is
// ErrNotFound; more than one is ErrAmbiguousResult.
func (m *UserManager) GetUser(name string) (*types.User, error) {
	rows, err := m.exec.Exec(
		query.Users.Select().Where("", query.Assign{Column: "username", Value: name}))
	if err != nil {
		return nil, fmt.Errorf("loading user %q: %w", name, err)
	}
	switch {
	case len(rows) == 0:
		return nil, fmt.Errorf("%w: user %q", types.ErrNotFound, name)
	case len(rows) > 1:
		m.log.Errorw("username uniqueness violated", "username", name, "rows", len(rows))
		return nil, fmt.Errorf("%w: %d rows for user %q", types.ErrAmbiguousResult, len(rows), name)
	}
	return userFromRow(rows[0])
}

// AddUser creates an active account with a bcrypt-hashed password. A taken
// username is ErrConflict.
func (m *UserManager) AddUser(name, password, email string) (*types.User, error) {
	rows, err := m.exec.Exec(
		query.Users.Select("id").Where("", query.Assign{Column: "username", Value: name}))
	if err != nil {
		return nil, fmt.Errorf("checking user %q: %w", name, err)
	}
	if len(rows) > 0 {
		return nil, fmt.Errorf("%w: user %q", types.ErrConflict, name)
	}

	hash, err := types.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	if _, err := m.exec.Exec(query.InsertUser(name, hash, email, true)); err != nil {
		return nil, fmt.Errorf("inserting user %q: %w", name, err)
	}
	m.log.Infow("added user", "username", name)
	return m.GetUser(name)
}
