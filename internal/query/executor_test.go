package query

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/tomebase/tome/pkg/types"
)

// newTestStore creates a fresh seeded store in a temp directory.
func newTestStore(t *testing.T) *Executor {
	t.Helper()
	exec, err := EnsureStore(filepath.Join(t.TempDir(), "wiki.db"), zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)
	return exec
}

func TestEnsureStoreSeedsHomePage(t *testing.T) {
	exec := newTestStore(t)

	rows, err := exec.Exec(Pages.Select("uri", "title"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "home", rows[0][0])
	assert.Equal(t, "Home", rows[0][1])
}

func TestEnsureStoreIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wiki.db")
	log := zaptest.NewLogger(t).Sugar()

	_, err := EnsureStore(path, log)
	require.NoError(t, err)
	exec, err := EnsureStore(path, log)
	require.NoError(t, err)

	rows, err := exec.Exec(Pages.Select("id"))
	require.NoError(t, err)
	assert.Len(t, rows, 1, "second EnsureStore must not reseed")
}

func TestExecInsertSelectRoundTrip(t *testing.T) {
	exec := newTestStore(t)
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	_, err := exec.Exec(InsertPage("notes", "Notes", []byte("title: Notes\ntags: \n\nbody"), created, created))
	require.NoError(t, err)

	rows, err := exec.Exec(Pages.Select().Where("", Assign{Column: "uri", Value: "notes"}))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	require.Len(t, row, 6)
	assert.Equal(t, "notes", row[1])
	assert.Equal(t, "Notes", row[2])
	assert.Equal(t, []byte("title: Notes\ntags: \n\nbody"), row[3])
	assert.Equal(t, "2026-08-01T12:00:00Z", row[4])
}

func TestExecUpdate(t *testing.T) {
	exec := newTestStore(t)

	_, err := exec.Exec(Pages.Update(Assign{Column: "title", Value: "Renamed"}).
		Where("", Assign{Column: "uri", Value: "home"}))
	require.NoError(t, err)

	rows, err := exec.Exec(Pages.Select("title").Where("", Assign{Column: "uri", Value: "home"}))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Renamed", rows[0][0])
}

func TestExecScopedDelete(t *testing.T) {
	exec := newTestStore(t)

	_, err := exec.Exec(Pages.Delete().Where("", Assign{Column: "uri", Value: "home"}))
	require.NoError(t, err)

	rows, err := exec.Exec(Pages.Select("id"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestExecConstructionErrorNeverReachesStore(t *testing.T) {
	// A path that cannot be opened proves the statement error surfaces first.
	exec := NewExecutor(filepath.Join(t.TempDir(), "missing", "wiki.db"), zaptest.NewLogger(t).Sugar())

	_, err := exec.Exec(Pages.Select("nonexistent"))
	require.ErrorIs(t, err, types.ErrInvalidQuery)
	assert.NotErrorIs(t, err, types.ErrDatabase)
}

func TestExecEnforcesForeignKeys(t *testing.T) {
	exec := newTestStore(t)

	_, err := exec.Exec(InsertTag("orphan", 999))
	require.ErrorIs(t, err, types.ErrDatabase, "tag referencing a missing category must be rejected")

	_, err = exec.Exec(InsertCategory("languages"))
	require.NoError(t, err)

	cats, err := exec.Exec(Categories.Select("id").Where("", Assign{Column: "name", Value: "languages"}))
	require.NoError(t, err)
	require.Len(t, cats, 1)

	_, err = exec.Exec(InsertTag("golang", cats[0][0].(int64)))
	require.NoError(t, err)
}

func TestExecUniqueViolationWrapsErrDatabase(t *testing.T) {
	exec := newTestStore(t)
	now := time.Now()

	_, err := exec.Exec(InsertPage("home", "Duplicate", []byte("x"), now, now))
	require.ErrorIs(t, err, types.ErrDatabase)
}
