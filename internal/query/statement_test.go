package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomebase/tome/pkg/types"
)

func TestBuildInsert(t *testing.T) {
	st := Build("PAGE", VerbInsert, nil, []Assign{
		{Column: "uri", Value: "home"},
		{Column: "title", Value: "Home"},
	})

	cmd, args, err := st.Command()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO PAGE (uri, title) VALUES (?, ?);", cmd)
	assert.Equal(t, []any{"home", "Home"}, args)
}

func TestBuildSelect(t *testing.T) {
	tests := []struct {
		name string
		cols []string
		want string
	}{
		{
			name: "no columns projects all",
			cols: nil,
			want: "SELECT * FROM PAGE;",
		},
		{
			name: "explicit columns",
			cols: []string{"id", "uri"},
			want: "SELECT id, uri FROM PAGE;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, err := Build("PAGE", VerbSelect, tt.cols, nil).Command()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd)
			assert.Empty(t, args)
		})
	}
}

func TestBuildUpdate(t *testing.T) {
	st := Build("PAGE", VerbUpdate, nil, []Assign{
		{Column: "title", Value: "New"},
		{Column: "content", Value: []byte("body")},
	}).Where("", Assign{Column: "uri", Value: "home"})

	cmd, args, err := st.Command()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE PAGE SET title = ?, content = ? WHERE uri = ?;", cmd)
	assert.Equal(t, []any{"New", []byte("body"), "home"}, args)
}

func TestBuildDelete(t *testing.T) {
	cmd, args, err := Build("PAGE", VerbDelete, nil, nil).
		Where("", Assign{Column: "uri", Value: "home"}).Command()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM PAGE WHERE uri = ?;", cmd)
	assert.Equal(t, []any{"home"}, args)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		st   *Statement
	}{
		{
			name: "unknown verb",
			st:   Build("PAGE", "UPSERT", nil, nil),
		},
		{
			name: "insert with no fields",
			st:   Build("PAGE", VerbInsert, nil, nil),
		},
		{
			name: "update with no assignments",
			st:   Build("PAGE", VerbUpdate, nil, nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.st.Command()
			require.ErrorIs(t, err, types.ErrInvalidQuery)
		})
	}
}

func TestWhereJoins(t *testing.T) {
	tests := []struct {
		name  string
		join  string
		conds []Assign
		want  string
	}{
		{
			name:  "empty join defaults to AND",
			join:  "",
			conds: []Assign{{Column: "a", Value: 1}, {Column: "b", Value: 2}},
			want:  "SELECT * FROM T WHERE a = ? AND b = ?;",
		},
		{
			name:  "explicit AND",
			join:  "AND",
			conds: []Assign{{Column: "a", Value: 1}, {Column: "b", Value: 2}},
			want:  "SELECT * FROM T WHERE a = ? AND b = ?;",
		},
		{
			name:  "OR join",
			join:  "OR",
			conds: []Assign{{Column: "a", Value: 1}, {Column: "b", Value: 2}},
			want:  "SELECT * FROM T WHERE a = ? OR b = ?;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, err := Build("T", VerbSelect, nil, nil).Where(tt.join, tt.conds...).Command()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd)
			assert.Len(t, args, len(tt.conds))
		})
	}
}

func TestWhereErrors(t *testing.T) {
	t.Run("unknown join", func(t *testing.T) {
		_, _, err := Build("T", VerbSelect, nil, nil).
			Where("XOR", Assign{Column: "a", Value: 1}).Command()
		require.ErrorIs(t, err, types.ErrInvalidQuery)
	})

	t.Run("no conditions", func(t *testing.T) {
		_, _, err := Build("T", VerbSelect, nil, nil).Where("").Command()
		require.ErrorIs(t, err, types.ErrInvalidQuery)
	})
}

func TestChainingAfterErrorIsNoOp(t *testing.T) {
	st := Build("T", "BOGUS", nil, nil).
		Where("", Assign{Column: "a", Value: 1}).
		GroupBy("a")

	_, _, err := st.Command()
	require.ErrorIs(t, err, types.ErrInvalidQuery)
	assert.Contains(t, err.Error(), "BOGUS")
}

func TestGroupBy(t *testing.T) {
	cmd, _, err := Build("T", VerbSelect, []string{"a", "b"}, nil).GroupBy("a", "b").Command()
	require.NoError(t, err)
	assert.Equal(t, "SELECT a, b FROM T GROUP BY a, b;", cmd)
}

func TestVerb(t *testing.T) {
	assert.Equal(t, VerbSelect, Build("T", VerbSelect, nil, nil).Verb())
}
