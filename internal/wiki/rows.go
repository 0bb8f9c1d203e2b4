// Package wiki implements the domain-level page and user operations on top
// of the table descriptors and the executor. The store is the single source
// of truth; Page and User values are transient reconstructions of rows.
package wiki

import (
	"fmt"
	"time"

	"github.com/tomebase/tome/pkg/types"
)

// Row value coercion. The driver hands back TEXT as string, BLOB as []byte,
// and INTEGER as int64; these helpers normalize across that.

func rowString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

func rowInt(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	default:
		return 0
	}
}

func rowBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	default:
		return rowInt(v) != 0
	}
}

func rowTime(v any) time.Time {
	t, err := time.Parse(time.RFC3339, rowString(v))
	if err != nil {
		return time.Time{}
	}
	return t
}

// pageFromRow rebuilds a Page from a full PAGE row in natural column order.
// The derived fields stay zero; the caller renders when it needs them.
func pageFromRow(row []any) (*types.Page, error) {
	if len(row) != len(pageColumns) {
		return nil, fmt.Errorf("%w: page row has %d columns", types.ErrDatabase, len(row))
	}
	return &types.Page{
		ID:          rowInt(row[0]),
		URL:         rowString(row[1]),
		Content:     rowString(row[3]),
		DateCreated: rowTime(row[4]),
		LastEdited:  rowTime(row[5]),
	}, nil
}

// pageColumns mirrors the PAGE descriptor's natural column order.
var pageColumns = []string{"id", "uri", "title", "content", "date_created", "last_edited"}

// userFromRow rebuilds a User from a full USER row in natural column order.
func userFromRow(row []any) (*types.User, error) {
	if len(row) != 5 {
		return nil, fmt.Errorf("%w: user row has %d columns", types.ErrDatabase, len(row))
	}
	return &types.User{
		ID:       rowInt(row[0]),
		Username: rowString(row[1]),
		Password: rowString(row[2]),
		Email:    rowString(row[3]),
		Active:   rowBool(row[4]),
	}, nil
}
