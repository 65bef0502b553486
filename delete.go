package querybuilder

import (
	"strconv"
	"strings"
)

// DeleteQuery renders without a WHERE clause when no filter was added; the
// statement then clears the whole table.
type DeleteQuery struct {
	table   string
	filters pairs
	limit   *uint64

	err error
}

// DeleteFrom starts a DELETE statement against the given table.
func DeleteFrom(table string) *DeleteQuery {
	q := &DeleteQuery{table: table}
	if table == "" {
		q.err = ErrEmptyTableName
	}
	return q
}

// AddFilter adds the equality condition "column = v" to the WHERE clause.
// Filtering an already filtered column replaces its value in place.
func (q *DeleteQuery) AddFilter(column string, v Value) *DeleteQuery {
	q.filters = q.filters.set(column, v)
	return q
}

func (q *DeleteQuery) Limit(n uint64) *DeleteQuery {
	q.limit = &n
	return q
}

func (q *DeleteQuery) HasLimit() bool {
	return q.limit != nil
}

func (q *DeleteQuery) GetLimit() (uint64, bool) {
	if q.limit == nil {
		return 0, false
	}
	return *q.limit, true
}

func (q *DeleteQuery) ClearLimit() *DeleteQuery {
	q.limit = nil
	return q
}

func (q *DeleteQuery) AsString() (string, error) {
	if err := q.validate(); err != nil {
		return "", &BuildError{Stmt: "delete", Err: err}
	}

	var sb strings.Builder

	sb.WriteString("DELETE FROM ")
	sb.WriteString(q.table)

	if len(q.filters) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(q.filters.equations(" AND "))
	}

	if q.limit != nil {
		sb.WriteString(" LIMIT ")
		sb.WriteString(strconv.FormatUint(*q.limit, 10))
	}

	sq := sb.String()
	logSQL("delete", sq)

	return sq, nil
}

func (q *DeleteQuery) validate() error {
	return q.err
}

// String implements the Stringer interface. It is empty when the statement
// cannot be rendered.
func (q *DeleteQuery) String() string {
	sq, err := q.AsString()
	if err != nil {
		return ""
	}
	return sq
}
