package querybuilder

import (
	"strconv"
	"strings"
)

type SortOrder int

const (
	Ascend SortOrder = iota
	Descend
)

type SelectQuery struct {
	cols    []string
	table   string
	filters pairs
	order   string
	limit   *uint64

	err error
}

// Select starts a SELECT statement over the given columns, kept in the given
// order.
func Select(columns ...string) *SelectQuery {
	q := &SelectQuery{cols: columns}
	if len(columns) == 0 {
		q.err = ErrEmptyColumnList
	}
	return q
}

func (q *SelectQuery) From(table string) *SelectQuery {
	if table == "" {
		q.fail(ErrEmptyTableName)
		return q
	}

	q.table = table
	return q
}

// AddFilter adds the equality condition "column = v" to the WHERE clause.
// Filtering an already filtered column replaces its value in place.
func (q *SelectQuery) AddFilter(column string, v Value) *SelectQuery {
	q.filters = q.filters.set(column, v)
	return q
}

// OrderBy sets the ordering column: bare when no order is given, ASC or DESC
// otherwise. A later call replaces the ordering; an empty column clears it.
func (q *SelectQuery) OrderBy(column string, order ...SortOrder) *SelectQuery {
	if column == "" {
		q.order = ""
		return q
	}

	raw := column
	if len(order) > 0 {
		if order[0] == Ascend {
			raw += " ASC"
		} else {
			raw += " DESC"
		}
	}

	q.order = raw
	return q
}

func (q *SelectQuery) Limit(n uint64) *SelectQuery {
	q.limit = &n
	return q
}

func (q *SelectQuery) HasLimit() bool {
	return q.limit != nil
}

func (q *SelectQuery) GetLimit() (uint64, bool) {
	if q.limit == nil {
		return 0, false
	}
	return *q.limit, true
}

func (q *SelectQuery) ClearLimit() *SelectQuery {
	q.limit = nil
	return q
}

func (q *SelectQuery) fail(err error) {
	if q.err == nil {
		q.err = err
	}
}

func (q *SelectQuery) AsString() (string, error) {
	if err := q.validate(); err != nil {
		return "", &BuildError{Stmt: "select", Err: err}
	}

	var sb strings.Builder

	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(q.cols, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(q.table)

	if len(q.filters) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(q.filters.equations(" AND "))
	}

	if q.order != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(q.order)
	}

	if q.limit != nil {
		sb.WriteString(" LIMIT ")
		sb.WriteString(strconv.FormatUint(*q.limit, 10))
	}

	sq := sb.String()
	logSQL("select", sq)

	return sq, nil
}

func (q *SelectQuery) validate() error {
	if q.err != nil {
		return q.err
	}
	if q.table == "" {
		return ErrQueryIncomplete
	}
	return nil
}

// String implements the Stringer interface. It is empty when the statement
// cannot be rendered.
func (q *SelectQuery) String() string {
	sq, err := q.AsString()
	if err != nil {
		return ""
	}
	return sq
}
