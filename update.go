package querybuilder

import (
	"strconv"
	"strings"
)

// UpdateQuery renders without a WHERE clause when no filter was added; the
// statement then touches every row.
type UpdateQuery struct {
	table   string
	set     pairs
	filters pairs
	limit   *uint64

	err error
}

// Update starts an UPDATE statement against the given table.
func Update(table string) *UpdateQuery {
	q := &UpdateQuery{table: table}
	if table == "" {
		q.err = ErrEmptyTableName
	}
	return q
}

// Set adds the assignment "column = v" to the SET clause. Setting an already
// set column replaces its value in place.
func (q *UpdateQuery) Set(column string, v Value) *UpdateQuery {
	q.set = q.set.set(column, v)
	return q
}

// AddFilter adds the equality condition "column = v" to the WHERE clause.
// Filtering an already filtered column replaces its value in place.
func (q *UpdateQuery) AddFilter(column string, v Value) *UpdateQuery {
	q.filters = q.filters.set(column, v)
	return q
}

func (q *UpdateQuery) Limit(n uint64) *UpdateQuery {
	q.limit = &n
	return q
}

func (q *UpdateQuery) HasLimit() bool {
	return q.limit != nil
}

func (q *UpdateQuery) GetLimit() (uint64, bool) {
	if q.limit == nil {
		return 0, false
	}
	return *q.limit, true
}

func (q *UpdateQuery) ClearLimit() *UpdateQuery {
	q.limit = nil
	return q
}

func (q *UpdateQuery) AsString() (string, error) {
	if err := q.validate(); err != nil {
		return "", &BuildError{Stmt: "update", Err: err}
	}

	var sb strings.Builder

	sb.WriteString("UPDATE ")
	sb.WriteString(q.table)
	sb.WriteString(" SET ")
	sb.WriteString(q.set.equations(", "))

	if len(q.filters) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(q.filters.equations(" AND "))
	}

	if q.limit != nil {
		sb.WriteString(" LIMIT ")
		sb.WriteString(strconv.FormatUint(*q.limit, 10))
	}

	sq := sb.String()
	logSQL("update", sq)

	return sq, nil
}

func (q *UpdateQuery) validate() error {
	if q.err != nil {
		return q.err
	}
	if len(q.set) == 0 {
		return ErrEmptyValueList
	}
	return nil
}

// String implements the Stringer interface. It is empty when the statement
// cannot be rendered.
func (q *UpdateQuery) String() string {
	sq, err := q.AsString()
	if err != nil {
		return ""
	}
	return sq
}
