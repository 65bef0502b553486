package querybuilder

import "strings"

type InsertQuery struct {
	table  string
	values pairs

	err error
}

// InsertInto starts an INSERT statement into the given table.
func InsertInto(table string) *InsertQuery {
	q := &InsertQuery{table: table}
	if table == "" {
		q.err = ErrEmptyTableName
	}
	return q
}

// Set adds the value to insert for a column. Setting an already set column
// replaces its value in place.
func (q *InsertQuery) Set(column string, v Value) *InsertQuery {
	q.values = q.values.set(column, v)
	return q
}

func (q *InsertQuery) AsString() (string, error) {
	if err := q.validate(); err != nil {
		return "", &BuildError{Stmt: "insert", Err: err}
	}

	var sb strings.Builder

	sb.WriteString("INSERT INTO ")
	sb.WriteString(q.table)
	sb.WriteString("(")
	sb.WriteString(q.values.columns())
	sb.WriteString(") VALUES(")
	sb.WriteString(q.values.values())
	sb.WriteString(")")

	sq := sb.String()
	logSQL("insert", sq)

	return sq, nil
}

func (q *InsertQuery) validate() error {
	if q.err != nil {
		return q.err
	}
	if len(q.values) == 0 {
		return ErrEmptyValueList
	}
	return nil
}

// String implements the Stringer interface. It is empty when the statement
// cannot be rendered.
func (q *InsertQuery) String() string {
	sq, err := q.AsString()
	if err != nil {
		return ""
	}
	return sq
}
