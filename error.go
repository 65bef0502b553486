package querybuilder

import "errors"

// Validation errors surfaced by AsString. Factory and mutating calls never
// fail mid-chain; the first offending call is remembered on the builder and
// reported when the statement is rendered.
var (
	// ErrEmptyColumnList reports a SELECT started with no columns.
	ErrEmptyColumnList = errors.New("empty column list")

	// ErrEmptyTableName reports a statement given an empty table name.
	ErrEmptyTableName = errors.New("empty table name")

	// ErrQueryIncomplete reports a SELECT rendered before From was called.
	ErrQueryIncomplete = errors.New("incomplete query: no table set")

	// ErrEmptyValueList reports an INSERT or UPDATE with nothing to write.
	ErrEmptyValueList = errors.New("empty value list")
)

// BuildError reports why rendering a statement failed. It wraps one of the
// sentinel errors above, so errors.Is sees through it.
type BuildError struct {
	Stmt string // "select", "insert", "delete" or "update"
	Err  error
}

func (e *BuildError) Error() string {
	return "querybuilder: " + e.Stmt + ": " + e.Err.Error()
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
