// Package querybuilder builds SQL statement strings through fluent,
// chainable builders:
//
//	q := querybuilder.Select("user").From("users")
//	q.AddFilter("name", querybuilder.Varchar("greg"))
//	q.Limit(1)
//
//	sql, err := q.AsString()
//	// SELECT user FROM users WHERE name = 'greg' LIMIT 1
//
// Mutating calls never fail mid-chain; all validation happens when the
// statement is rendered, and AsString reports the first offending call.
// Text values render single-quoted with embedded quotes doubled. The package
// only produces text: it does not execute anything, and rendered literals are
// not a substitute for parameterized queries when the input is untrusted.
package querybuilder

// Statement is the common surface of the four statement builders.
type Statement interface {
	AsString() (string, error)
	String() string
}

var (
	_ Statement = (*SelectQuery)(nil)
	_ Statement = (*InsertQuery)(nil)
	_ Statement = (*DeleteQuery)(nil)
	_ Statement = (*UpdateQuery)(nil)
)
