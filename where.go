package querybuilder

import (
	"strings"

	"github.com/samber/lo"
)

type pair struct {
	col string
	val Value
}

// pairs keeps column/value bindings in first-insertion order with unique
// columns; setting a column again replaces its value in place.
type pairs []pair

func (p pairs) set(col string, v Value) pairs {
	for i := range p {
		if p[i].col == col {
			p[i].val = v
			return p
		}
	}
	return append(p, pair{col: col, val: v})
}

func (p pairs) equations(sep string) string {
	return strings.Join(lo.Map(p, func(e pair, _ int) string {
		return e.col + " = " + e.val.SQL()
	}), sep)
}

func (p pairs) columns() string {
	return strings.Join(lo.Map(p, func(e pair, _ int) string { return e.col }), ", ")
}

func (p pairs) values() string {
	return strings.Join(lo.Map(p, func(e pair, _ int) string { return e.val.SQL() }), ", ")
}
