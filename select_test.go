package querybuilder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qb "github.com/maxshaw/querybuilder"
)

func TestSelect_Simple(t *testing.T) {
	sq, err := qb.Select("id", "name").From("users").AsString()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name FROM users", sq)
}

func TestSelect_ColumnOrderPreserved(t *testing.T) {
	sq, err := qb.Select("b", "a", "c").From("t").AsString()

	require.NoError(t, err)
	assert.Equal(t, "SELECT b, a, c FROM t", sq)
}

func TestSelect_Filter(t *testing.T) {
	sq, err := qb.Select("user").
		From("users").
		AddFilter("name", qb.Varchar("greg")).
		AsString()

	require.NoError(t, err)
	assert.Equal(t, "SELECT user FROM users WHERE name = 'greg'", sq)
}

func TestSelect_FilterInsertionOrder(t *testing.T) {
	sq, err := qb.Select("id").
		From("users").
		AddFilter("name", qb.Varchar("alice")).
		AddFilter("age", qb.Int(30)).
		AddFilter("active", qb.Bool(true)).
		AsString()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM users WHERE name = 'alice' AND age = 30 AND active = TRUE", sq)
}

func TestSelect_FilterOverwriteKeepsPosition(t *testing.T) {
	sq, err := qb.Select("id").
		From("users").
		AddFilter("name", qb.Varchar("alice")).
		AddFilter("age", qb.Int(30)).
		AddFilter("name", qb.Varchar("bob")).
		AsString()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM users WHERE name = 'bob' AND age = 30", sq)
}

func TestSelect_Limit(t *testing.T) {
	sq, err := qb.Select("user").
		From("users").
		AddFilter("name", qb.Varchar("greg")).
		Limit(1).
		AsString()

	require.NoError(t, err)
	assert.Equal(t, "SELECT user FROM users WHERE name = 'greg' LIMIT 1", sq)
}

func TestSelect_LimitZero(t *testing.T) {
	sq, err := qb.Select("id").From("users").Limit(0).AsString()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM users LIMIT 0", sq)
}

func TestSelect_LastLimitWins(t *testing.T) {
	sq, err := qb.Select("id").From("users").Limit(5).Limit(1).AsString()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM users LIMIT 1", sq)
}

func TestSelect_LimitAccessors(t *testing.T) {
	q := qb.Select("id").From("users")

	assert.False(t, q.HasLimit())
	n, ok := q.GetLimit()
	assert.False(t, ok)
	assert.Zero(t, n)

	q.Limit(3)
	assert.True(t, q.HasLimit())
	n, ok = q.GetLimit()
	assert.True(t, ok)
	assert.Equal(t, uint64(3), n)

	q.ClearLimit()
	assert.False(t, q.HasLimit())

	sq, err := q.AsString()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM users", sq)
}

func TestSelect_OrderBy(t *testing.T) {
	tests := []struct {
		name string
		q    *qb.SelectQuery
		want string
	}{
		{
			"bare",
			qb.Select("id").From("users").OrderBy("name"),
			"SELECT id FROM users ORDER BY name",
		},
		{
			"ascending",
			qb.Select("id").From("users").OrderBy("name", qb.Ascend),
			"SELECT id FROM users ORDER BY name ASC",
		},
		{
			"descending",
			qb.Select("id").From("users").OrderBy("name", qb.Descend),
			"SELECT id FROM users ORDER BY name DESC",
		},
		{
			"later call overwrites",
			qb.Select("id").From("users").OrderBy("name", qb.Descend).OrderBy("age"),
			"SELECT id FROM users ORDER BY age",
		},
		{
			"empty column clears",
			qb.Select("id").From("users").OrderBy("name").OrderBy(""),
			"SELECT id FROM users",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq, err := tt.q.AsString()
			require.NoError(t, err)
			assert.Equal(t, tt.want, sq)
		})
	}
}

func TestSelect_ClausePlacement(t *testing.T) {
	sq, err := qb.Select("id").
		From("users").
		Limit(10).
		OrderBy("age", qb.Descend).
		AddFilter("active", qb.Bool(true)).
		AsString()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM users WHERE active = TRUE ORDER BY age DESC LIMIT 10", sq)
}

func TestSelect_RenderIsIdempotent(t *testing.T) {
	q := qb.Select("id").From("users").AddFilter("name", qb.Varchar("greg")).Limit(2)

	first, err := q.AsString()
	require.NoError(t, err)

	second, err := q.AsString()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSelect_NoColumns(t *testing.T) {
	_, err := qb.Select().From("users").AsString()

	require.Error(t, err)
	assert.ErrorIs(t, err, qb.ErrEmptyColumnList)
}

func TestSelect_EmptyTable(t *testing.T) {
	_, err := qb.Select("id").From("").AsString()

	require.Error(t, err)
	assert.ErrorIs(t, err, qb.ErrEmptyTableName)
}

func TestSelect_NoTable(t *testing.T) {
	_, err := qb.Select("id").AsString()

	require.Error(t, err)
	assert.ErrorIs(t, err, qb.ErrQueryIncomplete)
}

func TestSelect_BuildError(t *testing.T) {
	_, err := qb.Select("id").AsString()
	require.Error(t, err)

	var be *qb.BuildError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "select", be.Stmt)
	assert.ErrorIs(t, be.Err, qb.ErrQueryIncomplete)
}

func TestSelect_FirstErrorWins(t *testing.T) {
	// Both mistakes are present; the first one is reported.
	_, err := qb.Select().From("").AsString()

	require.Error(t, err)
	assert.ErrorIs(t, err, qb.ErrEmptyColumnList)
	assert.NotErrorIs(t, err, qb.ErrEmptyTableName)
}

func TestSelect_StringEmptyOnError(t *testing.T) {
	assert.Empty(t, qb.Select("id").String())
}
