package querybuilder_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qb "github.com/maxshaw/querybuilder"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	qb.SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	defer qb.SetLogger(zerolog.Nop())

	_, err := qb.Select("user").From("users").AsString()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"component":"querybuilder"`)
	assert.Contains(t, out, `"stmt":"select"`)
	assert.Contains(t, out, "SELECT user FROM users")
}

func TestSetLogger_FailedRenderNotLogged(t *testing.T) {
	var buf bytes.Buffer
	qb.SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	defer qb.SetLogger(zerolog.Nop())

	_, err := qb.Select("id").AsString()
	require.Error(t, err)
	assert.Empty(t, buf.String())
}
