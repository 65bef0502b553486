package querybuilder

import "github.com/rs/zerolog"

var qlog = zerolog.Nop()

// SetLogger enables debug logging of every rendered statement. Logging is
// disabled by default. Call it once at start-up, before builders are shared
// between goroutines.
func SetLogger(l zerolog.Logger) {
	qlog = l.With().Str("component", "querybuilder").Logger()
}

func logSQL(stmt, sql string) {
	qlog.Debug().Str("stmt", stmt).Str("sql", sql).Msg("rendered statement")
}
