package querybuilder

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Value is a literal SQL value; SQL returns its textual form.
type Value interface {
	SQL() string
}

// Varchar renders single-quoted with embedded single quotes doubled. No other
// characters are rewritten.
type Varchar string

func (v Varchar) SQL() string {
	return "'" + strings.ReplaceAll(string(v), "'", "''") + "'"
}

type Bool bool

func (b Bool) SQL() string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

type Int int64

func (i Int) SQL() string {
	return strconv.FormatInt(int64(i), 10)
}

type Uint uint64

func (u Uint) SQL() string {
	return strconv.FormatUint(uint64(u), 10)
}

type Float float64

func (f Float) SQL() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

type Decimal decimal.Decimal

func (d Decimal) SQL() string {
	return decimal.Decimal(d).String()
}

type UUID uuid.UUID

func (u UUID) SQL() string {
	return "'" + uuid.UUID(u).String() + "'"
}

// Timestamp renders as 'YYYY-MM-DD hh:mm:ss' in the time's location.
type Timestamp time.Time

func (t Timestamp) SQL() string {
	return "'" + time.Time(t).Format(time.DateTime) + "'"
}

// JSON renders V as a quoted JSON document, or NULL when V cannot be
// marshalled.
type JSON struct {
	V any
}

func (j JSON) SQL() string {
	b, err := json.Marshal(j.V)
	if err != nil {
		return Null{}.SQL()
	}
	return Varchar(b).SQL()
}

type Null struct{}

func (Null) SQL() string {
	return "NULL"
}

// Raw is written to the statement verbatim, bypassing all quoting.
type Raw string

func (r Raw) SQL() string {
	return string(r)
}
