// Package gen generates table binding source for querybuilder: per-table
// name constants, column constants and statement constructors pre-bound to
// the table.
package gen

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/tools/imports"
)

//go:embed template/*
var tplDir embed.FS

// initialisms are name fragments kept fully upper in generated identifiers,
// so a column "api_url" becomes APIURL rather than ApiUrl.
var initialisms = []string{"id", "uuid", "url", "uri", "sql", "api"}

// Table describes one table to generate bindings for. Columns keep their
// declaration order in everything generated.
type Table struct {
	Name    string
	Columns []string
}

type column struct {
	Column, Ident string
}

type table struct {
	Table, Ident string

	Columns []column
	Idents  []string
}

// Generate renders the binding file for the given tables, formatted and
// ready to write to disk as <pkg>.go.
func Generate(pkg string, tables ...Table) ([]byte, error) {
	if pkg == "" {
		return nil, errors.New("gen: empty package name")
	}
	if len(tables) == 0 {
		return nil, errors.New("gen: no tables")
	}

	t, err := template.New("gen").Funcs(template.FuncMap{
		"join": strings.Join,
	}).ParseFS(tplDir, "template/*.tmpl")
	if err != nil {
		return nil, err
	}

	var (
		models []table
		names  []string
	)
	for _, tbl := range tables {
		if tbl.Name == "" {
			return nil, errors.New("gen: empty table name")
		}
		if lo.Contains(names, tbl.Name) {
			return nil, fmt.Errorf("gen: duplicate table: %s", tbl.Name)
		}
		names = append(names, tbl.Name)

		if len(tbl.Columns) == 0 {
			return nil, fmt.Errorf("gen: table %s has no columns", tbl.Name)
		}

		m := table{Table: tbl.Name, Ident: pascal(tbl.Name)}
		for _, col := range tbl.Columns {
			if col == "" {
				return nil, fmt.Errorf("gen: table %s has an empty column name", tbl.Name)
			}

			ident := m.Ident + pascal(col)
			if lo.Contains(m.Idents, ident) {
				return nil, fmt.Errorf("gen: table %s has a duplicate column: %s", tbl.Name, col)
			}

			m.Columns = append(m.Columns, column{Column: col, Ident: ident})
			m.Idents = append(m.Idents, ident)
		}

		models = append(models, m)
	}

	var out bytes.Buffer
	if err := t.ExecuteTemplate(&out, "table.tmpl", map[string]any{
		"Pkg":    pkg,
		"Tables": models,
	}); err != nil {
		return nil, err
	}

	b, err := imports.Process(pkg+".go", out.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("gen: generated source for %s does not compile: %w", pkg, err)
	}

	return b, nil
}

func pascal(s string) string {
	var sb strings.Builder
	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}

		if lo.Contains(initialisms, part) {
			sb.WriteString(strings.ToUpper(part))
			continue
		}

		for i, c := range part {
			if i == 0 {
				sb.WriteRune(unicode.ToUpper(c))
			} else {
				sb.WriteRune(c)
			}
		}
	}
	return sb.String()
}
