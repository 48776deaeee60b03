package entities

import "strings"

type sqliteDialect struct{}

func SQLite() Dialect { return &sqliteDialect{} }

func (d *sqliteDialect) Name() string               { return "sqlite" }
func (d *sqliteDialect) Param(name string) string   { return "@" + name }
func (d *sqliteDialect) DefaultSchema() string      { return "main" }
func (d *sqliteDialect) DeleteKeyword() string      { return "DELETE FROM" }
func (d *sqliteDialect) DefaultValues() string      { return "DEFAULT VALUES" }
func (d *sqliteDialect) KeyRetrieval() KeyRetrieval { return ScalarKey }

func (d *sqliteDialect) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// RETURNING needs SQLite 3.35 or newer.
func (d *sqliteDialect) IdentitySuffix(key string) string {
	return " RETURNING " + d.QuoteIdent(key)
}

func (d *sqliteDialect) Bind(query string, params Params) (string, []any, error) {
	return query, namedArgs(params), nil
}
