package entities

import (
	"strings"

	"github.com/jmoiron/sqlx"
)

type mysqlDialect struct{}

// MySQL returns the MySQL dialect. Statements use sqlx :name parameters which
// Bind compiles into positional ? placeholders; the generated key is read
// from LastInsertId.
func MySQL() Dialect { return &mysqlDialect{} }

func (d *mysqlDialect) Name() string                   { return "mysql" }
func (d *mysqlDialect) Param(name string) string       { return ":" + name }
func (d *mysqlDialect) DefaultSchema() string          { return "" }
func (d *mysqlDialect) DeleteKeyword() string          { return "DELETE FROM" }
func (d *mysqlDialect) DefaultValues() string          { return "() VALUES ()" }
func (d *mysqlDialect) IdentitySuffix(_ string) string { return "" }
func (d *mysqlDialect) KeyRetrieval() KeyRetrieval     { return LastInsertID }

func (d *mysqlDialect) QuoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func (d *mysqlDialect) Bind(query string, params Params) (string, []any, error) {
	return sqlx.Named(query, map[string]any(params))
}
