package entities

import (
	"strings"

	"github.com/jackc/pgx/v5"
)

type postgresDialect struct{}

// Postgres returns the PostgreSQL dialect. It expects the pgx stdlib driver:
// parameters are passed as a single pgx.NamedArgs value which pgx rewrites
// into positional placeholders.
func Postgres() Dialect { return &postgresDialect{} }

func (d *postgresDialect) Name() string               { return "postgres" }
func (d *postgresDialect) Param(name string) string   { return "@" + name }
func (d *postgresDialect) DefaultSchema() string      { return "public" }
func (d *postgresDialect) DeleteKeyword() string      { return "DELETE FROM" }
func (d *postgresDialect) DefaultValues() string      { return "DEFAULT VALUES" }
func (d *postgresDialect) KeyRetrieval() KeyRetrieval { return ScalarKey }

func (d *postgresDialect) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (d *postgresDialect) IdentitySuffix(key string) string {
	return " RETURNING " + d.QuoteIdent(key)
}

func (d *postgresDialect) Bind(query string, params Params) (string, []any, error) {
	return query, []any{pgx.NamedArgs(params)}, nil
}
