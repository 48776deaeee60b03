package entities

import "strings"

type sqlServerDialect struct{}

// SQLServer returns the Microsoft SQL Server dialect. Parameters are bound
// as sql.NamedArg values, which go-mssqldb sends as @name parameters.
func SQLServer() Dialect { return &sqlServerDialect{} }

func (d *sqlServerDialect) Name() string               { return "sqlserver" }
func (d *sqlServerDialect) Param(name string) string   { return "@" + name }
func (d *sqlServerDialect) DefaultSchema() string      { return "dbo" }
func (d *sqlServerDialect) DeleteKeyword() string      { return "DELETE" }
func (d *sqlServerDialect) DefaultValues() string      { return "DEFAULT VALUES" }
func (d *sqlServerDialect) KeyRetrieval() KeyRetrieval { return ScalarKey }

func (d *sqlServerDialect) QuoteIdent(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

func (d *sqlServerDialect) IdentitySuffix(_ string) string {
	return "; SELECT SCOPE_IDENTITY()"
}

func (d *sqlServerDialect) Bind(query string, params Params) (string, []any, error) {
	return query, namedArgs(params), nil
}
