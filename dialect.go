package entities

import (
	"database/sql"
	"slices"

	"github.com/samber/lo"
)

// KeyRetrieval tells the CRUD functions how an INSERT reports the generated key.
type KeyRetrieval int

const (
	// ScalarKey reads the key from the single row produced by the INSERT statement.
	ScalarKey KeyRetrieval = iota
	// LastInsertID reads the key from sql.Result.LastInsertId.
	LastInsertID
)

type Dialect interface {
	Name() string
	QuoteIdent(name string) string
	Param(name string) string
	DefaultSchema() string
	DeleteKeyword() string
	DefaultValues() string
	IdentitySuffix(key string) string
	KeyRetrieval() KeyRetrieval
	Bind(query string, params Params) (string, []any, error)
}

// namedArgs converts params into sql.NamedArg values ordered by name.
func namedArgs(params Params) []any {
	names := lo.Keys(params)
	slices.Sort(names)
	return lo.Map(names, func(name string, _ int) any {
		return sql.Named(name, params[name])
	})
}
