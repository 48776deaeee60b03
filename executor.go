package entities

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/reflectx"
)

// fieldMapper resolves result columns the way Column does: the db tag when
// present, else the Go field name unchanged. sqlx's default mapper lowercases
// untagged names, which would miss columns such as Id.
var fieldMapper = reflectx.NewMapperFunc("db", func(name string) string { return name })

// Mapper returns the field mapper used for entity reads. Set it on a
// *sqlx.DB to scan entities outside this package with the same rules.
func Mapper() *reflectx.Mapper { return fieldMapper }

// Executor runs generated statements. *sqlx.DB, *sqlx.Tx and *sqlx.Conn all
// satisfy it; pass a *sqlx.Tx to run an operation inside the caller's
// transaction.
type Executor interface {
	QueryRowxContext(ctx context.Context, query string, args ...any) *sqlx.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

var (
	_ Executor = (*sqlx.DB)(nil)
	_ Executor = (*sqlx.Tx)(nil)
	_ Executor = (*sqlx.Conn)(nil)
)
