package entities

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Builder is the convention based StatementBuilder.
type Builder struct {
	dialect Dialect
}

func NewBuilder(d Dialect) *Builder {
	return &Builder{dialect: d}
}

func (b *Builder) Dialect() Dialect { return b.dialect }

func (b *Builder) BuildStatements(t *Table) (StatementSet, error) {
	if err := t.Validate(); err != nil {
		return StatementSet{}, err
	}

	target := b.qualified(t)
	keys := columnsEqual(t.Keys()).toSQL(b.dialect)

	set := StatementSet{
		Insert:  b.insertSQL(t, target),
		Update:  b.updateSQL(t, target, keys),
		Delete:  fmt.Sprintf("%s %s WHERE %s", b.dialect.DeleteKeyword(), target, keys),
		GetByID: fmt.Sprintf("SELECT * FROM %s WHERE %s", target, keys),
	}
	if alt := t.AltKeys(); len(alt) > 0 {
		set.GetByAlternateKey = fmt.Sprintf("SELECT * FROM %s WHERE %s",
			target, columnsEqual(alt).toSQL(b.dialect))
	}
	return set, nil
}

func (b *Builder) qualified(t *Table) string {
	schema := t.Schema
	if schema == "" {
		schema = b.dialect.DefaultSchema()
	}
	if schema == "" {
		return b.dialect.QuoteIdent(t.Name)
	}
	return b.dialect.QuoteIdent(schema) + "." + b.dialect.QuoteIdent(t.Name)
}

func (b *Builder) insertSQL(t *Table, target string) string {
	suffix := b.dialect.IdentitySuffix(t.Keys()[0].column())

	cols := t.insertable()
	if len(cols) == 0 {
		return fmt.Sprintf("INSERT INTO %s %s%s", target, b.dialect.DefaultValues(), suffix)
	}

	names := lo.Map(cols, func(c Column, _ int) string { return b.dialect.QuoteIdent(c.column()) })
	params := lo.Map(cols, func(c Column, _ int) string { return b.dialect.Param(c.Field) })
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)%s",
		target,
		strings.Join(names, ", "),
		strings.Join(params, ", "),
		suffix,
	)
}

func (b *Builder) updateSQL(t *Table, target, keys string) string {
	cols := t.updatable()
	if len(cols) == 0 {
		return ""
	}

	setClauses := lo.Map(cols, func(c Column, _ int) string { return eq(c).toSQL(b.dialect) })
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s", target, strings.Join(setClauses, ", "), keys)
}
