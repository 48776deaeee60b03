package entities

import (
	"strings"

	"github.com/samber/lo"
)

type predicate interface {
	toSQL(d Dialect) string
}

type eqPredicate struct {
	column string
	param  string
}

func eq(c Column) predicate { return &eqPredicate{column: c.column(), param: c.Field} }

func (p *eqPredicate) toSQL(d Dialect) string {
	return d.QuoteIdent(p.column) + "=" + d.Param(p.param)
}

type andPredicate struct{ preds []predicate }

func and(preds ...predicate) predicate { return &andPredicate{preds: preds} }

// toSQL joins without parentheses: only column equalities are ever combined.
func (p *andPredicate) toSQL(d Dialect) string {
	return strings.Join(lo.Map(p.preds, func(pr predicate, _ int) string {
		return pr.toSQL(d)
	}), " AND ")
}

func columnsEqual(cols []Column) predicate {
	return and(lo.Map(cols, func(c Column, _ int) predicate { return eq(c) })...)
}
