package entities

import (
	"fmt"

	"github.com/samber/lo"
)

// Table describes how an entity type maps onto a database table.
type Table struct {
	Name    string
	Schema  string
	Columns []Column
}

// Column maps one entity field onto a physical column.
type Column struct {
	// Field is the bind parameter name, usually the Go field name.
	Field string
	// Name is the physical column name. Empty means Field.
	Name string

	Key      bool
	AltKey   bool
	NoInsert bool
	NoUpdate bool

	// Modified names the field written in place of this column by UPDATE.
	// Only meaningful together with NoUpdate.
	Modified string
}

func (c Column) column() string {
	if c.Name == "" {
		return c.Field
	}
	return c.Name
}

func (t *Table) Validate() error {
	if t == nil || t.Name == "" {
		return ErrNoTableName
	}
	if !lo.ContainsBy(t.Columns, func(c Column) bool { return c.Key }) {
		return fmt.Errorf("%w: table %q", ErrNoPrimaryKey, t.Name)
	}

	fields := make(map[string]bool, len(t.Columns))
	names := make(map[string]bool, len(t.Columns))
	for i, c := range t.Columns {
		if c.Field == "" {
			return fmt.Errorf("%w: table %q: column %d has no field", ErrInvalidColumn, t.Name, i)
		}
		if fields[c.Field] {
			return fmt.Errorf("%w: table %q: duplicate field %q", ErrInvalidColumn, t.Name, c.Field)
		}
		if names[c.column()] {
			return fmt.Errorf("%w: table %q: duplicate column %q", ErrInvalidColumn, t.Name, c.column())
		}
		fields[c.Field] = true
		names[c.column()] = true
	}
	return nil
}

// Keys returns the primary key columns in declared order.
func (t *Table) Keys() []Column {
	return lo.Filter(t.Columns, func(c Column, _ int) bool { return c.Key })
}

// AltKeys returns the alternate key columns in declared order.
func (t *Table) AltKeys() []Column {
	return lo.Filter(t.Columns, func(c Column, _ int) bool { return c.AltKey })
}

func (t *Table) insertable() []Column {
	return lo.Filter(t.Columns, func(c Column, _ int) bool { return !c.Key && !c.NoInsert })
}

// updatable resolves the SET list: key columns are skipped and a NoUpdate
// column is replaced by its Modified counterpart, which is emitted once.
func (t *Table) updatable() []Column {
	byField := lo.KeyBy(t.Columns, func(c Column) string { return c.Field })
	emitted := make(map[string]bool, len(t.Columns))

	out := make([]Column, 0, len(t.Columns))
	for _, c := range t.Columns {
		if c.Key {
			continue
		}
		if c.NoUpdate {
			if c.Modified == "" || emitted[c.Modified] {
				continue
			}
			counterpart, ok := byField[c.Modified]
			if !ok {
				counterpart = Column{Field: c.Modified}
			}
			emitted[c.Modified] = true
			out = append(out, counterpart)
			continue
		}
		if emitted[c.Field] {
			continue
		}
		emitted[c.Field] = true
		out = append(out, c)
	}
	return out
}
