package entities

// StatementSet holds the SQL text generated for one entity type.
// GetByAlternateKey is empty when the type declares no alternate key.
type StatementSet struct {
	Insert            string
	Update            string
	Delete            string
	GetByID           string
	GetByAlternateKey string
}

// StatementBuilder turns a table mapping into a StatementSet. Implementations
// must be deterministic: the same Table always yields the same text.
type StatementBuilder interface {
	BuildStatements(t *Table) (StatementSet, error)
	Dialect() Dialect
}
