package entities

// Params holds bind values keyed by parameter (field) name.
type Params map[string]any

// Tabler exposes the table mapping of an entity type. It is called on a zero
// value, so implementations must not depend on field values.
type Tabler interface {
	Table() *Table
}

// Entity is the contract the CRUD functions need from a record type.
// It is implemented on the pointer type, usually by entitygen.
type Entity[K comparable] interface {
	Tabler
	Params() Params
	SetKey(key K)
}

// TablerPtr constrains PT to be *T with a table mapping.
type TablerPtr[T any] interface {
	*T
	Tabler
}

// EntityPtr constrains PT to be *T implementing Entity[K].
type EntityPtr[T any, K comparable] interface {
	*T
	Entity[K]
}
