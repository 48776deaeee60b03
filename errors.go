package entities

import "errors"

var (
	ErrNoBuilder       = errors.New("entities: no statement builder configured")
	ErrNoTableName     = errors.New("entities: table name is required")
	ErrNoPrimaryKey    = errors.New("entities: no primary key column declared")
	ErrInvalidColumn   = errors.New("entities: invalid column mapping")
	ErrCompositeKey    = errors.New("entities: composite primary key requires key params")
	ErrNoAlternateKey  = errors.New("entities: no alternate key declared")
	ErrNothingToUpdate = errors.New("entities: no updatable columns")
	ErrKeyConversion   = errors.New("entities: cannot convert generated key")
)
