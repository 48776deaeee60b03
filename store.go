package entities

import (
	"reflect"

	"go.uber.org/zap"
)

// Store carries what the CRUD functions share across calls: the statement
// builder strategy, the per-type statement cache and a logger. A Store is
// safe for concurrent use.
type Store struct {
	builder StatementBuilder
	cache   *StatementCache
	logger  *zap.Logger
}

type Option func(*Store)

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCache lets several stores share one cache. Entries are kept apart by
// dialect name, so stores sharing a dialect must build the same statements.
func WithCache(c *StatementCache) Option {
	return func(s *Store) {
		if c != nil {
			s.cache = c
		}
	}
}

// NewStore returns a Store using builder. A nil builder is accepted; every
// CRUD call then fails with ErrNoBuilder.
func NewStore(builder StatementBuilder, opts ...Option) *Store {
	s := &Store{
		builder: builder,
		cache:   NewStatementCache(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("entities")
	return s
}

func (s *Store) dialect() (Dialect, error) {
	if s == nil || s.builder == nil {
		return nil, ErrNoBuilder
	}
	return s.builder.Dialect(), nil
}

// StatementsOf returns the statement set of T, building it on first use.
func StatementsOf[T any, PT TablerPtr[T]](s *Store) (StatementSet, error) {
	if s == nil || s.builder == nil {
		return StatementSet{}, ErrNoBuilder
	}

	typ := reflect.TypeFor[T]()
	return s.cache.Resolve(s.builder.Dialect().Name(), typ, func() (StatementSet, error) {
		var zero T
		set, err := s.builder.BuildStatements(PT(&zero).Table())
		if err != nil {
			s.logger.Error("build statements", zap.Stringer("entity", typ), zap.Error(err))
			return StatementSet{}, err
		}
		s.logger.Debug("statements built",
			zap.Stringer("entity", typ),
			zap.String("insert", set.Insert),
			zap.String("update", set.Update),
			zap.String("delete", set.Delete),
			zap.String("get_by_id", set.GetByID),
			zap.String("get_by_alternate_key", set.GetByAlternateKey),
		)
		return set, nil
	})
}

func (s *Store) bind(op, query string, params Params) (string, []any, error) {
	d, err := s.dialect()
	if err != nil {
		return "", nil, err
	}
	q, args, err := d.Bind(query, params)
	if err != nil {
		return "", nil, err
	}
	s.logger.Debug(op, zap.String("sql", q), zap.Int("args", len(args)))
	return q, args, nil
}
