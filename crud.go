package entities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Get loads the entity whose single-column primary key equals id.
// It returns nil and no error when no row matches.
func Get[T any, K comparable, PT EntityPtr[T, K]](ctx context.Context, s *Store, exec Executor, id K) (PT, error) {
	set, err := StatementsOf[T, PT](s)
	if err != nil {
		return nil, err
	}
	params, err := keyParams[T, PT](id)
	if err != nil {
		return nil, err
	}
	return queryOne[T, PT](ctx, s, exec, "get", set.GetByID, params)
}

// GetByKey loads an entity by its primary key given as params, which is the
// way to address composite keys.
func GetByKey[T any, PT TablerPtr[T]](ctx context.Context, s *Store, exec Executor, key Params) (PT, error) {
	set, err := StatementsOf[T, PT](s)
	if err != nil {
		return nil, err
	}
	return queryOne[T, PT](ctx, s, exec, "get", set.GetByID, key)
}

func GetByAlternateKey[T any, PT TablerPtr[T]](ctx context.Context, s *Store, exec Executor, key Params) (PT, error) {
	set, err := StatementsOf[T, PT](s)
	if err != nil {
		return nil, err
	}
	if set.GetByAlternateKey == "" {
		return nil, fmt.Errorf("%w: %T", ErrNoAlternateKey, PT(nil))
	}
	return queryOne[T, PT](ctx, s, exec, "get_by_alternate_key", set.GetByAlternateKey, key)
}

// Insert writes entity, assigns the generated key through SetKey and returns
// the same pointer.
func Insert[T any, K comparable, PT EntityPtr[T, K]](ctx context.Context, s *Store, exec Executor, entity PT) (PT, error) {
	set, err := StatementsOf[T, PT](s)
	if err != nil {
		return nil, err
	}
	query, args, err := s.bind("insert", set.Insert, entity.Params())
	if err != nil {
		return nil, err
	}

	var raw any
	if s.builder.Dialect().KeyRetrieval() == LastInsertID {
		res, err := exec.ExecContext(ctx, query, args...)
		if err != nil {
			return nil, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		raw = id
	} else if err := exec.QueryRowxContext(ctx, query, args...).Scan(&raw); err != nil {
		return nil, err
	}

	var key K
	if err := convertAssign(&key, raw); err != nil {
		return nil, err
	}
	entity.SetKey(key)
	return entity, nil
}

// Update writes every updatable column of entity and returns the number of
// affected rows. A missing row is not an error; callers that care check for 0.
func Update[T any, K comparable, PT EntityPtr[T, K]](ctx context.Context, s *Store, exec Executor, entity PT) (int64, error) {
	set, err := StatementsOf[T, PT](s)
	if err != nil {
		return 0, err
	}
	if set.Update == "" {
		return 0, fmt.Errorf("%w: %T", ErrNothingToUpdate, entity)
	}
	return execAffected(ctx, s, exec, "update", set.Update, entity.Params())
}

// Delete removes the entity whose single-column primary key equals id and
// returns the number of affected rows.
func Delete[T any, K comparable, PT EntityPtr[T, K]](ctx context.Context, s *Store, exec Executor, id K) (int64, error) {
	set, err := StatementsOf[T, PT](s)
	if err != nil {
		return 0, err
	}
	params, err := keyParams[T, PT](id)
	if err != nil {
		return 0, err
	}
	return execAffected(ctx, s, exec, "delete", set.Delete, params)
}

func DeleteByKey[T any, PT TablerPtr[T]](ctx context.Context, s *Store, exec Executor, key Params) (int64, error) {
	set, err := StatementsOf[T, PT](s)
	if err != nil {
		return 0, err
	}
	return execAffected(ctx, s, exec, "delete", set.Delete, key)
}

func keyParams[T any, PT TablerPtr[T]](id any) (Params, error) {
	var zero T
	keys := PT(&zero).Table().Keys()
	if len(keys) != 1 {
		return nil, fmt.Errorf("%w: %T has %d key columns", ErrCompositeKey, PT(nil), len(keys))
	}
	return Params{keys[0].Field: id}, nil
}

func queryOne[T any, PT TablerPtr[T]](ctx context.Context, s *Store, exec Executor, op, stmt string, params Params) (PT, error) {
	query, args, err := s.bind(op, stmt, params)
	if err != nil {
		return nil, err
	}

	row := exec.QueryRowxContext(ctx, query, args...)
	row.Mapper = fieldMapper

	var entity T
	if err := row.StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func execAffected(ctx context.Context, s *Store, exec Executor, op, stmt string, params Params) (int64, error) {
	query, args, err := s.bind(op, stmt, params)
	if err != nil {
		return 0, err
	}
	res, err := exec.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
