package entities

import "context"

// Repository binds the CRUD functions for one entity type to a Store and an
// Executor.
type Repository[T any, K comparable, PT EntityPtr[T, K]] struct {
	store *Store
	exec  Executor
}

func NewRepository[T any, K comparable, PT EntityPtr[T, K]](s *Store, exec Executor) *Repository[T, K, PT] {
	return &Repository[T, K, PT]{store: s, exec: exec}
}

// With returns a copy running on exec, typically a *sqlx.Tx.
func (r *Repository[T, K, PT]) With(exec Executor) *Repository[T, K, PT] {
	return &Repository[T, K, PT]{store: r.store, exec: exec}
}

func (r *Repository[T, K, PT]) Statements() (StatementSet, error) {
	return StatementsOf[T, PT](r.store)
}

func (r *Repository[T, K, PT]) Get(ctx context.Context, id K) (PT, error) {
	return Get[T, K, PT](ctx, r.store, r.exec, id)
}

func (r *Repository[T, K, PT]) GetByKey(ctx context.Context, key Params) (PT, error) {
	return GetByKey[T, PT](ctx, r.store, r.exec, key)
}

func (r *Repository[T, K, PT]) GetByAlternateKey(ctx context.Context, key Params) (PT, error) {
	return GetByAlternateKey[T, PT](ctx, r.store, r.exec, key)
}

func (r *Repository[T, K, PT]) Insert(ctx context.Context, entity PT) (PT, error) {
	return Insert[T, K, PT](ctx, r.store, r.exec, entity)
}

func (r *Repository[T, K, PT]) Update(ctx context.Context, entity PT) (int64, error) {
	return Update[T, K, PT](ctx, r.store, r.exec, entity)
}

func (r *Repository[T, K, PT]) Delete(ctx context.Context, id K) (int64, error) {
	return Delete[T, K, PT](ctx, r.store, r.exec, id)
}

func (r *Repository[T, K, PT]) DeleteByKey(ctx context.Context, key Params) (int64, error) {
	return DeleteByKey[T, PT](ctx, r.store, r.exec, key)
}
