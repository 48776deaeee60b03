package entities

import (
	"reflect"

	"github.com/puzpuzpuz/xsync/v3"
)

type cacheKey struct {
	dialect string
	typ     reflect.Type
}

// StatementCache memoizes statement sets per dialect and entity type, so
// stores with different dialects can share one. Entries are never evicted.
type StatementCache struct {
	sets *xsync.MapOf[cacheKey, StatementSet]
}

func NewStatementCache() *StatementCache {
	return &StatementCache{sets: xsync.NewMapOf[cacheKey, StatementSet]()}
}

// Resolve returns the cached set for typ under dialect, calling build on
// first use.
// Insert-if-absent is atomic per type, so build runs at most once per
// successful entry. A failed build leaves no entry behind.
func (c *StatementCache) Resolve(dialect string, typ reflect.Type, build func() (StatementSet, error)) (StatementSet, error) {
	key := cacheKey{dialect: dialect, typ: typ}
	if set, ok := c.sets.Load(key); ok {
		return set, nil
	}

	var buildErr error
	set, _ := c.sets.Compute(key, func(old StatementSet, loaded bool) (StatementSet, bool) {
		if loaded {
			return old, false
		}
		built, err := build()
		if err != nil {
			buildErr = err
			return old, true
		}
		return built, false
	})
	if buildErr != nil {
		return StatementSet{}, buildErr
	}
	return set, nil
}

func (c *StatementCache) Len() int { return c.sets.Size() }
