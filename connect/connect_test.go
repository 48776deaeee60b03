package connect

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtechsltn/entities"
	"github.com/gtechsltn/entities/internal/testmodels"
)

type plain struct {
	Id   int64
	Name string
}

var plainTable = &entities.Table{
	Name:    "plain",
	Columns: []entities.Column{{Field: "Id", Key: true}, {Field: "Name"}},
}

func (*plain) Table() *entities.Table    { return plainTable }
func (p *plain) Params() entities.Params { return entities.Params{"Id": p.Id, "Name": p.Name} }
func (p *plain) SetKey(key int64)        { p.Id = key }

func openSQLite(t *testing.T) (*sqlx.DB, *entities.Store) {
	t.Helper()
	db, store, err := Open(context.Background(), Config{
		Dialect:      DialectSQLite,
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, store
}

func TestDialect(t *testing.T) {
	t.Parallel()
	for _, name := range []string{DialectSQLServer, DialectPostgres, DialectMySQL, DialectSQLite} {
		d, err := Dialect(name)
		require.NoError(t, err)
		assert.Equal(t, name, d.Name())
	}
	_, err := Dialect("oracle")
	assert.Error(t, err)
}

func TestOpen_InvalidConfig(t *testing.T) {
	t.Parallel()
	_, _, err := Open(context.Background(), Config{Dialect: "oracle", DSN: "x"})
	assert.Error(t, err)
}

func TestOpen_BadPostgresDSN(t *testing.T) {
	t.Parallel()
	_, _, err := Open(context.Background(), Config{Dialect: DialectPostgres, DSN: "postgres://%zz"})
	assert.Error(t, err)
}

func TestOpen_SQLiteRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db, store := openSQLite(t)

	db.MustExecContext(ctx, `ATTACH DATABASE ':memory:' AS whatever`)
	db.MustExecContext(ctx, `CREATE TABLE whatever.Sample (
		Id INTEGER PRIMARY KEY AUTOINCREMENT,
		Name TEXT NOT NULL UNIQUE,
		Description TEXT NOT NULL DEFAULT ''
	)`)

	repo := entities.NewRepository[testmodels.Sample, int64](store, db)

	first, err := repo.Insert(ctx, &testmodels.Sample{Name: "first", Description: "one"})
	require.NoError(t, err)
	second, err := repo.Insert(ctx, &testmodels.Sample{Name: "second"})
	require.NoError(t, err)
	assert.Positive(t, first.Id)
	assert.Greater(t, second.Id, first.Id)

	got, err := repo.Get(ctx, first.Id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *first, *got)

	byName, err := repo.GetByAlternateKey(ctx, entities.Params{"Name": "second"})
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, second.Id, byName.Id)

	byName.Description = "two"
	n, err := repo.Update(ctx, byName)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Update(ctx, &testmodels.Sample{Id: 999, Name: "ghost"})
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.Delete(ctx, first.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	gone, err := repo.Get(ctx, first.Id)
	require.NoError(t, err)
	assert.Nil(t, gone)

	_, err = repo.Insert(ctx, &testmodels.Sample{Name: "second"})
	assert.Error(t, err, "unique violation is returned unchanged")
}

func TestOpen_SQLiteUntaggedFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db, store := openSQLite(t)
	db.MustExecContext(ctx, `CREATE TABLE plain (Id INTEGER PRIMARY KEY AUTOINCREMENT, Name TEXT NOT NULL)`)

	repo := entities.NewRepository[plain, int64](store, db)
	p, err := repo.Insert(ctx, &plain{Name: "untagged"})
	require.NoError(t, err)

	got, err := repo.Get(ctx, p.Id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, plain{Id: p.Id, Name: "untagged"}, *got)

	var direct plain
	require.NoError(t, db.GetContext(ctx, &direct, `SELECT * FROM plain WHERE Id = ?`, p.Id))
	assert.Equal(t, *got, direct)
}
