package connect

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/gtechsltn/entities"
)

// Dialect returns the statement dialect for a configured dialect name.
func Dialect(name string) (entities.Dialect, error) {
	switch name {
	case DialectSQLServer:
		return entities.SQLServer(), nil
	case DialectPostgres:
		return entities.Postgres(), nil
	case DialectMySQL:
		return entities.MySQL(), nil
	case DialectSQLite:
		return entities.SQLite(), nil
	}
	return nil, fmt.Errorf("connect: unknown dialect %q", name)
}

// Open connects to the configured database, applies the pool settings and
// pings it. The sqlserver dialect needs a driver registered as "sqlserver"
// by the caller, e.g. by importing github.com/microsoft/go-mssqldb.
func Open(ctx context.Context, cfg Config) (*sqlx.DB, *entities.Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	dialect, err := Dialect(cfg.Dialect)
	if err != nil {
		return nil, nil, err
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	logger := zap.NewNop()
	if cfg.Debug {
		if logger, err = zap.NewDevelopment(); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
	}

	if err := ping(ctx, db, cfg, logger); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("connect: ping %s: %w", cfg.Dialect, err)
	}

	store := entities.NewStore(entities.NewBuilder(dialect), entities.WithLogger(logger))
	dbx := sqlx.NewDb(db, cfg.Dialect)
	dbx.Mapper = entities.Mapper()
	return dbx, store, nil
}

func ping(ctx context.Context, db *sql.DB, cfg Config, logger *zap.Logger) error {
	return retry.Do(
		func() error {
			return db.PingContext(ctx)
		},
		retry.Attempts(cfg.PingAttempts),
		retry.Delay(cfg.PingDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("ping failed",
				zap.String("dialect", cfg.Dialect),
				zap.Uint("attempt", n+1),
				zap.Uint("max_attempts", cfg.PingAttempts),
				zap.Error(err),
			)
		}),
		retry.Context(ctx),
	)
}

func openDB(cfg Config) (*sql.DB, error) {
	switch cfg.Dialect {
	case DialectPostgres:
		pc, err := pgx.ParseConfig(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("connect: parse postgres dsn: %w", err)
		}
		return stdlib.OpenDB(*pc), nil
	case DialectMySQL:
		mc, err := mysql.ParseDSN(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("connect: parse mysql dsn: %w", err)
		}
		mc.ParseTime = true
		connector, err := mysql.NewConnector(mc)
		if err != nil {
			return nil, err
		}
		return sql.OpenDB(connector), nil
	default:
		return sql.Open(cfg.Dialect, cfg.DSN)
	}
}
