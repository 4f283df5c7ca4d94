package pgsql

import "github.com/jackc/pgx/v5/pgxpool"

// BaseRepository holds the shared connection pool. Every operation in this
// store is a single statement, so there are no transaction helpers.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
