package db

import "database/sql"

// DB wraps the shared *sql.DB handle passed to stores and resolvers.
type DB struct {
	*sql.DB
}
