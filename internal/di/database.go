package di

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/thegardencompany/storefront/internal/runtimeconfig"
)

// OpenDatabase opens a bun handle for the configured catalog driver. Memory
// and empty drivers return nil so the container falls back to the in-memory
// repository.
func OpenDatabase(cfg runtimeconfig.CatalogConfig) (*bun.DB, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", "memory":
		return nil, nil
	case "sqlite":
		sqldb, err := sql.Open("sqlite3", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("storefront: open sqlite database: %w", err)
		}
		return bun.NewDB(sqldb, sqlitedialect.New()), nil
	case "postgres":
		sqldb, err := sql.Open("postgres", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("storefront: open postgres database: %w", err)
		}
		return bun.NewDB(sqldb, pgdialect.New()), nil
	default:
		return nil, fmt.Errorf("%w: %s", runtimeconfig.ErrCatalogDriverUnknown, cfg.Driver)
	}
}
