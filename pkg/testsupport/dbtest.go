// Package testsupport provides shared database helpers for storage
// integration tests.
package testsupport

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// NewSQLiteMemoryDB opens a named in-memory SQLite database. The name keeps
// databases isolated between tests while the shared cache keeps every pooled
// connection on the same database.
func NewSQLiteMemoryDB(name string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	return sql.Open("sqlite3", dsn)
}

// NewBunSQLiteDB wraps a named in-memory SQLite database with bun.
func NewBunSQLiteDB(name string) (*bun.DB, error) {
	sqldb, err := NewSQLiteMemoryDB(name)
	if err != nil {
		return nil, err
	}
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// CreateTables creates the schema for the given models if missing.
func CreateTables(ctx context.Context, db *bun.DB, models ...any) error {
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("testsupport: create table for %T: %w", model, err)
		}
	}
	return nil
}
