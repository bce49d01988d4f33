// SQLite-backed RepositoryManager, wiring repository constructors and
// database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/userdir/internal/server/migrations"
	"github.com/dmitrijs2005/userdir/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/userdir/internal/server/repositories/users"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

// SQLiteRepositoryManager vends SQLite-backed repository implementations and
// exposes a schema migration hook. The default DSN is an in-memory database,
// keeping state process-scoped like the memory backend.
type SQLiteRepositoryManager struct {
	db       *sql.DB
	users    *users.SQLiteRepository
	sessions *sessions.SQLiteRepository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func NewSQLiteRepositoryManager(dsn string) (*SQLiteRepositoryManager, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	return &SQLiteRepositoryManager{
		db:       db,
		users:    users.NewSQLiteRepository(db),
		sessions: sessions.NewSQLiteRepository(db),
	}, nil
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the managed database.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}

func (m *SQLiteRepositoryManager) Users() users.Repository { return m.users }

func (m *SQLiteRepositoryManager) Sessions() sessions.Repository { return m.sessions }

func (m *SQLiteRepositoryManager) Close() error { return m.db.Close() }
