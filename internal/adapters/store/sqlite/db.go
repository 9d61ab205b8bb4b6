// Package sqlite implements the board, task and user stores on SQLite via
// github.com/mattn/go-sqlite3.
//
// Foreign keys are enabled on every connection so deleting a board cascades
// to its tasks. Times are written in UTC.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/jsamuelsen11/kanban-service/internal/domain"
	"github.com/jsamuelsen11/kanban-service/internal/ports"
)

//go:embed schema.sql
var schema string

var _ ports.HealthChecker = (*DB)(nil)

// DefaultQueryTimeout bounds a single statement when Options.QueryTimeout is
// zero.
const DefaultQueryTimeout = 5 * time.Second

// Options configures Open.
type Options struct {
	Path         string
	BusyTimeout  time.Duration
	QueryTimeout time.Duration
}

// DB wraps the database connection shared by the stores.
type DB struct {
	*sql.DB
	queryTimeout time.Duration
}

// Open opens (creating if needed) the database at opts.Path. Call Migrate
// before first use.
func Open(opts Options) (*DB, error) {
	if opts.Path == "" {
		return nil, errors.New("sqlite: database path is required")
	}

	conn, err := sql.Open("sqlite3", dsn(opts))
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening %s: %w", opts.Path, err)
	}
	// SQLite serializes writers; one connection avoids SQLITE_BUSY between
	// our own goroutines and keeps :memory: databases coherent.
	conn.SetMaxOpenConns(1)

	timeout := opts.QueryTimeout
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	return &DB{DB: conn, queryTimeout: timeout}, nil
}

func dsn(opts Options) string {
	q := url.Values{}
	q.Set("_foreign_keys", "on")
	if opts.BusyTimeout > 0 {
		q.Set("_busy_timeout", strconv.FormatInt(opts.BusyTimeout.Milliseconds(), 10))
	}
	sep := "?"
	if strings.Contains(opts.Path, "?") {
		sep = "&"
	}
	return opts.Path + sep + q.Encode()
}

// Migrate creates the schema. It is idempotent.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("sqlite: applying schema: %w", err)
	}
	return nil
}

// Name returns "sqlite".
func (db *DB) Name() string { return "sqlite" }

// HealthCheck pings the database.
func (db *DB) HealthCheck(ctx context.Context) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite: %w", err)
	}
	return nil
}

// withTimeout derives the per-statement context.
func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, db.queryTimeout)
}

// translate maps driver failures onto domain errors. Missing rows are handled
// by each store since the sentinel depends on the entity.
func translate(op string, err error) error {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		switch {
		case serr.ExtendedCode == sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%s: %w", op, domain.ErrBoardNotFound)
		case serr.Code == sqlite3.ErrConstraint:
			return fmt.Errorf("%s: %s: %w", op, serr.Error(), domain.ErrConflict)
		case serr.Code == sqlite3.ErrBusy || serr.Code == sqlite3.ErrLocked:
			return fmt.Errorf("%s: %s: %w", op, serr.Error(), domain.ErrUnavailable)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// containsPattern builds a case-insensitive LIKE pattern matching s anywhere.
// Use with "LOWER(col) LIKE ? ESCAPE '\'".
func containsPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(s)) + "%"
}

// rowsAffected returns notFound when res changed nothing.
func rowsAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
