package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-invest-ledger/internal/logger"
	"github.com/sbilibin2017/gw-invest-ledger/internal/models"
)

const ledgerStateRowID = 1

// SQLStateRepository stores the ledger document in a single versioned row.
// Writers use optimistic compare-and-swap on the version column, so several
// processes may share one database without losing updates.
type SQLStateRepository struct {
	db         *sqlx.DB
	maxRetries int
	now        func() time.Time
}

// NewSQLStateRepository creates a repository over an open Postgres or SQLite handle.
func NewSQLStateRepository(db *sqlx.DB, maxRetries int) *SQLStateRepository {
	if maxRetries <= 0 {
		maxRetries = 1
	}
	return &SQLStateRepository{db: db, maxRetries: maxRetries, now: time.Now}
}

// Migrate creates the state table and seeds the empty ledger row.
func (r *SQLStateRepository) Migrate(ctx context.Context) error {
	ddl := `
		CREATE TABLE IF NOT EXISTS ledger_state (
			id INTEGER PRIMARY KEY,
			version BIGINT NOT NULL,
			data TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)
	`
	_, err := r.db.ExecContext(ctx, ddl)
	logQuery(ddl, nil, nil, err)
	if err != nil {
		return fmt.Errorf("create ledger_state: %w", err)
	}

	empty, err := json.Marshal(models.NewState())
	if err != nil {
		return err
	}
	seed := r.db.Rebind(`
		INSERT INTO ledger_state (id, version, data, updated_at)
		VALUES (?, 0, ?, ?)
		ON CONFLICT (id) DO NOTHING
	`)
	args := []any{ledgerStateRowID, string(empty), r.now().UTC()}
	_, err = r.db.ExecContext(ctx, seed, args...)
	logQuery(seed, args, nil, err)
	if err != nil {
		return fmt.Errorf("seed ledger_state: %w", err)
	}
	return nil
}

// Update loads the current ledger, applies fn and writes it back if nobody
// else committed in between. fn is re-run on a fresh copy after a conflict.
func (r *SQLStateRepository) Update(ctx context.Context, fn func(*models.State) error) error {
	for attempt := 1; attempt <= r.maxRetries; attempt++ {
		state, version, err := r.load(ctx)
		if err != nil {
			return err
		}
		if err := fn(state); err != nil {
			return err
		}

		data, err := json.Marshal(state)
		if err != nil {
			return fmt.Errorf("encode ledger: %w", err)
		}

		swapped, err := r.compareAndSwap(ctx, version, data)
		if err != nil {
			return err
		}
		if swapped {
			return nil
		}
		logger.Log.Warnw("ledger version conflict, retrying", "version", version, "attempt", attempt)
	}
	return ErrConcurrentModification
}

// View runs fn against the latest committed ledger.
func (r *SQLStateRepository) View(ctx context.Context, fn func(*models.State) error) error {
	state, _, err := r.load(ctx)
	if err != nil {
		return err
	}
	return fn(state)
}

// Dump returns the stored ledger document.
func (r *SQLStateRepository) Dump(ctx context.Context) ([]byte, error) {
	query := r.db.Rebind(`SELECT data FROM ledger_state WHERE id = ?`)

	var data string
	err := r.db.GetContext(ctx, &data, query, ledgerStateRowID)
	logQuery(query, []any{ledgerStateRowID}, len(data), err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStateNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(data), nil
}

func (r *SQLStateRepository) load(ctx context.Context) (*models.State, int64, error) {
	query := r.db.Rebind(`SELECT version, data FROM ledger_state WHERE id = ?`)

	var row struct {
		Version int64  `db:"version"`
		Data    string `db:"data"`
	}
	err := r.db.GetContext(ctx, &row, query, ledgerStateRowID)
	logQuery(query, []any{ledgerStateRowID}, row.Version, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, ErrStateNotFound
	}
	if err != nil {
		return nil, 0, err
	}

	var s models.State
	if err := json.Unmarshal([]byte(row.Data), &s); err != nil {
		return nil, 0, fmt.Errorf("decode ledger: %w", err)
	}
	s.Normalize()
	return &s, row.Version, nil
}

func (r *SQLStateRepository) compareAndSwap(ctx context.Context, version int64, data []byte) (bool, error) {
	query := r.db.Rebind(`
		UPDATE ledger_state
		SET version = version + 1, data = ?, updated_at = ?
		WHERE id = ? AND version = ?
	`)
	args := []any{string(data), r.now().UTC(), ledgerStateRowID, version}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{ledgerStateRowID, version}, rowsAffected, err)
	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

func logQuery(query string, args []any, result any, err error) {
	logger.Log.Debugw("sql",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
