package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	v1 "github.com/aevon-lab/traffic-dashboard/internal/api/v1"
	"github.com/aevon-lab/traffic-dashboard/internal/core/storage"
)

//go:embed schema.sql
var schemaSQL string

const timeLayout = time.RFC3339Nano

const (
	selectColumns = `SELECT id, date, visits, created_at, updated_at FROM traffic_records`
	insertRecord  = `INSERT INTO traffic_records (id, date, visits, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`
)

// Store implements storage.TrafficStore on a single SQLite file.
type Store struct {
	db   *sql.DB
	path string
}

var _ storage.TrafficStore = (*Store)(nil)

// New opens (or creates) the database at path and applies the schema.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	slog.Info("[SQLite] Storage initialized", "path", path)
	return &Store{db: db, path: path}, nil
}

func (s *Store) List(ctx context.Context) ([]v1.TrafficRecord, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+` ORDER BY date DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query traffic records: %w", err)
	}
	defer rows.Close()

	records := make([]v1.TrafficRecord, 0)
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating traffic records: %w", err)
	}
	return records, nil
}

func (s *Store) Get(ctx context.Context, id string) (*v1.TrafficRecord, error) {
	r, err := scanRecord(s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	return r, err
}

func (s *Store) FindByDate(ctx context.Context, date string) (*v1.TrafficRecord, error) {
	r, err := scanRecord(s.db.QueryRowContext(ctx, selectColumns+` WHERE date = ? LIMIT 1`, date))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return r, err
}

func (s *Store) Create(ctx context.Context, record *v1.TrafficRecord) error {
	id := record.ID
	if id == "" {
		id = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, insertRecord,
		id, record.Date, record.Visits,
		record.CreatedAt.UTC().Format(timeLayout), record.UpdatedAt.UTC().Format(timeLayout))
	if err != nil {
		return mapWriteError("insert traffic record", err)
	}
	record.ID = id
	return nil
}

func (s *Store) Update(ctx context.Context, record *v1.TrafficRecord) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE traffic_records SET date = ?, visits = ?, updated_at = ? WHERE id = ?`,
		record.Date, record.Visits, record.UpdatedAt.UTC().Format(timeLayout), record.ID)
	if err != nil {
		return mapWriteError("update traffic record", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}

	updated, err := s.Get(ctx, record.ID)
	if err != nil {
		return err
	}
	*record = *updated
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM traffic_records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete traffic record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ReplaceAll clears the table and inserts records in a single transaction.
func (s *Store) ReplaceAll(ctx context.Context, records []v1.TrafficRecord) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM traffic_records`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear traffic records: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertRecord)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		id := r.ID
		if id == "" {
			id = uuid.NewString()
		}
		_, err := stmt.ExecContext(ctx, id, r.Date, r.Visits,
			r.CreatedAt.UTC().Format(timeLayout), r.UpdatedAt.UTC().Format(timeLayout))
		if err != nil {
			return 0, mapWriteError("import traffic record", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return int(deleted), nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row scanner) (*v1.TrafficRecord, error) {
	var (
		r                v1.TrafficRecord
		created, updated string
	)
	if err := row.Scan(&r.ID, &r.Date, &r.Visits, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan traffic record: %w", err)
	}

	var err error
	if r.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return nil, fmt.Errorf("invalid created_at %q: %w", created, err)
	}
	if r.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
		return nil, fmt.Errorf("invalid updated_at %q: %w", updated, err)
	}
	return &r, nil
}

func mapWriteError(op string, err error) error {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return storage.ErrDuplicate
		}
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
