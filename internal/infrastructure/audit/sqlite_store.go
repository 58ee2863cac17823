// Package audit persists execution outcomes in a SQLite database.
package audit

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/cfai-go/internal/domain"
	"github.com/doeshing/cfai-go/internal/pkg/filesystem"
	"github.com/doeshing/cfai-go/internal/ports"
)

// SQLiteStore records one row per action outcome in ~/.cfai/audit/audit.db.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// DefaultPath returns the standard audit database location.
func DefaultPath() string {
	return filepath.Join(filesystem.UserHomeDir(), ".cfai", "audit", "audit.db")
}

// NewSQLiteStore creates (or opens) the audit database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &SQLiteStore{db: db}
	if err := store.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS action_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		timestamp TEXT,
		zone TEXT,
		kind TEXT,
		description TEXT,
		risk TEXT,
		status TEXT,
		message TEXT,
		duration_ms INTEGER
	);`)
	return err
}

// Save inserts the records of one run in a single transaction.
func (s *SQLiteStore) Save(records []domain.AuditRecord) error {
	if len(records) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO action_log
		(run_id, timestamp, zone, kind, description, risk, status, message, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.Exec(
			rec.RunID,
			rec.Timestamp.Format(time.RFC3339),
			rec.Zone,
			rec.Kind,
			rec.Description,
			rec.Risk,
			rec.Status,
			rec.Message,
			rec.DurationMS,
		); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// Records returns audit entries, newest first (limit/search optional).
func (s *SQLiteStore) Records(limit int, search string) ([]domain.AuditRecord, error) {
	builder := strings.Builder{}
	builder.WriteString("SELECT run_id, timestamp, zone, kind, description, risk, status, message, duration_ms FROM action_log")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE description LIKE ? OR zone LIKE ? OR kind LIKE ?")
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	builder.WriteString(" ORDER BY id DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}

	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.AuditRecord
	for rows.Next() {
		var rec domain.AuditRecord
		var ts string
		if err := rows.Scan(&rec.RunID, &ts, &rec.Zone, &rec.Kind, &rec.Description,
			&rec.Risk, &rec.Status, &rec.Message, &rec.DurationMS); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Timestamp = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all audit entries.
func (s *SQLiteStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM action_log")
	return err
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ ports.AuditRepository = (*SQLiteStore)(nil)
