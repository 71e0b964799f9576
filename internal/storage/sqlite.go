// Package storage provides SQLite-based persistence for run recordings.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

// ErrNotFound is returned when a recording ID does not exist.
var ErrNotFound = errors.New("storage: recording not found")

// Store manages the SQLite database connection for recordings.
type Store struct {
	db *sql.DB
}

// RecordingInfo summarizes a stored recording without its frames.
type RecordingInfo struct {
	ID        int64
	Seed      int64
	Ticks     int
	Duration  float64 // Sum of frame deltas, seconds
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS recordings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			config_yaml TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			duration_secs REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS recording_frames (
			recording_id INTEGER NOT NULL REFERENCES recordings(id),
			seq INTEGER NOT NULL,
			delta REAL NOT NULL,
			flap INTEGER NOT NULL DEFAULT 0,
			start INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (recording_id, seq)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRecording stores a recording and its frames in one transaction.
// Returns the ID of the inserted recording.
func (s *Store) SaveRecording(rec Recording) (int64, error) {
	cfgYAML, err := config.Encode(rec.Config, config.FormatYAML)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode config: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	res, err := tx.Exec(
		"INSERT INTO recordings (seed, config_yaml, ticks, duration_secs) VALUES (?, ?, ?, ?)",
		rec.Seed, string(cfgYAML), len(rec.Frames), rec.Duration(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save recording: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO recording_frames (recording_id, seq, delta, flap, start) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare frame insert: %w", err)
	}
	defer stmt.Close()

	for i, f := range rec.Frames {
		if _, err := stmt.Exec(id, i, f.Delta, f.Flap, f.Start); err != nil {
			return 0, fmt.Errorf("storage: cannot save frame %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit recording: %w", err)
	}
	return id, nil
}

// Recording loads a recording with all of its frames.
// Returns ErrNotFound if the ID does not exist.
func (s *Store) Recording(id int64) (Recording, error) {
	var (
		rec       Recording
		cfgYAML   string
		createdAt any
	)
	err := s.db.QueryRow(
		"SELECT id, seed, config_yaml, created_at FROM recordings WHERE id = ?",
		id,
	).Scan(&rec.ID, &rec.Seed, &cfgYAML, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Recording{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return Recording{}, fmt.Errorf("storage: cannot query recording: %w", err)
	}
	rec.CreatedAt = parseTimestamp(createdAt)

	rec.Config, err = config.Decode([]byte(cfgYAML), config.FormatYAML)
	if err != nil {
		return Recording{}, fmt.Errorf("storage: recording %d has a bad config: %w", id, err)
	}

	rows, err := s.db.Query(
		"SELECT delta, flap, start FROM recording_frames WHERE recording_id = ? ORDER BY seq",
		id,
	)
	if err != nil {
		return Recording{}, fmt.Errorf("storage: cannot query frames: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var f Frame
		if err := rows.Scan(&f.Delta, &f.Flap, &f.Start); err != nil {
			return Recording{}, fmt.Errorf("storage: cannot scan frame: %w", err)
		}
		rec.Frames = append(rec.Frames, f)
	}
	if err := rows.Err(); err != nil {
		return Recording{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rec, nil
}

// ListRecordings returns the most recent recordings, newest first.
func (s *Store) ListRecordings(limit int) ([]RecordingInfo, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, ticks, duration_secs, created_at
		 FROM recordings
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recordings: %w", err)
	}
	defer rows.Close()

	var infos []RecordingInfo
	for rows.Next() {
		var (
			info      RecordingInfo
			createdAt any
		)
		if err := rows.Scan(&info.ID, &info.Seed, &info.Ticks, &info.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.CreatedAt = parseTimestamp(createdAt)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return infos, nil
}

// DeleteRecording removes a recording and its frames.
// Returns ErrNotFound if the ID does not exist.
func (s *Store) DeleteRecording(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	if _, err := tx.Exec("DELETE FROM recording_frames WHERE recording_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete frames: %w", err)
	}
	res, err := tx.Exec("DELETE FROM recordings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete recording: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTimestamp handles both driver-parsed times and raw SQLite strings.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
