package trace

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

type SQLiteRecorder struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteRecorder(path string) *SQLiteRecorder {
	return &SQLiteRecorder{path: path}
}

func (r *SQLiteRecorder) Init(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.path == "" {
		return errors.New("sqlite path is required")
	}
	if r.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", r.path)
	if err != nil {
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	r.db = db
	return nil
}

func (r *SQLiteRecorder) BeginRun(ctx context.Context, model string) (Run, error) {
	db, err := r.getDB()
	if err != nil {
		return Run{}, err
	}

	run := newRun(model)
	_, err = db.ExecContext(ctx, `
		INSERT INTO runs (id, model, started_unix_nano)
		VALUES (?, ?, ?)
	`, run.ID, run.Model, run.Started.UnixNano())
	if err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

func (r *SQLiteRecorder) Record(ctx context.Context, runID string, s Sample) error {
	db, err := r.getDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO samples (run_id, seq, elapsed, cycle, ease_a, ease_b, calf_fl, calf_fr, calf_bl, calf_br)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, seq) DO UPDATE SET
			elapsed = excluded.elapsed,
			cycle = excluded.cycle,
			ease_a = excluded.ease_a,
			ease_b = excluded.ease_b,
			calf_fl = excluded.calf_fl,
			calf_fr = excluded.calf_fr,
			calf_bl = excluded.calf_bl,
			calf_br = excluded.calf_br
	`, runID, int64(s.Seq), s.Elapsed, s.Cycle, s.EaseA, s.EaseB, s.Calf[0], s.Calf[1], s.Calf[2], s.Calf[3])
	if err != nil {
		return fmt.Errorf("insert sample %d: %w", s.Seq, err)
	}
	return nil
}

func (r *SQLiteRecorder) Samples(ctx context.Context, runID string) ([]Sample, bool, error) {
	db, err := r.getDB()
	if err != nil {
		return nil, false, err
	}

	var exists int
	err = db.QueryRowContext(ctx, `SELECT 1 FROM runs WHERE id = ?`, runID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT seq, elapsed, cycle, ease_a, ease_b, calf_fl, calf_fr, calf_bl, calf_br
		FROM samples WHERE run_id = ? ORDER BY seq
	`, runID)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	var out []Sample
	for rows.Next() {
		var s Sample
		var seq int64
		if err := rows.Scan(&seq, &s.Elapsed, &s.Cycle, &s.EaseA, &s.EaseB, &s.Calf[0], &s.Calf[1], &s.Calf[2], &s.Calf[3]); err != nil {
			return nil, false, fmt.Errorf("scan sample: %w", err)
		}
		s.Seq = uint64(seq)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	return out, true, nil
}

func (r *SQLiteRecorder) Runs(ctx context.Context) ([]Run, error) {
	db, err := r.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT id, model, started_unix_nano FROM runs ORDER BY started_unix_nano, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var run Run
		var started int64
		if err := rows.Scan(&run.ID, &run.Model, &started); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Started = time.Unix(0, started).UTC()
		out = append(out, run)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	return err
}

func (r *SQLiteRecorder) getDB() (*sql.DB, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.db == nil {
		return nil, ErrNotInitialized
	}
	return r.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			model TEXT NOT NULL,
			started_unix_nano INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS samples (
			run_id TEXT NOT NULL REFERENCES runs(id),
			seq INTEGER NOT NULL,
			elapsed REAL NOT NULL,
			cycle REAL NOT NULL,
			ease_a REAL NOT NULL,
			ease_b REAL NOT NULL,
			calf_fl REAL NOT NULL,
			calf_fr REAL NOT NULL,
			calf_bl REAL NOT NULL,
			calf_br REAL NOT NULL,
			PRIMARY KEY (run_id, seq)
		);
	`)
	return err
}
