package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"corpusprep/internal/config"
)

const schema = `CREATE TABLE IF NOT EXISTS runs (
    id          TEXT PRIMARY KEY,
    tool        TEXT NOT NULL,
    inputs      TEXT NOT NULL,
    outputs     TEXT NOT NULL,
    lines_in    INTEGER NOT NULL,
    lines_out   INTEGER NOT NULL,
    started_at  TEXT NOT NULL,
    duration_ms INTEGER NOT NULL,
    error       TEXT NOT NULL
)`

// timeLayout is fixed-width so lexical order matches chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Run describes one tool invocation.
type Run struct {
	ID        string
	Tool      string
	Inputs    []string
	Outputs   []string
	LinesIn   int
	LinesOut  int
	StartedAt time.Time
	Duration  time.Duration
	Err       string
}

// NewRun starts a Run for tool with a fresh id and the current time.
func NewRun(tool string) Run {
	return Run{
		ID:        uuid.NewString(),
		Tool:      tool,
		StartedAt: time.Now().UTC(),
	}
}

// Finish stamps the duration and error text.
func (r *Run) Finish(err error) {
	r.Duration = time.Since(r.StartedAt)
	if err != nil {
		r.Err = err.Error()
	}
}

// Succeeded reports whether the run ended without error.
func (r Run) Succeeded() bool { return r.Err == "" }

// Store persists runs.
type Store struct {
	db     *sql.DB
	driver string
	target string
}

// Open connects to the configured database and ensures the schema exists.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	if cfg == nil {
		return nil, errors.New("history requires config")
	}

	driver := cfg.History.Driver
	dsn := cfg.History.DSN
	switch driver {
	case "sqlite":
		if dsn == "" {
			dsn = cfg.HistoryPath()
		}
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	case "postgres":
		if dsn == "" {
			return nil, errors.New("postgres history requires a dsn")
		}
	default:
		return nil, fmt.Errorf("unsupported history driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", driver, err)
	}

	if driver == "sqlite" {
		for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout = 5000"} {
			if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
				_ = db.Close()
				return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
			}
		}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}

	target := dsn
	if driver == "postgres" {
		target = "postgres"
	}
	return &Store{db: db, driver: driver, target: target}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Target describes where runs are stored, without credentials.
func (s *Store) Target() string { return s.target }

// Record inserts run.
func (s *Store) Record(ctx context.Context, run Run) error {
	inputs, err := json.Marshal(nonNil(run.Inputs))
	if err != nil {
		return fmt.Errorf("encode inputs: %w", err)
	}
	outputs, err := json.Marshal(nonNil(run.Outputs))
	if err != nil {
		return fmt.Errorf("encode outputs: %w", err)
	}

	_, err = s.db.ExecContext(ctx, s.rebind(
		`INSERT INTO runs (id, tool, inputs, outputs, lines_in, lines_out, started_at, duration_ms, error)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		run.ID,
		run.Tool,
		string(inputs),
		string(outputs),
		run.LinesIn,
		run.LinesOut,
		run.StartedAt.UTC().Format(timeLayout),
		run.Duration.Milliseconds(),
		run.Err,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first. A non-positive limit
// returns every run.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, tool, inputs, outputs, lines_in, lines_out, started_at, duration_ms, error
        FROM runs ORDER BY started_at DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run        Run
			inputs     string
			outputs    string
			startedAt  string
			durationMS int64
		)
		if err := rows.Scan(&run.ID, &run.Tool, &inputs, &outputs, &run.LinesIn, &run.LinesOut, &startedAt, &durationMS, &run.Err); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if err := json.Unmarshal([]byte(inputs), &run.Inputs); err != nil {
			return nil, fmt.Errorf("decode inputs for %s: %w", run.ID, err)
		}
		if err := json.Unmarshal([]byte(outputs), &run.Outputs); err != nil {
			return nil, fmt.Errorf("decode outputs for %s: %w", run.ID, err)
		}
		if run.StartedAt, err = time.Parse(timeLayout, startedAt); err != nil {
			return nil, fmt.Errorf("parse started_at for %s: %w", run.ID, err)
		}
		run.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// rebind rewrites ? placeholders into $n for PostgreSQL.
func (s *Store) rebind(query string) string {
	if s.driver != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
