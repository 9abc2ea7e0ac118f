// Package history records lint runs per project and reads them back.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wizzomafizzo/commitlint/internal/database"
	"github.com/wizzomafizzo/commitlint/internal/lint"
	"github.com/wizzomafizzo/commitlint/internal/rules"
)

// ErrInvalidLimit is returned for non-positive query limits.
var ErrInvalidLimit = errors.New("limit must be positive")

// Run is one recorded lint invocation.
type Run struct {
	CreatedAt time.Time
	ProjectID string
	Source    string
	ID        int64
	Messages  int
	Errors    int
	Warnings  int
}

// ViolationCount is how often a violation message occurred in a project.
type ViolationCount struct {
	Level   rules.Level
	Message string
	Count   int
}

// Store reads and writes lint history.
type Store struct {
	db *sql.DB
}

func NewStore(manager *database.Manager) *Store {
	return &Store{db: manager.DB()}
}

// Record stores a run with its error and warning violations and returns the
// run id. Ignore-level violations are not stored.
func (s *Store) Record(ctx context.Context, projectID, source string, results []lint.Result) (int64, error) {
	summary := lint.Summarize(results)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO lint_runs (project_id, source, messages, errors, warnings) VALUES (?, ?, ?, ?, ?)`,
		projectID, source, summary.Messages, summary.Errors, summary.Warnings)
	if err != nil {
		return 0, fmt.Errorf("failed to insert lint run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get lint run id: %w", err)
	}

	for _, result := range results {
		for _, v := range result.Violations {
			if v.Level == rules.LevelIgnore {
				continue
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO lint_violations (run_id, level, message) VALUES (?, ?, ?)`,
				runID, string(v.Level), v.Message); err != nil {
				return 0, fmt.Errorf("failed to insert violation: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit lint run: %w", err)
	}
	return runID, nil
}

// Recent returns up to limit runs for projectID, newest first.
func (s *Store) Recent(ctx context.Context, projectID string, limit int) ([]Run, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, project_id, source, messages, errors, warnings, created_at
		FROM lint_runs
		WHERE project_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query lint runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt int64
		if err := rows.Scan(&run.ID, &run.ProjectID, &run.Source, &run.Messages,
			&run.Errors, &run.Warnings, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan lint run: %w", err)
		}
		run.CreatedAt = time.Unix(createdAt, 0)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lint runs: %w", err)
	}
	return runs, nil
}

// TopViolations returns the most frequent violations recorded for projectID.
func (s *Store) TopViolations(ctx context.Context, projectID string, limit int) ([]ViolationCount, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT v.level, v.message, COUNT(*) AS n
		FROM lint_violations v
		JOIN lint_runs r ON r.id = v.run_id
		WHERE r.project_id = ?
		GROUP BY v.level, v.message
		ORDER BY n DESC, v.message ASC
		LIMIT ?`, projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query violations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var counts []ViolationCount
	for rows.Next() {
		var vc ViolationCount
		var level string
		if err := rows.Scan(&level, &vc.Message, &vc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan violation count: %w", err)
		}
		vc.Level = rules.Level(level)
		counts = append(counts, vc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read violation counts: %w", err)
	}
	return counts, nil
}
