package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrRunNotFound is returned by GetRun for an unknown run ID.
var ErrRunNotFound = errors.New("run not found")

// RunRecord is one stored run summary.
type RunRecord struct {
	ID     string
	Vector string
	Total  int
	Passed int
	Failed int
	Seq    int64
}

// FailureRecord is one stored failing case.
type FailureRecord struct {
	RunID     string
	CaseIndex int
	Op        string
	Width     string
	Variant   string
	Reason    string
}

// NextSeq returns the next logical sequence number (max stored seq + 1).
func (s *Store) NextSeq(ctx context.Context) (int64, error) {
	var seq int64
	if err := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(seq), 0) + 1 FROM runs").Scan(&seq); err != nil {
		return 0, fmt.Errorf("next seq: %w", err)
	}
	return seq, nil
}

// ListRuns returns run summaries in logical order. limit <= 0 means no
// limit.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	q := `
		SELECT id, vector, total, passed, failed, seq
		FROM runs
		ORDER BY seq ASC, id ASC
	`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.ID, &r.Vector, &r.Total, &r.Passed, &r.Failed, &r.Seq); err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// GetRun returns one run summary and its failing cases.
func (s *Store) GetRun(ctx context.Context, id string) (*RunRecord, []FailureRecord, error) {
	var r RunRecord
	err := s.db.QueryRowContext(ctx, `
		SELECT id, vector, total, passed, failed, seq
		FROM runs
		WHERE id = ?
	`, id).Scan(&r.ID, &r.Vector, &r.Total, &r.Passed, &r.Failed, &r.Seq)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("get run %q: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("get run %q: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, case_index, op, width, variant, reason
		FROM failures
		WHERE run_id = ?
		ORDER BY case_index ASC
	`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get run %q: %w", id, err)
	}
	defer rows.Close()

	var failures []FailureRecord
	for rows.Next() {
		var f FailureRecord
		if err := rows.Scan(&f.RunID, &f.CaseIndex, &f.Op, &f.Width, &f.Variant, &f.Reason); err != nil {
			return nil, nil, fmt.Errorf("get run %q: %w", id, err)
		}
		failures = append(failures, f)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("get run %q: %w", id, err)
	}
	return &r, failures, nil
}
