package store

import (
	"context"
	"fmt"

	"github.com/roach88/strictint/internal/harness"
)

// RecordRun inserts a run and its failing cases in one transaction.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - recording the same run
// twice is a no-op.
//
// seq is the caller's logical clock value; listings order by it.
func (s *Store) RecordRun(ctx context.Context, seq int64, rep *harness.Report) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, vector, total, passed, failed, seq)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, rep.RunID, rep.Vector, rep.Total, rep.Passed, rep.Failed, seq)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	// Duplicate run ID: leave the original record and its failures alone.
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil
	}

	for _, cr := range rep.Cases {
		if cr.Passed {
			continue
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO failures (run_id, case_index, op, width, variant, reason)
			VALUES (?, ?, ?, ?, ?, ?)
		`, rep.RunID, cr.Index, cr.Op, cr.Width, cr.Variant, cr.Reason)
		if err != nil {
			return fmt.Errorf("record failure %d: %w", cr.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}
