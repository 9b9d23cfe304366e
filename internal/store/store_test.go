package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/strictint/internal/harness"
	"github.com/roach88/strictint/internal/testutil"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func passedReport(id, vector string, total int) *harness.Report {
	rep := &harness.Report{RunID: id, Vector: vector, Total: total, Passed: total}
	for i := 0; i < total; i++ {
		rep.Cases = append(rep.Cases, harness.CaseResult{Index: i, Passed: true})
	}
	return rep
}

func TestOpenOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Reopen: schema application is idempotent.
	s, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestRecordAndGetRun(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rep := &harness.Report{
		RunID:  "run-0001",
		Vector: "u8-arithmetic",
		Total:  3,
		Passed: 2,
		Failed: 1,
		Cases: []harness.CaseResult{
			{Index: 0, Op: "add", Width: "u8", Variant: "panicking", Passed: true},
			{Index: 1, Op: "add", Width: "u8", Variant: "checked", Passed: true},
			{Index: 2, Op: "sub", Width: "u8", Variant: "wrapping", Passed: false, Reason: "got value 255, want value 0"},
		},
	}
	require.NoError(t, s.RecordRun(ctx, 1, rep))

	got, failures, err := s.GetRun(ctx, "run-0001")
	require.NoError(t, err)
	assert.Equal(t, "u8-arithmetic", got.Vector)
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 2, got.Passed)
	assert.Equal(t, 1, got.Failed)
	assert.Equal(t, int64(1), got.Seq)

	require.Len(t, failures, 1)
	assert.Equal(t, 2, failures[0].CaseIndex)
	assert.Equal(t, "sub", failures[0].Op)
	assert.Equal(t, "got value 255, want value 0", failures[0].Reason)
}

func TestRecordRunIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rep := passedReport("run-0001", "vec", 2)
	require.NoError(t, s.RecordRun(ctx, 1, rep))

	// Same ID with different counts: first record wins.
	dup := passedReport("run-0001", "vec", 5)
	require.NoError(t, s.RecordRun(ctx, 2, dup))

	got, _, err := s.GetRun(ctx, "run-0001")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Total)
	assert.Equal(t, int64(1), got.Seq)

	runs, err := s.ListRuns(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestListRunsOrderedBySeq(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	clock := testutil.NewLogicalClock()

	// Insert out of ID order so the listing must rely on seq.
	require.NoError(t, s.RecordRun(ctx, clock.Next(), passedReport("run-b", "second", 1)))
	require.NoError(t, s.RecordRun(ctx, clock.Next(), passedReport("run-a", "first", 1)))

	runs, err := s.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-b", runs[0].ID)
	assert.Equal(t, "run-a", runs[1].ID)

	limited, err := s.ListRuns(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "run-b", limited[0].ID)
}

func TestGetRunNotFound(t *testing.T) {
	s := openTestStore(t)
	_, _, err := s.GetRun(context.Background(), "nope")
	require.ErrorIs(t, err, ErrRunNotFound)
}
