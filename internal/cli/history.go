package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/strictint/internal/store"
)

// HistoryCmdOptions holds flags specific to the history command.
type HistoryCmdOptions struct {
	DBPath string
	Limit  int
	RunID  string
}

// RunHistory is the JSON payload for history listings.
type RunHistory struct {
	Runs     []store.RunRecord     `json:"runs,omitempty"`
	Run      *store.RunRecord      `json:"run,omitempty"`
	Failures []store.FailureRecord `json:"failures,omitempty"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryCmdOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Long: `List recorded runs from the run-history database in logical order.

With --run, show one run's summary and its failing cases instead.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "strictint-runs.db", "run-history database path")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum runs to list (0 = all)")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "show one run by ID")

	return cmd
}

func runHistory(rootOpts *RootOptions, opts *HistoryCmdOptions, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd)

	st, err := store.Open(opts.DBPath)
	if err != nil {
		formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "opening run history", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.RunID != "" {
		return showRun(ctx, formatter, st, opts.RunID)
	}

	runs, err := st.ListRuns(ctx, opts.Limit)
	if err != nil {
		formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "listing runs", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d run(s)", len(runs))
	for _, r := range runs {
		fmt.Fprintf(&b, "\n%4d  %s  %s  %d/%d passed", r.Seq, r.ID, r.Vector, r.Passed, r.Total)
		if r.Failed > 0 {
			fmt.Fprintf(&b, "  %d FAILED", r.Failed)
		}
	}
	return formatter.Success(RunHistory{Runs: runs}, b.String())
}

func showRun(ctx context.Context, formatter *OutputFormatter, st *store.Store, id string) error {
	run, failures, err := st.GetRun(ctx, id)
	if err != nil {
		code := ErrCodeStore
		if errors.Is(err, store.ErrRunNotFound) {
			code = ErrCodeNotFound
		}
		formatter.Error(code, err.Error(), nil)
		return WrapExitError(ExitCommandError, code, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "run %s\nvector %s\ncases %d passed %d failed %d", run.ID, run.Vector, run.Total, run.Passed, run.Failed)
	for _, f := range failures {
		fmt.Fprintf(&b, "\n  [%02d] %s %s %s: %s", f.CaseIndex, f.Width, f.Op, f.Variant, f.Reason)
	}
	return formatter.Success(RunHistory{Run: run, Failures: failures}, b.String())
}
