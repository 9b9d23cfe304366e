package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/strictint/internal/harness"
	"github.com/roach88/strictint/internal/store"
	"github.com/roach88/strictint/internal/vector"
)

// RunCmdOptions holds flags specific to the run command.
type RunCmdOptions struct {
	Record bool
	DBPath string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunCmdOptions{}

	cmd := &cobra.Command{
		Use:   "run <vector-file>...",
		Short: "Run conformance vectors",
		Long: `Run one or more conformance vector files and report per-case results.

Exit code 0 when every case passes, 1 when any case fails, 2 for
command errors (missing files, malformed vectors). With --record, run
summaries and failing cases are appended to the run-history database.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Record, "record", false, "record run history")
	cmd.Flags().StringVar(&opts.DBPath, "db", "strictint-runs.db", "run-history database path")

	return cmd
}

func runRun(rootOpts *RootOptions, opts *RunCmdOptions, paths []string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd)

	logger := slog.New(slog.NewTextHandler(formatter.ErrWriter, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if rootOpts.Verbose {
		logger = slog.New(slog.NewTextHandler(formatter.ErrWriter, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	h := harness.New(harness.WithLogger(logger))

	var st *store.Store
	if opts.Record {
		var err error
		st, err = store.Open(opts.DBPath)
		if err != nil {
			formatter.Error(ErrCodeStore, err.Error(), nil)
			return WrapExitError(ExitCommandError, "opening run history", err)
		}
		defer st.Close()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		reports []*harness.Report
		failed  int
	)
	for _, path := range paths {
		rep, err := h.RunFile(path)
		if err != nil {
			code := ErrCodeBadVector
			var le *vector.LoadError
			if errors.As(err, &le) && le.Code == vector.ErrCodeNotFound {
				code = ErrCodeNotFound
			}
			formatter.Error(code, err.Error(), nil)
			return WrapExitError(ExitCommandError, code, err)
		}
		reports = append(reports, rep)
		failed += rep.Failed

		if st != nil {
			seq, err := st.NextSeq(ctx)
			if err == nil {
				err = st.RecordRun(ctx, seq, rep)
			}
			if err != nil {
				formatter.Error(ErrCodeStore, err.Error(), nil)
				return WrapExitError(ExitCommandError, "recording run", err)
			}
			formatter.VerboseLog("Recorded run %s (seq %d)", rep.RunID, seq)
		}
	}

	rendered := make([]string, len(reports))
	for i, rep := range reports {
		rendered[i] = strings.TrimRight(rep.Render(), "\n")
	}
	if err := formatter.Success(reports, strings.Join(rendered, "\n")); err != nil {
		return err
	}

	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d case(s) failed", failed))
	}
	return nil
}
