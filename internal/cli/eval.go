package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/strictint/internal/harness"
	"github.com/roach88/strictint/internal/vector"
)

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <width> <variant> <op> <a> [b]",
		Short: "Evaluate a single operation",
		Long: `Evaluate one operation at the given width under the given overflow policy.

Widths are u8..u64 and i8..i64; variants are panicking, checked,
overflowing, saturating, and wrapping. Shift amounts, exponents, and
logarithm bases travel in the second operand. Panics are captured and
reported as the outcome, not as a crash.

Examples:
  strictint eval u8 panicking add 250 6
  strictint eval i32 saturating neg -2147483648
  strictint eval u32 checked pow 3 31`,
		Args:          cobra.RangeArgs(4, 5),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runEval(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	c := vector.Case{Width: args[0], Variant: args[1], Op: args[2], A: args[3]}
	if len(args) == 5 {
		c.B = args[4]
	}

	out, err := harness.Execute(c)
	if err != nil {
		formatter.Error(ErrCodeBadCase, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid case", err)
	}

	return formatter.Success(out, out.String())
}
