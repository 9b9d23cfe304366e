package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/strictint/internal/vector"
)

// ValidationResult holds validation results for a vector file.
type ValidationResult struct {
	Valid  bool   `json:"valid"`
	Vector string `json:"vector,omitempty"`
	Cases  int    `json:"cases"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <vector-file>",
		Short: "Validate a vector file without running it",
		Long: `Validate a conformance vector file against the vector schema.

Performs YAML parsing and CUE schema validation without evaluating any
cases. Faster than run for authoring feedback.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	v, err := vector.Load(path)
	if err != nil {
		code := ErrCodeBadVector
		var le *vector.LoadError
		if errors.As(err, &le) && le.Code == vector.ErrCodeNotFound {
			code = ErrCodeNotFound
		}
		formatter.Error(code, err.Error(), nil)
		return WrapExitError(ExitCommandError, code, err)
	}

	formatter.VerboseLog("Loaded %d case(s) from %s", len(v.Cases), path)

	res := ValidationResult{Valid: true, Vector: v.Name, Cases: len(v.Cases)}
	return formatter.Success(res, fmt.Sprintf("✓ %s valid (%d cases)", v.Name, len(v.Cases)))
}
