package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"

	"github.com/roach88/strictint"
	"github.com/roach88/strictint/internal/render"
)

// InspectResult describes one unsigned value's representation and bit
// structure.
type InspectResult struct {
	Width         string `json:"width"`
	Value         string `json:"value"`
	Grouped       string `json:"grouped"`
	Hex           string `json:"hex"`
	Binary        string `json:"binary"`
	BigEndian     string `json:"big_endian"`
	LittleEndian  string `json:"little_endian"`
	CountOnes     uint   `json:"count_ones"`
	LeadingZeros  uint   `json:"leading_zeros"`
	TrailingZeros uint   `json:"trailing_zeros"`
	PowerOfTwo    bool   `json:"power_of_two"`
	ReverseBits   string `json:"reverse_bits"`
	SwapBytes     string `json:"swap_bytes"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <width> <value>",
		Short: "Show a value's representation and bit structure",
		Long: `Show an unsigned value's decimal, hex, and binary forms, its byte order
renderings, and its bit queries. Widths are u8, u16, u32, and u64.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runInspect(opts *RootOptions, width, value string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	var (
		res *InspectResult
		err error
	)
	switch width {
	case "u8":
		res, err = inspect[uint8](width, value)
	case "u16":
		res, err = inspect[uint16](width, value)
	case "u32":
		res, err = inspect[uint32](width, value)
	case "u64":
		res, err = inspect[uint64](width, value)
	default:
		err = fmt.Errorf("width %q: inspect supports u8, u16, u32, u64", width)
	}
	if err != nil {
		formatter.Error(ErrCodeBadCase, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid value", err)
	}

	return formatter.Success(res, renderInspect(res))
}

func inspect[T constraints.Unsigned](width, value string) (*InspectResult, error) {
	bits := strictint.Width[T]()
	parsed, err := strconv.ParseUint(value, 0, int(bits))
	if err != nil {
		return nil, fmt.Errorf("value %q: %w", value, err)
	}
	v := T(parsed)

	return &InspectResult{
		Width:         width,
		Value:         strconv.FormatUint(uint64(v), 10),
		Grouped:       render.GroupedDecimal(uint64(v)),
		Hex:           render.Hex(uint64(v), bits),
		Binary:        render.Binary(uint64(v), bits),
		BigEndian:     render.Bytes(strictint.ToBEBytes(v)),
		LittleEndian:  render.Bytes(strictint.ToLEBytes(v)),
		CountOnes:     strictint.CountOnes(v),
		LeadingZeros:  strictint.LeadingZeros(v),
		TrailingZeros: strictint.TrailingZeros(v),
		PowerOfTwo:    strictint.IsPowerOfTwo(v),
		ReverseBits:   render.Hex(uint64(strictint.ReverseBits(v)), bits),
		SwapBytes:     render.Hex(uint64(strictint.SwapBytes(v)), bits),
	}, nil
}

func renderInspect(r *InspectResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", r.Width, r.Grouped)
	fmt.Fprintf(&b, "  hex            %s\n", r.Hex)
	fmt.Fprintf(&b, "  binary         %s\n", r.Binary)
	fmt.Fprintf(&b, "  bytes be       %s\n", r.BigEndian)
	fmt.Fprintf(&b, "  bytes le       %s\n", r.LittleEndian)
	fmt.Fprintf(&b, "  count_ones     %d\n", r.CountOnes)
	fmt.Fprintf(&b, "  leading_zeros  %d\n", r.LeadingZeros)
	fmt.Fprintf(&b, "  trailing_zeros %d\n", r.TrailingZeros)
	fmt.Fprintf(&b, "  power_of_two   %t\n", r.PowerOfTwo)
	fmt.Fprintf(&b, "  reverse_bits   %s\n", r.ReverseBits)
	fmt.Fprintf(&b, "  swap_bytes     %s", r.SwapBytes)
	return b.String()
}
