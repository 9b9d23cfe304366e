package harness

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/roach88/strictint"
	"github.com/roach88/strictint/internal/vector"
)

// Outcome is what evaluating a single case produced. Exactly one of the
// value, Absent, or Panic forms is populated; Flag accompanies Value for
// overflowing variants.
type Outcome struct {
	Value  string `json:"value,omitempty"`
	Flag   *bool  `json:"flag,omitempty"`
	Absent bool   `json:"absent,omitempty"`
	Panic  string `json:"panic,omitempty"`
}

// String renders the outcome for reports and diagnostics.
func (o Outcome) String() string {
	switch {
	case o.Panic != "":
		return "panic " + strconv.Quote(o.Panic)
	case o.Absent:
		return "absent"
	case o.Flag != nil && *o.Flag:
		return "value " + o.Value + " (overflowed)"
	case o.Value == "":
		return "no result"
	default:
		return "value " + o.Value
	}
}

// Execute evaluates one case through the public strictint API.
// An error means the case itself is malformed (unknown width, unparseable
// operand, variant the operation does not offer); arithmetic failures are
// captured in the Outcome instead.
func Execute(c vector.Case) (Outcome, error) {
	switch c.Width {
	case "u8":
		return execUnsigned[uint8](c)
	case "u16":
		return execUnsigned[uint16](c)
	case "u32":
		return execUnsigned[uint32](c)
	case "u64":
		return execUnsigned[uint64](c)
	case "i8":
		return execCommon[int8](c)
	case "i16":
		return execCommon[int16](c)
	case "i32":
		return execCommon[int32](c)
	case "i64":
		return execCommon[int64](c)
	}
	return Outcome{}, fmt.Errorf("unknown width %q", c.Width)
}

// ops bundles one operation's variant family. A nil entry means the
// operation does not offer that variant.
type ops[T constraints.Integer] struct {
	pan func(a, b T) T
	chk func(a, b T) (T, bool)
	ovf func(a, b T) (T, bool)
	sat func(a, b T) T
	wrp func(a, b T) T
}

func (o ops[T]) run(variant string, a, b T) (Outcome, error) {
	switch variant {
	case "panicking":
		if o.pan != nil {
			return capture(func() Outcome { return value(o.pan(a, b)) }), nil
		}
	case "checked":
		if o.chk != nil {
			return capture(func() Outcome {
				v, ok := o.chk(a, b)
				if !ok {
					return Outcome{Absent: true}
				}
				return value(v)
			}), nil
		}
	case "overflowing":
		if o.ovf != nil {
			return capture(func() Outcome {
				v, f := o.ovf(a, b)
				out := value(v)
				out.Flag = &f
				return out
			}), nil
		}
	case "saturating":
		if o.sat != nil {
			return capture(func() Outcome { return value(o.sat(a, b)) }), nil
		}
	case "wrapping":
		if o.wrp != nil {
			return capture(func() Outcome { return value(o.wrp(a, b)) }), nil
		}
	}
	return Outcome{}, fmt.Errorf("variant %q not offered", variant)
}

// capture runs f and converts a strictint panic into an Outcome.
// Any other panic value is re-raised.
func capture(f func() Outcome) (out Outcome) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		ae, ok := r.(*strictint.ArithmeticError)
		if !ok {
			panic(r)
		}
		out = Outcome{Panic: ae.Message}
	}()
	return f()
}

func value[T constraints.Integer](v T) Outcome {
	return Outcome{Value: format(v)}
}

func format[T constraints.Integer](v T) string {
	var zero T
	if zero-1 < zero {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

func uintValue(v uint) Outcome {
	return Outcome{Value: strconv.FormatUint(uint64(v), 10)}
}

func parseOperand[T constraints.Integer](s string) (T, error) {
	var zero T
	bits := int(strictint.Width[T]())
	if zero-1 < zero {
		v, err := strconv.ParseInt(s, 0, bits)
		if err != nil {
			return zero, fmt.Errorf("operand %q: %w", s, err)
		}
		return T(v), nil
	}
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return zero, fmt.Errorf("operand %q: %w", s, err)
	}
	return T(v), nil
}

func parseAmount(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("shift amount %q: %w", s, err)
	}
	return uint(v), nil
}

func parseExponent(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("exponent %q: %w", s, err)
	}
	return uint32(v), nil
}

// execCommon handles the operations available at every width.
func execCommon[T constraints.Integer](c vector.Case) (Outcome, error) {
	a, err := parseOperand[T](c.A)
	if err != nil {
		return Outcome{}, err
	}

	switch c.Op {
	case "add", "sub", "mul", "div", "rem", "div_euclid", "rem_euclid":
		b, err := parseOperand[T](c.B)
		if err != nil {
			return Outcome{}, err
		}
		return binaryOps[T](c.Op).run(c.Variant, a, b)

	case "neg":
		o := ops[T]{
			pan: func(a, _ T) T { return strictint.Neg(a) },
			chk: func(a, _ T) (T, bool) { return strictint.CheckedNeg(a) },
			ovf: func(a, _ T) (T, bool) { return strictint.OverflowingNeg(a) },
			sat: func(a, _ T) T { return strictint.SaturatingNeg(a) },
			wrp: func(a, _ T) T { return strictint.WrappingNeg(a) },
		}
		return o.run(c.Variant, a, 0)

	case "shl", "shr":
		k, err := parseAmount(c.B)
		if err != nil {
			return Outcome{}, err
		}
		return shiftOps[T](c.Op, k).run(c.Variant, a, 0)

	case "pow":
		exp, err := parseExponent(c.B)
		if err != nil {
			return Outcome{}, err
		}
		o := ops[T]{
			pan: func(a, _ T) T { return strictint.Pow(a, exp) },
			chk: func(a, _ T) (T, bool) { return strictint.CheckedPow(a, exp) },
			ovf: func(a, _ T) (T, bool) { return strictint.OverflowingPow(a, exp) },
			wrp: func(a, _ T) T { return strictint.WrappingPow(a, exp) },
		}
		return o.run(c.Variant, a, 0)
	}
	return Outcome{}, fmt.Errorf("operation %q not offered at width %q", c.Op, c.Width)
}

func binaryOps[T constraints.Integer](op string) ops[T] {
	switch op {
	case "add":
		return ops[T]{
			pan: strictint.Add[T],
			chk: strictint.CheckedAdd[T],
			ovf: strictint.OverflowingAdd[T],
			sat: strictint.SaturatingAdd[T],
			wrp: strictint.WrappingAdd[T],
		}
	case "sub":
		return ops[T]{
			pan: strictint.Sub[T],
			chk: strictint.CheckedSub[T],
			ovf: strictint.OverflowingSub[T],
			sat: strictint.SaturatingSub[T],
			wrp: strictint.WrappingSub[T],
		}
	case "mul":
		return ops[T]{
			pan: strictint.Mul[T],
			chk: strictint.CheckedMul[T],
			ovf: strictint.OverflowingMul[T],
			sat: strictint.SaturatingMul[T],
			wrp: strictint.WrappingMul[T],
		}
	case "div":
		return ops[T]{
			pan: strictint.Div[T],
			chk: strictint.CheckedDiv[T],
			ovf: strictint.OverflowingDiv[T],
			sat: strictint.SaturatingDiv[T],
			wrp: strictint.WrappingDiv[T],
		}
	case "rem":
		return ops[T]{
			pan: strictint.Rem[T],
			chk: strictint.CheckedRem[T],
			ovf: strictint.OverflowingRem[T],
			wrp: strictint.WrappingRem[T],
		}
	case "div_euclid":
		return ops[T]{
			pan: strictint.DivEuclid[T],
			chk: strictint.CheckedDivEuclid[T],
			ovf: strictint.OverflowingDivEuclid[T],
			wrp: strictint.WrappingDivEuclid[T],
		}
	case "rem_euclid":
		return ops[T]{
			pan: strictint.RemEuclid[T],
			chk: strictint.CheckedRemEuclid[T],
			ovf: strictint.OverflowingRemEuclid[T],
			wrp: strictint.WrappingRemEuclid[T],
		}
	}
	return ops[T]{}
}

func shiftOps[T constraints.Integer](op string, k uint) ops[T] {
	if op == "shl" {
		return ops[T]{
			pan: func(a, _ T) T { return strictint.Shl(a, k) },
			chk: func(a, _ T) (T, bool) { return strictint.CheckedShl(a, k) },
			ovf: func(a, _ T) (T, bool) { return strictint.OverflowingShl(a, k) },
			wrp: func(a, _ T) T { return strictint.WrappingShl(a, k) },
		}
	}
	return ops[T]{
		pan: func(a, _ T) T { return strictint.Shr(a, k) },
		chk: func(a, _ T) (T, bool) { return strictint.CheckedShr(a, k) },
		ovf: func(a, _ T) (T, bool) { return strictint.OverflowingShr(a, k) },
		wrp: func(a, _ T) T { return strictint.WrappingShr(a, k) },
	}
}

// execUnsigned handles the unsigned-only operations and falls through to
// execCommon for the rest.
func execUnsigned[T constraints.Unsigned](c vector.Case) (Outcome, error) {
	switch c.Op {
	case "add_signed":
		a, err := parseOperand[T](c.A)
		if err != nil {
			return Outcome{}, err
		}
		d, err := strconv.ParseInt(c.B, 0, int(strictint.Width[T]()))
		if err != nil {
			return Outcome{}, fmt.Errorf("signed operand %q: %w", c.B, err)
		}
		o := ops[T]{
			pan: func(a, _ T) T { return strictint.AddSigned(a, d) },
			chk: func(a, _ T) (T, bool) { return strictint.CheckedAddSigned(a, d) },
			ovf: func(a, _ T) (T, bool) { return strictint.OverflowingAddSigned(a, d) },
			sat: func(a, _ T) T { return strictint.SaturatingAddSigned(a, d) },
			wrp: func(a, _ T) T { return strictint.WrappingAddSigned(a, d) },
		}
		return o.run(c.Variant, a, 0)

	case "log2", "log10", "log":
		return execLog[T](c)

	case "div_ceil":
		a, b, err := parsePair[T](c)
		if err != nil {
			return Outcome{}, err
		}
		if c.Variant != "panicking" {
			return Outcome{}, fmt.Errorf("variant %q not offered", c.Variant)
		}
		return capture(func() Outcome { return value(strictint.DivCeil(a, b)) }), nil

	case "next_multiple_of":
		a, m, err := parsePair[T](c)
		if err != nil {
			return Outcome{}, err
		}
		o := ops[T]{
			pan: strictint.NextMultipleOf[T],
			chk: strictint.CheckedNextMultipleOf[T],
		}
		return o.run(c.Variant, a, m)

	case "next_power_of_two":
		a, err := parseOperand[T](c.A)
		if err != nil {
			return Outcome{}, err
		}
		o := ops[T]{
			pan: func(a, _ T) T { return strictint.NextPowerOfTwo(a) },
			chk: func(a, _ T) (T, bool) { return strictint.CheckedNextPowerOfTwo(a) },
			wrp: func(a, _ T) T { return strictint.WrappingNextPowerOfTwo(a) },
		}
		return o.run(c.Variant, a, 0)

	case "rotate_left", "rotate_right":
		a, err := parseOperand[T](c.A)
		if err != nil {
			return Outcome{}, err
		}
		k, err := parseAmount(c.B)
		if err != nil {
			return Outcome{}, err
		}
		if c.Op == "rotate_left" {
			return value(strictint.RotateLeft(a, k)), nil
		}
		return value(strictint.RotateRight(a, k)), nil
	}
	return execCommon[T](c)
}

func execLog[T constraints.Unsigned](c vector.Case) (Outcome, error) {
	a, err := parseOperand[T](c.A)
	if err != nil {
		return Outcome{}, err
	}

	var (
		pan func(T) uint
		chk func(T) (uint, bool)
	)
	switch c.Op {
	case "log2":
		pan, chk = strictint.Log2[T], strictint.CheckedLog2[T]
	case "log10":
		pan, chk = strictint.Log10[T], strictint.CheckedLog10[T]
	case "log":
		base, err := parseOperand[T](c.B)
		if err != nil {
			return Outcome{}, err
		}
		pan = func(v T) uint { return strictint.Log(v, base) }
		chk = func(v T) (uint, bool) { return strictint.CheckedLog(v, base) }
	}

	switch c.Variant {
	case "panicking":
		return capture(func() Outcome { return uintValue(pan(a)) }), nil
	case "checked":
		v, ok := chk(a)
		if !ok {
			return Outcome{Absent: true}, nil
		}
		return uintValue(v), nil
	}
	return Outcome{}, fmt.Errorf("variant %q not offered", c.Variant)
}

func parsePair[T constraints.Unsigned](c vector.Case) (a, b T, err error) {
	if a, err = parseOperand[T](c.A); err != nil {
		return 0, 0, err
	}
	if b, err = parseOperand[T](c.B); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
