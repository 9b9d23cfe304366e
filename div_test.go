package strictint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiv(t *testing.T) {
	assert.Equal(t, uint32(33), Div(uint32(100), uint32(3)))
	assert.Equal(t, int32(-33), Div(int32(100), int32(-3)))

	assert.PanicsWithValue(t, ErrDivByZero, func() {
		Div(uint32(100), uint32(0))
	})
	assert.PanicsWithValue(t, ErrDivOverflow, func() {
		Div(int32(math.MinInt32), int32(-1))
	})
}

func TestCheckedDiv(t *testing.T) {
	v, ok := CheckedDiv(uint32(100), uint32(3))
	require.True(t, ok)
	assert.Equal(t, uint32(33), v)

	_, ok = CheckedDiv(uint32(0), uint32(0))
	assert.False(t, ok)

	_, ok = CheckedDiv(int32(math.MinInt32), int32(-1))
	assert.False(t, ok)
}

func TestOverflowingDiv(t *testing.T) {
	v, over := OverflowingDiv(uint32(100), uint32(3))
	assert.Equal(t, uint32(33), v)
	assert.False(t, over)

	v32, over := OverflowingDiv(int32(math.MinInt32), int32(-1))
	assert.Equal(t, int32(math.MinInt32), v32)
	assert.True(t, over)

	assert.PanicsWithValue(t, ErrDivByZero, func() {
		OverflowingDiv(uint32(100), uint32(0))
	})
}

func TestSaturatingDiv(t *testing.T) {
	assert.Equal(t, uint32(33), SaturatingDiv(uint32(100), uint32(3)))
	assert.Equal(t, int32(math.MaxInt32), SaturatingDiv(int32(math.MinInt32), int32(-1)))

	assert.PanicsWithValue(t, ErrDivByZero, func() {
		SaturatingDiv(uint32(100), uint32(0))
	})
}

func TestWrappingDiv(t *testing.T) {
	assert.Equal(t, uint32(33), WrappingDiv(uint32(100), uint32(3)))
	assert.Equal(t, int32(math.MinInt32), WrappingDiv(int32(math.MinInt32), int32(-1)))

	assert.PanicsWithValue(t, ErrDivByZero, func() {
		WrappingDiv(uint32(100), uint32(0))
	})
}

func TestRem(t *testing.T) {
	assert.Equal(t, uint32(1), Rem(uint32(100), uint32(3)))
	assert.Equal(t, int32(-1), Rem(int32(-100), int32(3)))

	assert.PanicsWithValue(t, ErrRemByZero, func() {
		Rem(uint32(100), uint32(0))
	})
	assert.PanicsWithValue(t, ErrRemOverflow, func() {
		Rem(int32(math.MinInt32), int32(-1))
	})
}

func TestCheckedRem(t *testing.T) {
	v, ok := CheckedRem(uint32(100), uint32(3))
	require.True(t, ok)
	assert.Equal(t, uint32(1), v)

	_, ok = CheckedRem(uint32(0), uint32(0))
	assert.False(t, ok)

	_, ok = CheckedRem(int32(math.MinInt32), int32(-1))
	assert.False(t, ok)
}

func TestOverflowingRem(t *testing.T) {
	v, over := OverflowingRem(uint32(100), uint32(3))
	assert.Equal(t, uint32(1), v)
	assert.False(t, over)

	v32, over := OverflowingRem(int32(math.MinInt32), int32(-1))
	assert.Equal(t, int32(0), v32)
	assert.True(t, over)

	assert.PanicsWithValue(t, ErrRemByZero, func() {
		OverflowingRem(uint32(100), uint32(0))
	})
}

func TestDivEuclid(t *testing.T) {
	// For unsigned operands Euclidean and truncating division coincide.
	assert.Equal(t, uint32(2), DivEuclid(uint32(7), uint32(3)))
	assert.Equal(t, uint32(1), RemEuclid(uint32(7), uint32(3)))

	// Signed: the remainder is always non-negative.
	assert.Equal(t, int32(2), DivEuclid(int32(7), int32(3)))
	assert.Equal(t, int32(-3), DivEuclid(int32(-7), int32(3)))
	assert.Equal(t, int32(-2), DivEuclid(int32(7), int32(-3)))
	assert.Equal(t, int32(3), DivEuclid(int32(-7), int32(-3)))

	assert.Equal(t, int32(1), RemEuclid(int32(7), int32(3)))
	assert.Equal(t, int32(2), RemEuclid(int32(-7), int32(3)))
	assert.Equal(t, int32(1), RemEuclid(int32(7), int32(-3)))
	assert.Equal(t, int32(2), RemEuclid(int32(-7), int32(-3)))

	assert.PanicsWithValue(t, ErrDivByZero, func() {
		DivEuclid(uint32(7), uint32(0))
	})
	assert.PanicsWithValue(t, ErrRemByZero, func() {
		RemEuclid(uint32(7), uint32(0))
	})
	assert.PanicsWithValue(t, ErrDivOverflow, func() {
		DivEuclid(int32(math.MinInt32), int32(-1))
	})
}

func TestCheckedDivRemEuclid(t *testing.T) {
	v, ok := CheckedDivEuclid(int32(-7), int32(3))
	require.True(t, ok)
	assert.Equal(t, int32(-3), v)

	_, ok = CheckedDivEuclid(int32(7), int32(0))
	assert.False(t, ok)

	r, ok := CheckedRemEuclid(int32(-7), int32(3))
	require.True(t, ok)
	assert.Equal(t, int32(2), r)

	_, ok = CheckedRemEuclid(int32(math.MinInt32), int32(-1))
	assert.False(t, ok)
}

func TestOverflowingDivRemEuclid(t *testing.T) {
	q, over := OverflowingDivEuclid(int32(math.MinInt32), int32(-1))
	assert.Equal(t, int32(math.MinInt32), q)
	assert.True(t, over)

	r, over := OverflowingRemEuclid(int32(math.MinInt32), int32(-1))
	assert.Equal(t, int32(0), r)
	assert.True(t, over)

	q, over = OverflowingDivEuclid(int32(-7), int32(3))
	assert.Equal(t, int32(-3), q)
	assert.False(t, over)
}

func TestWrappingDivRemEuclid(t *testing.T) {
	assert.Equal(t, int32(math.MinInt32), WrappingDivEuclid(int32(math.MinInt32), int32(-1)))
	assert.Equal(t, int32(0), WrappingRemEuclid(int32(math.MinInt32), int32(-1)))
	assert.Equal(t, uint32(2), WrappingDivEuclid(uint32(7), uint32(3)))
}

func TestDivCeil(t *testing.T) {
	assert.Equal(t, uint32(0), DivCeil(uint32(0), uint32(4)))
	assert.Equal(t, uint32(1), DivCeil(uint32(1), uint32(4)))
	assert.Equal(t, uint32(1), DivCeil(uint32(4), uint32(4)))
	assert.Equal(t, uint32(2), DivCeil(uint32(5), uint32(4)))
	assert.Equal(t, uint32(math.MaxUint32), DivCeil(uint32(math.MaxUint32), uint32(1)))

	assert.PanicsWithValue(t, ErrDivByZero, func() {
		DivCeil(uint32(5), uint32(0))
	})
}

func TestNextMultipleOf(t *testing.T) {
	assert.Equal(t, uint32(24), NextMultipleOf(uint32(23), uint32(8)))
	assert.Equal(t, uint32(16), NextMultipleOf(uint32(16), uint32(8)))
	assert.Equal(t, uint32(0), NextMultipleOf(uint32(0), uint32(8)))

	assert.PanicsWithValue(t, ErrRemByZero, func() {
		NextMultipleOf(uint32(23), uint32(0))
	})
	assert.PanicsWithValue(t, ErrAddOverflow, func() {
		NextMultipleOf(uint32(math.MaxUint32), uint32(8))
	})
}

func TestCheckedNextMultipleOf(t *testing.T) {
	v, ok := CheckedNextMultipleOf(uint32(23), uint32(8))
	require.True(t, ok)
	assert.Equal(t, uint32(24), v)

	v, ok = CheckedNextMultipleOf(uint32(16), uint32(8))
	require.True(t, ok)
	assert.Equal(t, uint32(16), v)

	_, ok = CheckedNextMultipleOf(uint32(23), uint32(0))
	assert.False(t, ok)

	_, ok = CheckedNextMultipleOf(uint32(math.MaxUint32), uint32(8))
	assert.False(t, ok)
}
