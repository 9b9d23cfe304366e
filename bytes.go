package strictint

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

var nativeLittle = binary.NativeEndian.Uint16([]byte{0x01, 0x02}) == 0x0201

// ToBE converts v from the native byte order to big-endian. On big-endian
// targets this is the identity.
func ToBE[T constraints.Unsigned](v T) T {
	if nativeLittle {
		return SwapBytes(v)
	}
	return v
}

// FromBE converts v from big-endian to the native byte order.
func FromBE[T constraints.Unsigned](v T) T {
	return ToBE(v)
}

// ToLE converts v from the native byte order to little-endian. On
// little-endian targets this is the identity.
func ToLE[T constraints.Unsigned](v T) T {
	if nativeLittle {
		return v
	}
	return SwapBytes(v)
}

// FromLE converts v from little-endian to the native byte order.
func FromLE[T constraints.Unsigned](v T) T {
	return ToLE(v)
}

// ToBEBytes returns the width/8 bytes of v, most significant first.
func ToBEBytes[T constraints.Unsigned](v T) []byte {
	n := int(Width[T]() / 8)
	b := make([]byte, n)
	u := uint64(v)
	for i := n - 1; i >= 0; i-- {
		b[i] = byte(u)
		u >>= 8
	}
	return b
}

// ToLEBytes returns the width/8 bytes of v, least significant first.
func ToLEBytes[T constraints.Unsigned](v T) []byte {
	n := int(Width[T]() / 8)
	b := make([]byte, n)
	u := uint64(v)
	for i := range b {
		b[i] = byte(u)
		u >>= 8
	}
	return b
}

// ToNEBytes returns the width/8 bytes of v in the native byte order.
func ToNEBytes[T constraints.Unsigned](v T) []byte {
	if nativeLittle {
		return ToLEBytes(v)
	}
	return ToBEBytes(v)
}

// FromBEBytes reassembles a value from width/8 big-endian bytes, panicking
// with [ErrByteLength] when the slice length does not match.
func FromBEBytes[T constraints.Unsigned](b []byte) T {
	if len(b) != int(Width[T]()/8) {
		panic(ErrByteLength)
	}
	var u uint64
	for _, c := range b {
		u = u<<8 | uint64(c)
	}
	return T(u)
}

// FromLEBytes reassembles a value from width/8 little-endian bytes,
// panicking with [ErrByteLength] when the slice length does not match.
func FromLEBytes[T constraints.Unsigned](b []byte) T {
	if len(b) != int(Width[T]()/8) {
		panic(ErrByteLength)
	}
	var u uint64
	for i := len(b) - 1; i >= 0; i-- {
		u = u<<8 | uint64(b[i])
	}
	return T(u)
}

// FromNEBytes reassembles a value from width/8 native-order bytes,
// panicking with [ErrByteLength] when the slice length does not match.
func FromNEBytes[T constraints.Unsigned](b []byte) T {
	if nativeLittle {
		return FromLEBytes[T](b)
	}
	return FromBEBytes[T](b)
}
