package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupedDecimal(t *testing.T) {
	assert.Equal(t, "0", GroupedDecimal(0))
	assert.Equal(t, "999", GroupedDecimal(999))
	assert.Equal(t, "1,000", GroupedDecimal(1000))
	assert.Equal(t, "4,294,967,295", GroupedDecimal(4294967295))
	assert.Equal(t, "18,446,744,073,709,551,615", GroupedDecimal(18446744073709551615))
}

func TestGroupedDecimalSigned(t *testing.T) {
	assert.Equal(t, "-2,147,483,648", GroupedDecimalSigned(-2147483648))
	assert.Equal(t, "42", GroupedDecimalSigned(42))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "0x000000ff", Hex(255, 32))
	assert.Equal(t, "0xff", Hex(255, 8))
	assert.Equal(t, "0x0000", Hex(0, 16))
}

func TestBinary(t *testing.T) {
	assert.Equal(t, "1111_1111", Binary(255, 8))
	assert.Equal(t, "0000_0001", Binary(1, 8))
	assert.Equal(t, "0001_0010_0011_0100", Binary(0x1234, 16))
}

func TestBytes(t *testing.T) {
	assert.Equal(t, "12 34 56 78", Bytes([]byte{0x12, 0x34, 0x56, 0x78}))
	assert.Equal(t, "", Bytes(nil))
}
