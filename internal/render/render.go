// Package render formats integer values for human-readable CLI output.
//
// The arithmetic core never formats anything; these adapters sit at the
// tool boundary only.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// GroupedDecimal renders v with locale digit grouping ("4,294,967,295").
func GroupedDecimal(v uint64) string {
	return printer.Sprintf("%d", v)
}

// GroupedDecimalSigned renders v with locale digit grouping, keeping the
// sign.
func GroupedDecimalSigned(v int64) string {
	return printer.Sprintf("%d", v)
}

// Hex renders v with a 0x prefix, zero-padded to the given bit width.
func Hex(v uint64, width uint) string {
	return fmt.Sprintf("%#0*x", int(width/4)+2, v)
}

// Binary renders the low width bits of v in nibble groups:
// "1101_1110_1010_1101".
func Binary(v uint64, width uint) string {
	var sb strings.Builder
	for i := int(width) - 1; i >= 0; i-- {
		sb.WriteByte('0' + byte(v>>uint(i)&1))
		if i > 0 && i%4 == 0 {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// Bytes renders a byte slice as space-separated hex pairs: "12 34 56 78".
func Bytes(b []byte) string {
	var sb strings.Builder
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", c)
	}
	return sb.String()
}
