package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectU16(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewInspectCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"u16", "4660"})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "u16 4,660")
	assert.Contains(t, out, "hex            0x1234")
	assert.Contains(t, out, "binary         0001_0010_0011_0100")
	assert.Contains(t, out, "bytes be       12 34")
	assert.Contains(t, out, "bytes le       34 12")
	assert.Contains(t, out, "count_ones     5")
	assert.Contains(t, out, "power_of_two   false")
	assert.Contains(t, out, "swap_bytes     0x3412")
}

func TestInspectJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewInspectCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"u32", "4294967295"})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	var res InspectResult
	require.NoError(t, json.Unmarshal(resp.Data, &res))
	assert.Equal(t, "4294967295", res.Value)
	assert.Equal(t, "4,294,967,295", res.Grouped)
	assert.Equal(t, "0xffffffff", res.Hex)
	assert.Equal(t, uint(32), res.CountOnes)
	assert.Equal(t, uint(0), res.LeadingZeros)
	assert.False(t, res.PowerOfTwo)
}

func TestInspectHexInput(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewInspectCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"u8", "0x80"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "power_of_two   true")
}

func TestInspectRejectsSignedWidth(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewInspectCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"i32", "7"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "E006")
}

func TestInspectRejectsOutOfRangeValue(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewInspectCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"u8", "256"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
