package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/strictint/internal/harness"
)

func TestEvalWrappingAdd(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewEvalCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"u8", "wrapping", "add", "250", "6"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "value 0\n", buf.String())
}

func TestEvalCapturesPanic(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewEvalCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"u8", "panicking", "add", "250", "6"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "attempt to add with overflow")
}

func TestEvalUnaryOperation(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewEvalCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"i32", "saturating", "neg", "-2147483648"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "value 2147483647\n", buf.String())
}

func TestEvalJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewEvalCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"u8", "overflowing", "add", "250", "6"})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	var out harness.Outcome
	require.NoError(t, json.Unmarshal(resp.Data, &out))
	assert.Equal(t, "0", out.Value)
	require.NotNil(t, out.Flag)
	assert.True(t, *out.Flag)
}

func TestEvalInvalidCase(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewEvalCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"u128", "panicking", "add", "1", "2"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "E006")
}

func TestEvalVariantNotOffered(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewEvalCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"u8", "saturating", "rem", "7", "2"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
