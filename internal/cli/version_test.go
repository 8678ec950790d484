package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd := NewRootCmd("test", "none", "unknown")
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCmd_EncodesGivenTimestamp(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "version", "--build", "0", "--major", "2", "--at", "2025-05-01T00:20:34Z")
	require.NoError(t, err)
	require.Equal(t, "0.2.20252.30947\n", out)
}

func TestVersionCmd_RejectsUnencodableYear(t *testing.T) {
	t.Parallel()

	_, err := runCommand(t, "version", "--build", "0", "--major", "1", "--at", "6554-01-01T00:00:00Z")
	require.Error(t, err)
}

func TestVersionCmd_DecodesBucket(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "version", "--decode", "0.2.20252.30947")
	require.NoError(t, err)
	require.Contains(t, out, "0.2.20252.30947")
	require.Contains(t, out, "2025-05-01T00:20:16Z")
}

func TestVersionCmd_RejectsMalformedAt(t *testing.T) {
	t.Parallel()

	_, err := runCommand(t, "version", "--build", "0", "--major", "1", "--at", "yesterday")
	require.Error(t, err)
}
