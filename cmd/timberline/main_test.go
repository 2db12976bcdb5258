package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestJoistCommand(t *testing.T) {
	out, err := run(t, "joist", "--span", "6", "--spacing", "800", "--load", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "120 x 335 mm")
	assert.Contains(t, out, "deflection")
}

func TestDesignCommand(t *testing.T) {
	out, err := run(t, "design", "--length", "48", "--width", "24", "--bays-length", "8", "--bays-width", "4", "--load", "3", "--floors", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "INTERIOR BEAM")
	assert.Contains(t, out, "VALIDATION: OK")
}

func TestBeamCommand_MissingFlag(t *testing.T) {
	_, err := run(t, "beam", "--span", "8", "--load", "3")
	assert.Error(t, err)
}

func TestHashPasswordCommand(t *testing.T) {
	out, err := run(t, "hash-password", "s3cret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "$2a$"), out)
}
