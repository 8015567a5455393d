package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFormatValueText(t *testing.T) {
	out, err := formatValue(int64(42), "text", false)
	require.NoError(t, err)
	require.Equal(t, "42", out)

	out, err = formatValue("hello", "text", false)
	require.NoError(t, err)
	require.Equal(t, "hello", out)
}

func TestFormatValueJSON(t *testing.T) {
	out, err := formatValue([]any{int64(1), "x"}, "json", false)
	require.NoError(t, err)
	require.JSONEq(t, `[1, "x"]`, out)
}

func TestFormatValueUnknownFormat(t *testing.T) {
	_, err := formatValue(1, "xml", false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown output format")
}
