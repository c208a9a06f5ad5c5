package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func writeTestFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "app.ini")

	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)

	return path
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path) // #nosec G304 -- test path under t.TempDir
	require.NoError(t, err)

	return string(data)
}

func TestGetCmd(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "top=global\n[net]\nport=8080\n")

	out, err := runCmd(t, "get", path, "port", "--section", "net")

	require.NoError(t, err)
	assert.Equal(t, "8080\n", out)
}

func TestGetCmd_GlobalSection(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "top=global\n[net]\nport=8080\n")

	out, err := runCmd(t, "get", path, "top")

	require.NoError(t, err)
	assert.Equal(t, "global\n", out)
}

func TestGetCmd_MissingKey(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "[net]\nport=8080\n")

	_, err := runCmd(t, "get", path, "ghost", "--section", "net")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "key not found")
}

func TestGetCmd_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := runCmd(t, "get", filepath.Join(t.TempDir(), "missing.ini"), "port")

	require.Error(t, err)
}

func TestSetCmd_UpdatesExistingFile(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "; banner\n[net]\nport=8080\n")

	_, err := runCmd(t, "set", path, "port", "9090", "--section", "net")

	require.NoError(t, err)

	content := readTestFile(t, path)
	assert.Contains(t, content, "port=9090")
	assert.Contains(t, content, "; banner", "comments survive an edit")
}

func TestSetCmd_CreatesMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fresh.ini")

	_, err := runCmd(t, "set", path, "host", "localhost", "--section", "net", "--comment", "primary host")

	require.NoError(t, err)

	content := readTestFile(t, path)
	assert.Contains(t, content, "[net]")
	assert.Contains(t, content, "; primary host")
	assert.Contains(t, content, "host=localhost")
}

func TestDelCmd(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "[net]\nhost=localhost\nport=8080\n")

	_, err := runCmd(t, "del", path, "host", "--section", "net")

	require.NoError(t, err)

	content := readTestFile(t, path)
	assert.NotContains(t, content, "host=localhost")
	assert.Contains(t, content, "port=8080")
}

func TestDelCmd_MissingKey(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "[net]\nport=8080\n")

	_, err := runCmd(t, "del", path, "ghost", "--section", "net")

	require.Error(t, err)
}

func TestDelSectionCmd(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "[net]\nport=8080\n\n[keep]\na=1\n")

	_, err := runCmd(t, "del-section", path, "net")

	require.NoError(t, err)

	content := readTestFile(t, path)
	assert.NotContains(t, content, "[net]")
	assert.Contains(t, content, "[keep]")
}

func TestSectionsCmd(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "top=1\n[net]\nhost=localhost\nport=8080\n")

	out, err := runCmd(t, "sections", path)

	require.NoError(t, err)
	assert.Equal(t, "(global)\t1\nnet\t2\n", out)
}

func TestKeysCmd(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "[net]\nhost=localhost\nport=8080\n")

	out, err := runCmd(t, "keys", path, "--section", "net")

	require.NoError(t, err)
	assert.Equal(t, "host=localhost\nport=8080\n", out)
}

func TestKeysCmd_MissingSection(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "[net]\nport=8080\n")

	_, err := runCmd(t, "keys", path, "--section", "ghost")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "section not found")
}

func TestConvertCmd(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "[net]\nhost=localhost\n")

	out, err := runCmd(t, "convert", path)

	require.NoError(t, err)
	assert.Contains(t, out, "net:")
	assert.Contains(t, out, "host: localhost")
}

func TestConvertCmd_Reverse(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.yaml")

	err := os.WriteFile(path, []byte("net:\n  host: localhost\n"), 0o600)
	require.NoError(t, err)

	out, err := runCmd(t, "convert", path, "--reverse")

	require.NoError(t, err)
	assert.Contains(t, out, "[net]")
	assert.Contains(t, out, "host=localhost")
}
