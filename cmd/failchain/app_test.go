package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestCat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "hello.txt", "hello\n")

	stdout, stderr, code := execute(t, "cat", path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "hello\n", stdout)
	assert.Empty(t, stderr)
}

func TestCat_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")

	stdout, stderr, code := execute(t, "cat", path)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.True(t, strings.HasPrefix(stderr, `FileFailure: cannot open "`+path+`"`), stderr)
	assert.Contains(t, stderr, "(errno = 2)")
}

func TestIni(t *testing.T) {
	path := writeFile(t, t.TempDir(), "app.ini", "[server]\nport = 8080\nhosts = a;b\n")

	stdout, _, code := execute(t, "ini", path, "server", "port")
	assert.Equal(t, 0, code)
	assert.Equal(t, "8080\n", stdout)

	stdout, _, code = execute(t, "ini", "--list", path, "server", "hosts")
	assert.Equal(t, 0, code)
	assert.Equal(t, "a\nb\n", stdout)
}

func TestIni_MissingKeyRendersCause(t *testing.T) {
	path := writeFile(t, t.TempDir(), "app.ini", "[server]\nport = 8080\n")

	_, stderr, code := execute(t, "--indent", "  ", "ini", path, "server", "nope")
	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(stderr,
		"LogicFailure: could not get string value: key \"nope\" not found in group \"server\":\n  "), stderr)
}

func TestTeardown(t *testing.T) {
	dir := t.TempDir()
	ok := writeFile(t, dir, "ok.pid", "1")
	missing := filepath.Join(dir, "gone.pid")
	cfg := writeFile(t, dir, "app.ini",
		"[teardown]\nfirst = "+ok+"\nsecond = "+missing+"\nthird = "+dir+"\n")

	t.Run("failures become history", func(t *testing.T) {
		_, stderr, code := execute(t, "--indent", "  ", "--log-level", "error", "teardown", cfg)
		assert.Equal(t, 1, code)

		want := "ShutdownFailure: teardown: 2 of 3 step(s) failed\n" +
			"  Exception history:\n" +
			"    Exception #1:\n" +
			"      ResourceFailure: second failed:\n" +
			"        FileFailure: cannot open \"" + missing + "\": no such file or directory (errno = 2)\n" +
			"    Exception #2:\n" +
			"      ResourceFailure: third failed:\n" +
			"        FileFailure: \"" + dir + "\" is not a regular file\n"
		// The shutdown.incomplete record precedes the rendered failure.
		assert.Contains(t, stderr, "msg=shutdown.incomplete")
		assert.Contains(t, stderr, want)
	})

	t.Run("all readable", func(t *testing.T) {
		good := writeFile(t, dir, "good.ini", "[teardown]\na = "+ok+"\n")
		stdout, _, code := execute(t, "teardown", good)
		assert.Equal(t, 0, code)
		assert.Equal(t, "teardown complete: 1 step(s)\n", stdout)
	})

	t.Run("missing group", func(t *testing.T) {
		empty := writeFile(t, dir, "empty.ini", "[other]\nx = 1\n")
		_, stderr, code := execute(t, "teardown", empty)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, `group "teardown" not found`)
	})
}

func TestEnvironmentConfiguresIndent(t *testing.T) {
	t.Setenv("FAILCHAIN_INDENT", "\t")
	path := writeFile(t, t.TempDir(), "app.ini", "[server]\n")

	_, stderr, code := execute(t, "ini", path, "server", "port")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, ":\n\t")
}

func TestInvalidLogLevel(t *testing.T) {
	_, stderr, code := execute(t, "--log-level", "loud", "cat", "x")
	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(stderr, `InvalidArgumentFailure: invalid log level "loud"`), stderr)
}

func TestUnknownCommand(t *testing.T) {
	_, stderr, code := execute(t, "frobnicate")
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, stderr)
}
