package clasp

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memFiles(files map[string]string) func(string) ([]byte, error) {
	return func(name string) ([]byte, error) {
		src, ok := files[name]
		if !ok {
			return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
		}
		return []byte(src), nil
	}
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.clasp")
	require.NoError(t, os.WriteFile(path, []byte(`
		(def square (lambda (x) (* x x)))
		(print (square 4))
		(square 5)
	`), 0o644))

	var buf bytes.Buffer
	value, err := RunFile(path, Options{Stdout: &buf})
	require.NoError(t, err)
	assert.Equal(t, int64(25), value.Int())
	assert.Equal(t, "16\n", buf.String())
}

func TestRunFileErrors(t *testing.T) {
	{
		_, err := RunFile(filepath.Join(t.TempDir(), "missing.clasp"), Options{})
		assert.True(t, errors.Is(err, ErrHost))
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	}

	{
		opts := Options{ReadFile: memFiles(map[string]string{"bad.clasp": `(def x 1) (raise "stop") (print "unreachable")`})}
		_, err := RunFile("bad.clasp", opts)
		assert.True(t, errors.Is(err, ErrRaised))
	}

	{
		opts := Options{ReadFile: memFiles(map[string]string{"open.clasp": `(def x (+ 1 2)`})}
		_, err := RunFile("open.clasp", opts)
		assert.True(t, errors.Is(err, ErrSyntax))
	}
}

func TestLoadIsolation(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{
		Stdout: &buf,
		ReadFile: memFiles(map[string]string{
			"lib.clasp":    `(def secret 42) (print "loaded" secret)`,
			"caller.clasp": `x`,
			"shadow.clasp": `(def x 2) (print x)`,
			"raise.clasp":  `(raise "from lib")`,
		}),
	}

	env := NewRootEnv(opts)

	{
		value, err := Run([]byte(`(load "lib.clasp")`), env)
		require.NoError(t, err)
		assert.Equal(t, Nil, value)
		assert.Equal(t, "loaded 42\n", buf.String())

		// bindings of a loaded file are not visible to the caller
		_, err = Run([]byte(`secret`), env)
		assert.True(t, errors.Is(err, ErrUnboundVariable))
	}

	{
		// and the caller's bindings are not visible to the loaded file
		_, err := Run([]byte(`(def x 1) (load "caller.clasp")`), env)
		assert.True(t, errors.Is(err, ErrUnboundVariable))
	}

	{
		buf.Reset()
		_, err := Run([]byte(`(load "shadow.clasp") x`), env)
		require.NoError(t, err)
		assert.Equal(t, "2\n", buf.String())

		value, err := Run([]byte(`x`), env)
		require.NoError(t, err)
		assert.Equal(t, int64(1), value.Int())
	}

	{
		// failures in a loaded file propagate to the caller
		_, err := Run([]byte(`(load "raise.clasp")`), env)
		assert.True(t, errors.Is(err, ErrRaised))

		_, err = Run([]byte(`(load "nope.clasp")`), env)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	}
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	lib := filepath.Join(dir, "lib.clasp")
	require.NoError(t, os.WriteFile(lib, []byte(`(print (str "hello from " "lib"))`), 0o644))

	env, buf := newTestEnv()
	_, err := Run([]byte(`(load "`+lib+`")`), env)
	require.NoError(t, err)
	assert.Equal(t, "hello from lib\n", buf.String())
}
