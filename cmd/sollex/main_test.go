package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTable(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(nil, strings.NewReader("decl a = 42;\n// done\nb"), &stdout, &stderr)
	require.NoError(t, err)

	want := strings.Join([]string{
		"1:1\tDecl\tdecl",
		"1:6\tIdentifier\ta",
		"1:8\tAssign\t=",
		"1:10\tInteger\t42",
		"1:12\tSemicolon\t;",
		"3:1\tIdentifier\tb",
		"",
	}, "\n")
	assert.Equal(t, want, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.sol")
	require.NoError(t, os.WriteFile(path, []byte("fn f() { return 1; }"), 0o666))

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{path}, nil, &stdout, &stderr))
	assert.Equal(t, 9, strings.Count(stdout.String(), "\n"))
	assert.True(t, strings.HasPrefix(stdout.String(), "1:1\tFun\tfn\n"))
}

func TestRunDump(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-dump"}, strings.NewReader("decl"), &stdout, &stderr))
	out := stdout.String()
	assert.Contains(t, out, `Type: (token.Type) 3,`)
	assert.Contains(t, out, `Line: (int) 1,`)
	assert.Contains(t, out, `Column: (int) 1,`)
	assert.Contains(t, out, `Text: (string) (len=4) "decl"`)
	assert.NotContains(t, out, `(token.Token) decl`)
}

func TestRunInvalid(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-invalid"}, strings.NewReader("^&~ b"), &stdout, &stderr)
	require.ErrorIs(t, err, errInvalid)
	assert.ErrorContains(t, err, "3 found")
	assert.Equal(t, "1:1: invalid token \"^\"\n1:2: invalid token \"&\"\n1:3: invalid token \"~\"\n", stderr.String())
	assert.Equal(t, 4, strings.Count(stdout.String(), "\n"))

	// Without the flag invalid tokens are only listed.
	stdout.Reset()
	stderr.Reset()
	require.NoError(t, run(nil, strings.NewReader("^"), &stdout, &stderr))
	assert.Equal(t, "1:1\tInvalid\t^\n", stdout.String())
}

func TestRunErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.ErrorIs(t, run([]string{"-h"}, nil, &stdout, &stderr), flag.ErrHelp)
	assert.ErrorIs(t, run([]string{filepath.Join(t.TempDir(), "missing.sol")}, nil, &stdout, &stderr), os.ErrNotExist)
	assert.ErrorContains(t, run([]string{"a", "b"}, nil, &stdout, &stderr), "at most one file")
}
