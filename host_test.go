package clasp

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHost(t *testing.T) {
	var buf bytes.Buffer
	env := NewRootEnv(Options{Stdout: &buf, HostEval: true})

	testCases := []struct {
		In  string
		Out string
	}{
		{`(host "1 << 10")`, `1024`},
		{"(host \"len(`abc`)\")", `3`},
		{"(host \"`a` + `b`\")", `"ab"`},
		{`(host "3 > 2")`, `True`},
		{`(procedure? host)`, `True`},
	}

	for i := range testCases {
		value, err := Run([]byte(testCases[i].In), env)
		require.NoError(t, err, testCases[i].In)
		assert.Equal(t, testCases[i].Out, value.String(), testCases[i].In)
	}
}

func TestHostErrors(t *testing.T) {
	env := NewRootEnv(Options{HostEval: true})

	testCases := []string{
		`(host "x")`,
		`(host "[]int{1}")`,
		`(host "1 +")`,
		`(host "2i")`,
		`(host 1)`,
	}

	for i := range testCases {
		_, err := Run([]byte(testCases[i]), env)
		assert.True(t, errors.Is(err, ErrHost), "%s: %v", testCases[i], err)
	}
}

func TestHostIsOptIn(t *testing.T) {
	env, _ := newTestEnv()

	_, err := Run([]byte(`(host "1")`), env)
	assert.True(t, errors.Is(err, ErrUnboundVariable))
}
