package clasp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltins(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`(+ 1 2)`, `3`},
		{`(+ 1 2.5)`, `3.5`},
		{`(+ "foo" "bar")`, `"foobar"`},
		{`(+ (list 1) (list 2 3))`, `(1 2 3)`},
		{`(- 10 4)`, `6`},
		{`(- 1.5 1)`, `0.5`},
		{`(* 4 5)`, `20`},
		{`(/ 7 2)`, `3.5`},
		{`(/ 6 3)`, `2.0`},
		{`(+ 9223372036854775807 1)`, `9.223372036854776e+18`},
		{`(+ 9223372036854775807 -1)`, `9223372036854775806`},
		{`(+ -9223372036854775808 -1)`, `-9.223372036854776e+18`},
		{`(- -9223372036854775808 1)`, `-9.223372036854776e+18`},
		{`(- 5 -3)`, `8`},
		{`(- 9223372036854775807 -1)`, `9.223372036854776e+18`},
		{`(* 4611686018427387904 2)`, `9.223372036854776e+18`},
		{`(* -9223372036854775808 -1)`, `9.223372036854776e+18`},
		{`(* -3 4)`, `-12`},
		{`(* 0 -9223372036854775808)`, `0`},
		{`(% 7 3)`, `1`},
		{`(% -7 3)`, `2`},
		{`(% 7.5 2)`, `1.5`},
		{`(> 2 1)`, `True`},
		{`(< 2 1)`, `False`},
		{`(>= 2 2.0)`, `True`},
		{`(<= 3 1)`, `False`},
		{`(< "a" "b")`, `True`},
		{`(not 0)`, `True`},
		{`(not (list 1))`, `False`},
		{`(and 1 2)`, `2`},
		{`(and 0 2)`, `0`},
		{`(or 0 "x")`, `"x"`},
		{`(or 3 "x")`, `3`},
		{`(begin 1 2 3)`, `3`},
		{`(begin 1)`, `1`},
		{`(len (list 1 2 3))`, `3`},
		{`(len "héllo")`, `5`},
		{`(len (list))`, `0`},
		{`(at (list 1 2 3) 1)`, `2`},
		{`(at (list 1 2 3) -1)`, `3`},
		{`(at "abc" 0)`, `"a"`},
		{`(list)`, `()`},
		{`(list 1 "a" (list))`, `(1 "a" ())`},
		{`(list? (list))`, `True`},
		{`(list? "abc")`, `False`},
		{`(head (list 1 2))`, `1`},
		{`(tail (list 1 2 3))`, `(2 3)`},
		{`(tail (list))`, `()`},
		{`(cons 0 (list 1))`, `(0 1)`},
		{`(cons (list) (list))`, `(())`},
		{`(reduce (list 1 2 3 4) +)`, `10`},
		{`(reduce (list 1) +)`, `1`},
		{`(reduce (list "a" "b" "c") (lambda (acc x) (str x acc)))`, `"cba"`},
		{`(eq? (list 1 (list 2)) (list 1 (list 2)))`, `True`},
		{`(eq? (list 1) (list 1 2))`, `False`},
		{`(eq? 1 1.0)`, `True`},
		{`(eq? "a" "b")`, `False`},
		{`(eq? 1 "1")`, `False`},
		{`(eq? + +)`, `True`},
		{`(procedure? +)`, `True`},
		{`(procedure? (lambda () 1))`, `True`},
		{`(procedure? 1)`, `False`},
		{`(print)`, `nil`},
	}

	for i := range testCases {
		value, err := runString(testCases[i].In)
		require.NoError(t, err, testCases[i].In)
		assert.Equal(t, testCases[i].Out, value.String(), testCases[i].In)
	}
}

func TestBuiltinErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{`(/ 1 0)`, ErrHost},
		{`(% 1 0)`, ErrHost},
		{`(- "a" 1)`, ErrHost},
		{`(> 1 "a")`, ErrHost},
		{`(head (list))`, ErrHost},
		{`(head 1)`, ErrHost},
		{`(at (list 1) 5)`, ErrHost},
		{`(at (list 1) "0")`, ErrHost},
		{`(at 1 0)`, ErrHost},
		{`(len 1)`, ErrHost},
		{`(cons 1 2)`, ErrHost},
		{`(reduce (list) +)`, ErrHost},
		{`(reduce 1 +)`, ErrHost},
		{`(reduce (list 1 2) 3)`, ErrNotCallable},
		{`(reduce (list 1 "b") +)`, ErrHost},
		{`(begin)`, ErrArity},
		{`(not 1 2)`, ErrArity},
		{`(load 1)`, ErrHost},
	}

	for i := range testCases {
		_, err := runString(testCases[i].In)
		require.Error(t, err, testCases[i].In)
		assert.True(t, errors.Is(err, testCases[i].Err), "%s: %v", testCases[i].In, err)
	}
}

func TestBuiltinPrint(t *testing.T) {
	env, buf := newTestEnv()

	value, err := Run([]byte(`(print "hello" 1 2.5 (list "a" 1) True (def z 1))`), env)
	require.NoError(t, err)
	assert.Equal(t, Nil, value)

	assert.Equal(t, "hello 1 2.5 (\"a\" 1) True nil\n", buf.String())
}

func TestBuiltinsAreFresh(t *testing.T) {
	a, _ := newTestEnv()
	b, _ := newTestEnv()

	// builtins live in the root frame, they can't be redefined there
	_, err := Run([]byte(`(def + 1)`), a)
	assert.True(t, errors.Is(err, ErrRedefinition))

	// but set! replaces them for that environment only
	_, err = Run([]byte(`(set! + -)`), a)
	require.NoError(t, err)

	value, err := Run([]byte(`(+ 5 3)`), a)
	require.NoError(t, err)
	assert.Equal(t, int64(2), value.Int())

	value, err = Run([]byte(`(+ 5 3)`), b)
	require.NoError(t, err)
	assert.Equal(t, int64(8), value.Int())
}
