package exprlang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimelords/skinlang/pkg/exprlang"
)

type mapEnv map[string]exprlang.Value

func (m mapEnv) Lookup(name string) (exprlang.Value, bool) {
	v, ok := m[name]
	return v, ok
}

func TestEval_Arithmetic(t *testing.T) {
	v, errs := exprlang.Eval("1 + 2 * 3", nil)
	require.Empty(t, errs)
	n, ok := v.AsNumber()
	require.True(t, ok)
	assert.Equal(t, float64(7), n)
}

func TestEval_Parens(t *testing.T) {
	v, errs := exprlang.Eval("(1 + 2) * 3", nil)
	require.Empty(t, errs)
	n, _ := v.AsNumber()
	assert.Equal(t, float64(9), n)
}

func TestEval_Comparison(t *testing.T) {
	v, errs := exprlang.Eval("3 >= 2 && 1 == 1", nil)
	require.Empty(t, errs)
	assert.True(t, v.AsBool())
}

func TestEval_DivideByZero(t *testing.T) {
	v, errs := exprlang.Eval("5 / 0", nil)
	require.Len(t, errs, 1)
	assert.Equal(t, "Cannot divide by 0.", errs[0].Message)
	n, _ := v.AsNumber()
	assert.Equal(t, float64(0), n)
}

func TestEval_ModuloByZero(t *testing.T) {
	_, errs := exprlang.Eval("5 % 0", nil)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "modulo")
}

func TestEval_Variables(t *testing.T) {
	env := mapEnv{"width": exprlang.Number(10)}
	v, errs := exprlang.Eval("width * 2", env)
	require.Empty(t, errs)
	n, _ := v.AsNumber()
	assert.Equal(t, float64(20), n)
}

func TestEval_UndefinedVariable(t *testing.T) {
	_, errs := exprlang.Eval("missing + 1", mapEnv{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "undefined variable")
}

func TestEval_NonNumericAddIsCoercionError(t *testing.T) {
	_, errs := exprlang.Eval(`'a' + 'b'`, nil)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "non-numeric")
}

func TestEval_DigitStringsCoerceToNumbers(t *testing.T) {
	v, errs := exprlang.Eval(`"2" + "3"`, nil)
	require.Empty(t, errs)
	n, ok := v.AsNumber()
	require.True(t, ok)
	assert.Equal(t, float64(5), n)
}

// TestEval_SingleCharOperators covers the skin language's own
// single-character boolean and relational operators alongside the
// two-character forms they're a superset of.
func TestEval_SingleCharOperators(t *testing.T) {
	v, errs := exprlang.Eval("(2+3)*4 > 19 & 1", nil)
	require.Empty(t, errs)
	assert.True(t, v.AsBool())

	v, errs = exprlang.Eval("1 = 1 | 0", nil)
	require.Empty(t, errs)
	assert.True(t, v.AsBool())
}

func TestEval_NotAndNegate(t *testing.T) {
	v, errs := exprlang.Eval("!false", nil)
	require.Empty(t, errs)
	assert.True(t, v.AsBool())

	v, errs = exprlang.Eval("-5 + 3", nil)
	require.Empty(t, errs)
	n, _ := v.AsNumber()
	assert.Equal(t, float64(-2), n)
}
