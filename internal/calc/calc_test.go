package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	cases := []struct {
		expr string
		want float64
	}{
		{"50 + 20", 70},
		{"10+2*3", 16},
		{"(10+2)*3", 36},
		{"100 / 4 / 5", 5},
		{"2.5 * 4", 10},
		{"-3 + 5", 2},
		{"-(2+3)", -5},
		{"10 - 2 - 3", 5},
	}
	for _, c := range cases {
		got, err := Eval(c.expr)
		require.NoError(t, err, c.expr)
		assert.InDelta(t, c.want, got, 1e-9, c.expr)
	}
}

func TestEvalRejects(t *testing.T) {
	bad := []string{
		"",
		"   ",
		"10 + alert('x')",
		"1e9",
		"2 ** 3",
		"(1+2",
		"1+",
		"..",
		"5 5",
	}
	for _, expr := range bad {
		_, err := Eval(expr)
		assert.Error(t, err, expr)
	}
}

func TestAllowed(t *testing.T) {
	assert.True(t, Allowed("(1 + 2.5) * 3"))
	assert.False(t, Allowed("1 + x"))
	assert.False(t, Allowed("10 + alert('x')"))
}

func TestDivisionByZero(t *testing.T) {
	_, err := Eval("1/0")
	assert.Error(t, err)
}
