package arith

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		expected float64
	}{
		{"positive operands", 10, 5, 15},
		{"negative operand", 10, -5, 5},
		{"zero", 0, 0, 0},
		{"fractional", 1.5, 2.25, 3.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Add(tt.x, tt.y))
		})
	}
}

func TestSubtract(t *testing.T) {
	assert.Equal(t, 5.0, Subtract(10, 5))
	assert.Equal(t, -5.0, Subtract(5, 10))
	assert.Equal(t, 0.0, Subtract(3.5, 3.5))
}

func TestMultiply(t *testing.T) {
	assert.Equal(t, 50.0, Multiply(10, 5))
	assert.Equal(t, -50.0, Multiply(10, -5))
	assert.Equal(t, 0.0, Multiply(10, 0))
}

func TestDivide(t *testing.T) {
	got, err := Divide(10, 5)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	got, err = Divide(7, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.5, got)

	got, err = Divide(-10, 4)
	require.NoError(t, err)
	assert.Equal(t, -2.5, got)
}

func TestDivide_ByZero(t *testing.T) {
	// The error policy must hold for every dividend, including zero.
	for _, x := range []float64{10, -3.5, 0, math.MaxFloat64} {
		_, err := Divide(x, 0)
		assert.ErrorIs(t, err, ErrDivisionByZero)
	}
}

func TestProperties(t *testing.T) {
	pairs := [][2]float64{
		{10, 5}, {-4, 9}, {0.25, 8}, {123456.789, -0.001},
	}

	for _, p := range pairs {
		x, y := p[0], p[1]

		assert.Equal(t, Add(x, y), Add(y, x), "Add should commute")
		assert.Equal(t, Multiply(x, y), Multiply(y, x), "Multiply should commute")
		assert.Equal(t, Subtract(x, y), -Subtract(y, x))

		if y != 0 {
			got, err := Divide(Multiply(x, y), y)
			require.NoError(t, err)
			assert.InDelta(t, x, got, 1e-9, "divide should undo multiply")
		}
	}
}

func TestParseOp(t *testing.T) {
	tests := []struct {
		in      string
		want    Op
		wantErr bool
	}{
		{"+", OpAdd, false},
		{"-", OpSubtract, false},
		{"*", OpMultiply, false},
		{"x", OpMultiply, false},
		{"/", OpDivide, false},
		{"%", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOp(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		op       Op
		x, y     float64
		expected float64
	}{
		{OpAdd, 10, 5, 15},
		{OpSubtract, 10, 5, 5},
		{OpMultiply, 10, 5, 50},
		{OpDivide, 10, 5, 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			got, err := Apply(tt.op, tt.x, tt.y)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := Apply(OpDivide, 10, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Apply(Op("^"), 2, 3)
	assert.Error(t, err)
}

func TestFormatResult(t *testing.T) {
	assert.Equal(t, "2", FormatResult(2, -1))
	assert.Equal(t, "3.5", FormatResult(3.5, -1))
	assert.Equal(t, "2.00", FormatResult(2, 2))
	assert.Equal(t, "-0.5", FormatResult(-0.5, -1))
}
