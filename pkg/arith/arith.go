// Package arith provides the four basic arithmetic operations over float64
// operands. All functions are pure and deterministic; the only error condition
// in the package is division by zero.
package arith

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrDivisionByZero is returned by Divide (and Apply with OpDivide) when the
// divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Add returns the sum of two numbers.
func Add(x, y float64) float64 {
	return x + y
}

// Subtract returns the difference of two numbers.
func Subtract(x, y float64) float64 {
	return x - y
}

// Multiply returns the product of two numbers.
func Multiply(x, y float64) float64 {
	return x * y
}

// Divide returns the quotient of two numbers.
// It returns ErrDivisionByZero when y is zero.
func Divide(x, y float64) (float64, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return x / y, nil
}

// Op identifies an arithmetic operation by its display symbol.
type Op string

const (
	OpAdd      Op = "+"
	OpSubtract Op = "-"
	OpMultiply Op = "*"
	OpDivide   Op = "/"
)

// Ops returns the operations in their canonical display order.
func Ops() []Op {
	return []Op{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// ParseOp converts an operator token into an Op.
func ParseOp(s string) (Op, error) {
	switch Op(s) {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return Op(s), nil
	// "x" is accepted because "*" expands to file names in most shells.
	case "x":
		return OpMultiply, nil
	default:
		return "", fmt.Errorf("unknown operation: %s (use +, -, *, /)", s)
	}
}

// Apply dispatches op over the two operands.
func Apply(op Op, x, y float64) (float64, error) {
	switch op {
	case OpAdd:
		return Add(x, y), nil
	case OpSubtract:
		return Subtract(x, y), nil
	case OpMultiply:
		return Multiply(x, y), nil
	case OpDivide:
		return Divide(x, y)
	default:
		return 0, fmt.Errorf("unknown operation: %s", op)
	}
}

// FormatResult renders a result for display. A precision of -1 selects the
// shortest representation that round-trips, so integral quotients print
// without a trailing ".0".
func FormatResult(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}
