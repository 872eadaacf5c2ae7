// Package demo implements the fixed demonstration run: each arithmetic
// operation applied once to the operand pair (10, 5), plus an explicit
// division-by-zero line.
package demo

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/l3aro/go-arith/pkg/arith"
	"github.com/l3aro/go-arith/pkg/history"
)

// DefaultX and DefaultY are the operands the demonstration binds when the
// caller does not override them.
const (
	DefaultX = 10.0
	DefaultY = 5.0
)

// Options controls a demonstration run.
type Options struct {
	// X and Y are the operand pair. Both zero means "use the defaults".
	X float64
	Y float64

	// Precision passed to arith.FormatResult. Zero value is treated as -1
	// (shortest representation).
	Precision int
}

// Run writes the five demonstration lines to w in fixed order: add, subtract,
// multiply, divide over (x, y), then divide over (x, 0). Division by zero is
// part of the demonstration, so its line carries the error text instead of a
// number and Run still returns nil. Only a write failure is an error.
//
// The returned records mirror the printed lines so the caller can persist
// them.
func Run(w io.Writer, opts Options) ([]history.Record, error) {
	x, y := opts.X, opts.Y
	if x == 0 && y == 0 {
		x, y = DefaultX, DefaultY
	}

	precision := opts.Precision
	if precision == 0 {
		precision = -1
	}

	records := make([]history.Record, 0, len(arith.Ops())+1)

	emit := func(op arith.Op, y float64) error {
		result, err := arith.Apply(op, x, y)

		rec := history.Record{
			X:  x,
			Y:  y,
			Op: string(op),
			At: time.Now(),
		}

		var rendered string
		switch {
		case err == nil:
			rendered = arith.FormatResult(result, precision)
			rec.Result = result
		case errors.Is(err, arith.ErrDivisionByZero):
			rendered = err.Error()
			rec.Err = err.Error()
		default:
			return err
		}

		if _, err := fmt.Fprintf(w, "%s %s %s = %s\n",
			arith.FormatResult(x, precision), op,
			arith.FormatResult(y, precision), rendered); err != nil {
			return fmt.Errorf("writing demo line: %w", err)
		}

		records = append(records, rec)
		return nil
	}

	for _, op := range arith.Ops() {
		if err := emit(op, y); err != nil {
			return records, err
		}
	}

	// The edge-case line: divide again with a zero divisor.
	if err := emit(arith.OpDivide, 0); err != nil {
		return records, err
	}

	return records, nil
}
