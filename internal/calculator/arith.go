// Package calculator holds the arithmetic shared by the custody modules:
// overflow-checked integer operations, stream accrual, quorum math and
// conversions between smallest units and display amounts.
package calculator

import "github.com/mmynk/rally/internal/fault"

// ErrOverflow is returned whenever an accumulation would wrap around.
var ErrOverflow = fault.New(fault.KindOverflow, "Overflow", "arithmetic overflow")

type unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Add returns a+b or ErrOverflow.
func Add[T unsigned](a, b T) (T, error) {
	c := a + b
	if c < a {
		return 0, ErrOverflow
	}
	return c, nil
}

// Sub returns a-b or ErrOverflow when b > a.
func Sub[T unsigned](a, b T) (T, error) {
	if b > a {
		return 0, ErrOverflow
	}
	return a - b, nil
}

// Mul returns a*b or ErrOverflow.
func Mul[T unsigned](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if c/a != b {
		return 0, ErrOverflow
	}
	return c, nil
}

// SaturatingSub returns a-b, or zero when b > a.
func SaturatingSub[T unsigned](a, b T) T {
	if b > a {
		return 0
	}
	return a - b
}

// Min returns the smaller of a and b.
func Min[T unsigned](a, b T) T {
	if a < b {
		return a
	}
	return b
}
