package calc

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// ErrInvalidArgument is returned when an operation is called outside its domain.
var ErrInvalidArgument = errors.New("invalid argument")

// Number is any built-in integer or floating point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Add adds two numbers together.
func Add[T Number](a, b T) T {
	return a + b
}

// Subtract subtracts b from a.
func Subtract[T Number](a, b T) T {
	return a - b
}

// Multiply multiplies two numbers.
func Multiply[T Number](a, b T) T {
	return a * b
}

// Divide returns the real quotient a / b. Integer inputs are not truncated.
func Divide[T Number](a, b T) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: division by zero", ErrInvalidArgument)
	}
	return float64(a) / float64(b), nil
}

// Power raises base to exponent. A negative base with a non-integer exponent
// yields NaN.
func Power(base, exponent float64) float64 {
	return math.Pow(base, exponent)
}

// Factorial returns n! as an arbitrary precision integer.
// Any n <= 1, negative values included, yields 1.
func Factorial(n int64) *big.Int {
	if n <= 1 {
		return big.NewInt(1)
	}
	return new(big.Int).MulRange(2, n)
}

// CheckedFactorial is Factorial with negative inputs rejected.
func CheckedFactorial(n int64) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: factorial of negative number %d", ErrInvalidArgument, n)
	}
	return Factorial(n), nil
}
