package calc

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

// Demo writes the fixed example computations to w, one per line.
func Demo(w io.Writer) error {
	quotient, err := Divide(15, 3)
	if err != nil {
		return err
	}

	lines := []struct {
		label string
		expr  string
		value string
	}{
		{"Addition", "5 + 3", strconv.Itoa(Add(5, 3))},
		{"Subtraction", "10 - 4", strconv.Itoa(Subtract(10, 4))},
		{"Multiplication", "6 * 7", strconv.Itoa(Multiply(6, 7))},
		{"Division", "15 / 3", FormatReal(quotient)},
		{"Power", "2^8", strconv.FormatFloat(Power(2, 8), 'f', -1, 64)},
		{"Factorial", "5!", Factorial(5).String()},
	}

	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s: %s = %s\n", l.label, l.expr, l.value); err != nil {
			return err
		}
	}
	return nil
}

// FormatReal formats a real number in its shortest form, keeping a trailing
// ".0" on integral values so quotients read as reals (15 / 3 = 5.0).
func FormatReal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !math.IsInf(v, 0) && !math.IsNaN(v) && v == math.Trunc(v) {
		s += ".0"
	}
	return s
}
