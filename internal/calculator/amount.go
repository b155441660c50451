package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
)

// ParseAmount converts user-entered text to an amount.
// Surrounding whitespace is ignored. NaN and infinities are rejected.
func ParseAmount(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidAmount, text)
	}
	return v, nil
}

// SplitEvenly returns one person's share of total split between ways people.
// It panics if ways is not positive.
func SplitEvenly(total float64, ways int) float64 {
	if ways <= 0 {
		panic("calculator: split must have at least one share")
	}
	return total / float64(ways)
}
