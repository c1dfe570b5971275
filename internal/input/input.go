// Package input parses the digit lists typed by a user and provides the
// built-in examples.
package input

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

const (
	MaxDigits    = 10
	maxRandomLen = 5
)

// Parse reads a comma separated list of digits such as "2, 4, 3".
func Parse(text string) ([]int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmpty
	}

	parts := strings.Split(trimmed, ",")
	vals := make([]int, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("%w (entry %d)", ErrBlankEntry, i+1)
		}
		if !allDigits(part) {
			return nil, fmt.Errorf("%w: %q", ErrNotNumber, part)
		}
		n, err := strconv.Atoi(part)
		if err != nil || n > 9 {
			return nil, fmt.Errorf("%w: %q", ErrOutOfRange, part)
		}
		vals = append(vals, n)
	}

	if len(vals) > MaxDigits {
		return nil, fmt.Errorf("%w: %d, at most %d", ErrTooLong, len(vals), MaxDigits)
	}
	return vals, nil
}

// Validate applies Parse's rules to digits that did not come from text, such
// as a config file.
func Validate(vals []int) error {
	if len(vals) == 0 {
		return ErrEmpty
	}
	if len(vals) > MaxDigits {
		return fmt.Errorf("%w: %d, at most %d", ErrTooLong, len(vals), MaxDigits)
	}
	for _, v := range vals {
		if v < 0 || v > 9 {
			return fmt.Errorf("%w: %d", ErrOutOfRange, v)
		}
	}
	return nil
}

// ParsePair parses both operands and reports every problem at once.
func ParsePair(first, second string) ([]int, []int, error) {
	a, errA := Parse(first)
	if errA != nil {
		errA = fmt.Errorf("l1: %w", errA)
	}
	b, errB := Parse(second)
	if errB != nil {
		errB = fmt.Errorf("l2: %w", errB)
	}
	if err := errors.Join(errA, errB); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// Format renders digits the way Parse reads them.
func Format(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// Random returns between 1 and 5 random digits.
func Random(r *rand.Rand) []int {
	n := r.Intn(maxRandomLen) + 1
	vals := make([]int, n)
	for i := range vals {
		vals[i] = r.Intn(10)
	}
	return vals
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
