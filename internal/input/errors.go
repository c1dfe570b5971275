package input

import "errors"

// Rejections reported by Parse. Returned errors wrap one of these with the
// offending token, so callers match them with errors.Is.
var (
	// ErrEmpty indicates the text held no digits at all.
	ErrEmpty = errors.New("input: value must not be empty")

	// ErrBlankEntry indicates two commas with nothing between them.
	ErrBlankEntry = errors.New("input: blank entry, check the commas")

	// ErrNotNumber indicates an entry containing something other than digits.
	ErrNotNumber = errors.New("input: not a number")

	// ErrOutOfRange indicates an entry outside 0-9.
	ErrOutOfRange = errors.New("input: digit must be between 0 and 9")

	// ErrTooLong indicates more than MaxDigits entries.
	ErrTooLong = errors.New("input: too many digits")
)
