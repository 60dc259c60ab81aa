package decimal64

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("decimal64")

var (
	// ErrEmptyInput is returned when parsing an empty string.
	ErrEmptyInput = Error.New("empty input")

	// ErrSignNotAllowed is returned when the input carries a sign
	// character. The value domain is nonnegative.
	ErrSignNotAllowed = Error.New("sign not allowed")

	// ErrInvalidCharacter is returned when the input contains a character
	// other than a digit or a decimal point.
	ErrInvalidCharacter = Error.New("invalid character in input")

	// ErrMultipleDecimalPoints is returned when the input contains more
	// than one decimal point.
	ErrMultipleDecimalPoints = Error.New("multiple decimal points")

	// ErrOverflow is returned when a result does not fit the 64-bit
	// unscaled range. Subtraction producing a negative result also fails
	// with ErrOverflow.
	ErrOverflow = Error.New("overflow")

	// ErrDivisionByZero is returned when dividing by a zero value or
	// rounding to a zero tick.
	ErrDivisionByZero = Error.New("division by zero")

	// ErrScaleOutOfRange is returned for scales greater than 19. 10^20
	// exceeds the 64-bit unsigned range.
	ErrScaleOutOfRange = Error.New("scale out of range")

	// ErrScaleMismatch is returned when decoding a value whose scale tag
	// does not match the target type.
	ErrScaleMismatch = Error.New("scale mismatch")

	// ErrInvalidLength is returned when decoding a binary value of the
	// wrong size.
	ErrInvalidLength = Error.New("invalid length")
)
