// Package decimal64 provides a fixed point base 10 decimal number held in a
// single unsigned 64-bit integer.
//
// The equation for a decimal number is:
//
//	number = unscaled / 10 ^ scale
//
// Where number is the fixed point number, unscaled is a nonnegative integer
// magnitude, and scale is the fixed count of fractional digits. For example,
// at scale 2:
//
//	1.23 = 123 / 10^2
//
// The scale is part of the type, not the value: Decimal[U2] and Decimal[U4]
// are distinct types, every instance of Decimal[U2] carries exactly two
// fractional digits, and a Decimal is exactly the size of a uint64. Scales
// from 0 to 19 are available (10^19 is the largest power of ten that fits in
// a uint64).
//
// # Arithmetic
//
// Same-scale addition, subtraction, multiplication and division are methods
// on Decimal. Cross-scale multiplication, division and conversion are free
// functions taking the target scale as a type parameter:
//
//	price, _ := decimal64.Parse[decimal64.U2]("19.99")
//	qty, _ := decimal64.Parse[decimal64.U4]("1.5000")
//	total, _ := decimal64.MulTo[decimal64.U2](price, qty)
//
// Every operation is checked: results that do not fit the 64-bit unscaled
// range fail with ErrOverflow instead of wrapping, and division by zero
// fails with ErrDivisionByZero. Wherever precision is discarded (parsing
// excess fractional digits, multiplication, division, narrowing
// conversions) the retained value is rounded half-up using exact integer
// remainder comparison. Intermediate products and dividends are held in
// 128 bits so overflow is detected before truncation.
//
// # Values
//
// The value domain is nonnegative. Decimals are immutable: every operation
// returns a new value, so values may be freely shared between goroutines.
//
// # Encoding
//
// The canonical textual form is the integer part, a decimal point, and
// exactly scale fractional digits (no point at scale 0). Parsing the
// canonical form reproduces the value exactly. JSON encoding uses the
// canonical string; decoding additionally accepts a bare JSON number. The
// binary form is the big-endian unscaled magnitude followed by a one byte
// scale tag.
package decimal64
