package decimal64

import "math"

// Decimal is a fixed point base 10 decimal number with S fractional
// digits. The real value is Unscaled() / 10^S.
//
// Decimal is immutable: every operation returns a new value. Two Decimals
// of the same scale may be compared with ==.
type Decimal[S Scale] struct {
	unscaled uint64
}

// FromRaw returns the Decimal whose unscaled magnitude is unscaled. No
// validation is performed; every uint64 is a valid magnitude.
func FromRaw[S Scale](unscaled uint64) Decimal[S] {
	return Decimal[S]{unscaled: unscaled}
}

// FromUint64 returns v as a Decimal, failing with ErrOverflow if v cannot
// be represented at scale S.
func FromUint64[S Scale](v uint64) (Decimal[S], error) {
	unscaled, ok := mulCheck(v, FactorOf[S]())
	if !ok {
		return Decimal[S]{}, ErrOverflow
	}
	return FromRaw[S](unscaled), nil
}

// Zero returns the zero value at scale S.
func Zero[S Scale]() Decimal[S] {
	return Decimal[S]{}
}

// One returns 1 at scale S.
func One[S Scale]() Decimal[S] {
	return FromRaw[S](FactorOf[S]())
}

// Max returns the largest representable value at scale S.
func Max[S Scale]() Decimal[S] {
	return FromRaw[S](math.MaxUint64)
}

// Unscaled returns the unscaled magnitude.
func (d Decimal[S]) Unscaled() uint64 {
	return d.unscaled
}

// Scale returns the number of fractional digits.
func (d Decimal[S]) Scale() uint8 {
	var s S
	return s.Scale()
}

// Factor returns the scale factor 10^S.
func (d Decimal[S]) Factor() uint64 {
	return FactorOf[S]()
}

// Split returns the integer and fractional parts of the unscaled
// magnitude. For 123.45 at scale 2 it returns (123, 45).
func (d Decimal[S]) Split() (integer, fractional uint64) {
	factor := FactorOf[S]()
	return d.unscaled / factor, d.unscaled % factor
}

// IsZero reports whether d is zero.
func (d Decimal[S]) IsZero() bool {
	return d.unscaled == 0
}

// Cmp compares d and o by numeric value, returning -1, 0 or +1.
func (d Decimal[S]) Cmp(o Decimal[S]) int {
	switch {
	case d.unscaled < o.unscaled:
		return -1
	case d.unscaled > o.unscaled:
		return +1
	}
	return 0
}

// Equal reports whether d and o are the same value.
func (d Decimal[S]) Equal(o Decimal[S]) bool {
	return d.unscaled == o.unscaled
}
