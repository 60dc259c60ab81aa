package decimal64

import num "github.com/shabbyrobe/go-num"

// Rounding selects the policy applied by Round.
type Rounding uint8

const (
	// RoundHalfUp rounds to the nearest tick, half away from zero:
	// 0.125 at tick 0.01 rounds to 0.13.
	RoundHalfUp Rounding = iota
	// RoundFloor always rounds down: 0.129 at tick 0.01 rounds to 0.12.
	RoundFloor
	// RoundCeil rounds up unless exact: 0.121 at tick 0.01 rounds to
	// 0.13.
	RoundCeil
)

// Round returns d rounded to a multiple of tick. It fails with
// ErrDivisionByZero for a zero tick and ErrOverflow if rounding up pushes
// the result past the 64-bit unscaled range.
func (d Decimal[S]) Round(tick Decimal[S], r Rounding) (Decimal[S], error) {
	if tick.IsZero() {
		return Decimal[S]{}, ErrDivisionByZero
	}

	v, t := wide(d.unscaled), wide(tick.unscaled)

	var q num.U128
	switch r {
	case RoundFloor:
		q = v.Quo(t)
	case RoundCeil:
		var rem num.U128
		q, rem = v.QuoRem(t)
		if !rem.IsZero() {
			q = q.Inc()
		}
	default:
		q = quoHalfUp(v, t)
	}

	z, ok := narrow(q.Mul(t))
	if !ok {
		return Decimal[S]{}, ErrOverflow
	}
	return FromRaw[S](z), nil
}
