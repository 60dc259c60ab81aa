package decimal64

import num "github.com/shabbyrobe/go-num"

// Add returns d + o, failing with ErrOverflow if the sum exceeds the
// 64-bit unscaled range.
func (d Decimal[S]) Add(o Decimal[S]) (Decimal[S], error) {
	sum, ok := addCheck(d.unscaled, o.unscaled)
	if !ok {
		return Decimal[S]{}, ErrOverflow
	}
	return FromRaw[S](sum), nil
}

// Sub returns d - o, failing with ErrOverflow if the result would be
// negative.
func (d Decimal[S]) Sub(o Decimal[S]) (Decimal[S], error) {
	if o.unscaled > d.unscaled {
		return Decimal[S]{}, ErrOverflow
	}
	return FromRaw[S](d.unscaled - o.unscaled), nil
}

// Mul returns d * o at the same scale. The product is computed exactly in
// 128 bits, rescaled with half-up rounding, and fails with ErrOverflow if
// it does not fit the 64-bit unscaled range.
func (d Decimal[S]) Mul(o Decimal[S]) (Decimal[S], error) {
	product := wide(d.unscaled).Mul(wide(o.unscaled))
	z, ok := narrow(quoHalfUp(product, wide(FactorOf[S]())))
	if !ok {
		return Decimal[S]{}, ErrOverflow
	}
	return FromRaw[S](z), nil
}

// Div returns d / o at the same scale, rounded half-up. It fails with
// ErrDivisionByZero if o is zero and ErrOverflow if the quotient does not
// fit the 64-bit unscaled range.
func (d Decimal[S]) Div(o Decimal[S]) (Decimal[S], error) {
	if o.unscaled == 0 {
		return Decimal[S]{}, ErrDivisionByZero
	}
	dividend := wide(d.unscaled).Mul(wide(FactorOf[S]()))
	z, ok := narrow(quoHalfUp(dividend, wide(o.unscaled)))
	if !ok {
		return Decimal[S]{}, ErrOverflow
	}
	return FromRaw[S](z), nil
}

// Convert rescales d from scale From to scale To. Widening is exact but
// may fail with ErrOverflow; narrowing rounds half-up and is lossy by
// construction.
func Convert[To, From Scale](d Decimal[From]) (Decimal[To], error) {
	from, to := int(ScaleOf[From]()), int(ScaleOf[To]())
	switch {
	case to == from:
		return FromRaw[To](d.Unscaled()), nil
	case to > from:
		z, ok := mulCheck(d.Unscaled(), pow10[to-from])
		if !ok {
			return Decimal[To]{}, ErrOverflow
		}
		return FromRaw[To](z), nil
	}
	z, _ := narrow(quoHalfUp(wide(d.Unscaled()), wide(pow10[from-to])))
	return FromRaw[To](z), nil
}

// MulTo returns a * b at target scale T. The exact product has scale
// S1+S2; it is computed in 128 bits and rescaled to T with half-up
// rounding (or a checked multiply when T exceeds S1+S2). MulTo fails with
// ErrOverflow if the result does not fit the 64-bit unscaled range.
func MulTo[T, S1, S2 Scale](a Decimal[S1], b Decimal[S2]) (Decimal[T], error) {
	product := wide(a.Unscaled()).Mul(wide(b.Unscaled()))
	shift := int(ScaleOf[S1]()) + int(ScaleOf[S2]()) - int(ScaleOf[T]())

	var z num.U128
	if shift >= 0 {
		z = quoHalfUp(product, pow10Wide(shift))
	} else {
		var ok bool
		z, ok = mulWide(product, wide(pow10[-shift]))
		if !ok {
			return Decimal[T]{}, ErrOverflow
		}
	}

	u, ok := narrow(z)
	if !ok {
		return Decimal[T]{}, ErrOverflow
	}
	return FromRaw[T](u), nil
}

// DivTo returns a / b at target scale T, computed as
// a * 10^(T+S2-S1) / b with 128-bit intermediates and half-up rounding of
// the final division. DivTo fails with ErrDivisionByZero if b is zero and
// ErrOverflow if an intermediate or the result exceeds the representable
// range.
func DivTo[T, S1, S2 Scale](a Decimal[S1], b Decimal[S2]) (Decimal[T], error) {
	if b.IsZero() {
		return Decimal[T]{}, ErrDivisionByZero
	}
	exp := int(ScaleOf[T]()) + int(ScaleOf[S2]()) - int(ScaleOf[S1]())

	var q num.U128
	if exp >= 0 {
		dividend, ok := mulWide(wide(a.Unscaled()), pow10Wide(exp))
		if !ok {
			return Decimal[T]{}, ErrOverflow
		}
		q = quoHalfUp(dividend, wide(b.Unscaled()))
	} else {
		// exp is at least -19 since S1 <= 19, so 10^-exp fits a
		// uint64 and the widened divisor cannot wrap.
		divisor := wide(b.Unscaled()).Mul(wide(pow10[-exp]))
		q = quoHalfUp(wide(a.Unscaled()), divisor)
	}

	u, ok := narrow(q)
	if !ok {
		return Decimal[T]{}, ErrOverflow
	}
	return FromRaw[T](u), nil
}
