package decimal64

import num "github.com/shabbyrobe/go-num"

// Widened 128-bit integer primitives. Every multiply and divide in the
// package goes through these so that overflow is detected against the full
// intermediate before truncating back to 64 bits.

// wide returns x as a 128-bit integer.
func wide(x uint64) num.U128 {
	return num.U128From64(x)
}

// pow10Wide returns 10^n as a 128-bit integer. n may be up to 38, the
// largest combined scale of two operands.
func pow10Wide(n int) num.U128 {
	if n < len(pow10) {
		return wide(pow10[n])
	}
	return wide(pow10[len(pow10)-1]).Mul(wide(pow10[n-len(pow10)+1]))
}

// mulWide calculates x * y and checks 128-bit overflow.
func mulWide(x, y num.U128) (z num.U128, ok bool) {
	if x.IsZero() || y.IsZero() {
		return num.U128{}, true
	}
	z = x.Mul(y)
	if z.Quo(y) != x {
		return num.U128{}, false
	}
	return z, true
}

// mulCheck calculates x * y and checks 64-bit overflow.
func mulCheck(x, y uint64) (z uint64, ok bool) {
	if y == 0 {
		return 0, true
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	return z, true
}

// addCheck calculates x + y and checks 64-bit overflow.
func addCheck(x, y uint64) (z uint64, ok bool) {
	z = x + y
	if z < x {
		return 0, false
	}
	return z, true
}

// quoHalfUp calculates round(x / y) with half-up rounding: a discarded
// remainder of at least half the divisor rounds away from zero. The
// comparison is exact integer arithmetic, never floating point.
func quoHalfUp(x, y num.U128) num.U128 {
	q, r := x.QuoRem(y)
	// 2r >= y rounds up. Compared as r >= y-r so the doubled remainder
	// cannot wrap when y has its top bit set.
	if r.Cmp(y.Sub(r)) >= 0 {
		q = q.Inc()
	}
	return q
}

// narrow truncates x back to 64 bits, reporting overflow.
func narrow(x num.U128) (uint64, bool) {
	if !x.IsUint64() {
		return 0, false
	}
	return x.AsUint64(), true
}
