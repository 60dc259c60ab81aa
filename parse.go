package decimal64

// Parse converts a textual numeral into a Decimal at scale S.
//
// The input is digits with an optional single decimal point; at least one
// digit is required and signs are rejected. Fractional digits beyond S are
// collapsed into the last retained digit with half-up rounding, so parsing
// is exact whenever the input carries at most S fractional digits and
// deterministically rounded otherwise. Magnitudes that do not fit the
// 64-bit unscaled range fail with ErrOverflow.
func Parse[S Scale](s string) (Decimal[S], error) {
	if len(s) == 0 {
		return Decimal[S]{}, ErrEmptyInput
	}

	var (
		scale     = int(ScaleOf[S]())
		unscaled  uint64
		digits    int
		frac      int
		sawPoint  bool
		roundUp   bool
		truncated bool
	)

	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
			if truncated {
				continue
			}
			if sawPoint && frac == scale {
				// First excess fractional digit decides the
				// rounding; the rest only need to be valid.
				roundUp = c >= '5'
				truncated = true
				continue
			}

			var ok bool
			unscaled, ok = mulCheck(unscaled, 10)
			if !ok {
				return Decimal[S]{}, ErrOverflow
			}
			unscaled, ok = addCheck(unscaled, uint64(c-'0'))
			if !ok {
				return Decimal[S]{}, ErrOverflow
			}
			if sawPoint {
				frac++
			}
		case c == '.':
			if sawPoint {
				return Decimal[S]{}, ErrMultipleDecimalPoints
			}
			sawPoint = true
		case c == '+' || c == '-':
			return Decimal[S]{}, ErrSignNotAllowed
		default:
			return Decimal[S]{}, ErrInvalidCharacter
		}
	}

	if digits == 0 {
		return Decimal[S]{}, ErrInvalidCharacter
	}

	// Pad out to exactly scale fractional digits.
	unscaled, ok := mulCheck(unscaled, pow10[scale-frac])
	if !ok {
		return Decimal[S]{}, ErrOverflow
	}
	if roundUp {
		unscaled, ok = addCheck(unscaled, 1)
		if !ok {
			return Decimal[S]{}, ErrOverflow
		}
	}

	return FromRaw[S](unscaled), nil
}

// MustParse is like Parse but panics on error. Use only for constants and
// test code.
func MustParse[S Scale](s string) Decimal[S] {
	d, err := Parse[S](s)
	if err != nil {
		panic(err)
	}
	return d
}
