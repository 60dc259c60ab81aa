package decimal64

import "strconv"

// maxFormatted is the worst case length of a formatted value: a 20 digit
// integer part, the point, and 19 fractional digits.
const maxFormatted = 40

// String renders d in its canonical textual form: the integer part, a
// decimal point, and exactly S fractional digits. No point is emitted at
// scale 0, no trailing zeros are suppressed, and exponential notation is
// never used. Parsing the result reproduces d exactly.
func (d Decimal[S]) String() string {
	return string(d.Append(make([]byte, 0, maxFormatted)))
}

// Append renders d in its canonical textual form and appends it to buf,
// returning the extended buffer.
func (d Decimal[S]) Append(buf []byte) []byte {
	scale := int(d.Scale())
	integer, frac := d.Split()

	buf = strconv.AppendUint(buf, integer, 10)
	if scale == 0 {
		return buf
	}

	buf = append(buf, '.')
	for div := pow10[scale-1]; div > 0; div /= 10 {
		buf = append(buf, byte('0'+frac/div))
		frac %= div
	}

	return buf
}
