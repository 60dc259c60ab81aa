package decimal64

import "encoding/binary"

// binaryLen is the encoded size: the big-endian unscaled magnitude
// followed by a one byte scale tag.
const binaryLen = 9

// MarshalText implements encoding.TextMarshaler using the canonical
// textual form.
func (d Decimal[S]) MarshalText() ([]byte, error) {
	return d.Append(make([]byte, 0, maxFormatted)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal[S]) UnmarshalText(text []byte) error {
	v, err := Parse[S](string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON implements json.Marshaler, encoding d as its canonical
// string.
func (d Decimal[S]) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, maxFormatted+2)
	buf = append(buf, '"')
	buf = d.Append(buf)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON implements json.Unmarshaler. Both a JSON string and a bare
// JSON number are accepted; either way the numeral must satisfy Parse.
func (d *Decimal[S]) UnmarshalJSON(data []byte) error {
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	return d.UnmarshalText(data)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (d Decimal[S]) MarshalBinary() (data []byte, err error) {
	data = make([]byte, binaryLen)
	binary.BigEndian.PutUint64(data, d.unscaled)
	data[binaryLen-1] = d.Scale()
	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The scale tag
// must match S exactly; no implicit rescaling happens on decode.
func (d *Decimal[S]) UnmarshalBinary(data []byte) error {
	if len(data) != binaryLen {
		return ErrInvalidLength
	}
	tag := data[binaryLen-1]
	if _, err := ScaleFactor(tag); err != nil {
		return err
	}
	if tag != ScaleOf[S]() {
		return ErrScaleMismatch
	}
	d.unscaled = binary.BigEndian.Uint64(data)
	return nil
}
