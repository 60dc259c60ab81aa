package decimal64

// Scale describes a fixed count of fractional digits. The implementations
// U0 through U19 are empty structs, so a scale is carried by Decimal's type
// parameter rather than stored per value.
type Scale interface {
	Scale() uint8
}

// Scale types for 0 to 19 fractional digits.
type (
	U0  struct{}
	U1  struct{}
	U2  struct{}
	U3  struct{}
	U4  struct{}
	U5  struct{}
	U6  struct{}
	U7  struct{}
	U8  struct{}
	U9  struct{}
	U10 struct{}
	U11 struct{}
	U12 struct{}
	U13 struct{}
	U14 struct{}
	U15 struct{}
	U16 struct{}
	U17 struct{}
	U18 struct{}
	U19 struct{}
)

func (U0) Scale() uint8  { return 0 }
func (U1) Scale() uint8  { return 1 }
func (U2) Scale() uint8  { return 2 }
func (U3) Scale() uint8  { return 3 }
func (U4) Scale() uint8  { return 4 }
func (U5) Scale() uint8  { return 5 }
func (U6) Scale() uint8  { return 6 }
func (U7) Scale() uint8  { return 7 }
func (U8) Scale() uint8  { return 8 }
func (U9) Scale() uint8  { return 9 }
func (U10) Scale() uint8 { return 10 }
func (U11) Scale() uint8 { return 11 }
func (U12) Scale() uint8 { return 12 }
func (U13) Scale() uint8 { return 13 }
func (U14) Scale() uint8 { return 14 }
func (U15) Scale() uint8 { return 15 }
func (U16) Scale() uint8 { return 16 }
func (U17) Scale() uint8 { return 17 }
func (U18) Scale() uint8 { return 18 }
func (U19) Scale() uint8 { return 19 }

// pow10 caches powers of 10, where pow10[x] = 10^x.
var pow10 = [...]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

// MaxScale is the largest supported scale. 10^19 is the largest power of
// ten representable in a uint64.
const MaxScale = uint8(len(pow10) - 1)

// ScaleOf returns the scale of S.
func ScaleOf[S Scale]() uint8 {
	var s S
	return s.Scale()
}

// FactorOf returns the scale factor 10^S.
func FactorOf[S Scale]() uint64 {
	var s S
	return pow10[s.Scale()]
}

// ScaleFactor returns 10^scale for a runtime-held scale. It fails with
// ErrScaleOutOfRange for scales greater than MaxScale.
func ScaleFactor(scale uint8) (uint64, error) {
	if scale > MaxScale {
		return 0, ErrScaleOutOfRange
	}
	return pow10[scale], nil
}
