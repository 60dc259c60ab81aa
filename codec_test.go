package decimal64_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/HaveFunTrading/decimal64"
)

func TestJSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		data, err := json.Marshal(decimal64.MustParse[decimal64.U2]("123.45"))
		require.NoError(t, err)
		require.Equal(t, `"123.45"`, string(data))

		data, err = json.Marshal(decimal64.Zero[decimal64.U4]())
		require.NoError(t, err)
		require.Equal(t, `"0.0000"`, string(data))
	})

	t.Run("unmarshal", func(t *testing.T) {
		type TC struct {
			name  string
			input string
			want  string
		}

		tcs := []TC{
			{"string", `"123.45"`, "123.45"},
			{"number", `123.45`, "123.45"},
			{"integer number", `50000`, "50000.00"},
			{"string rounds excess digits", `"1.005"`, "1.01"},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
				var d decimal64.Decimal[decimal64.U2]
				err := json.Unmarshal([]byte(tc.input), &d)
				require.NoError(t, err, spew.Sdump(tc))
				require.Equal(t, tc.want, d.String(), spew.Sdump(tc))
			})
		}
	})

	t.Run("unmarshal errors", func(t *testing.T) {
		type TC struct {
			name  string
			input string
			want  error
		}

		tcs := []TC{
			{"negative number", `-1`, decimal64.ErrSignNotAllowed},
			{"exponent", `1e3`, decimal64.ErrInvalidCharacter},
			{"null", `null`, decimal64.ErrInvalidCharacter},
			{"empty string", `""`, decimal64.ErrEmptyInput},
			{"too large", `"184467440737.09551616"`, decimal64.ErrOverflow},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
				var d decimal64.Decimal[decimal64.U8]
				err := json.Unmarshal([]byte(tc.input), &d)
				require.ErrorIs(t, err, tc.want)
			})
		}
	})

	t.Run("struct field round trip", func(t *testing.T) {
		type Order struct {
			Price decimal64.Decimal[decimal64.U2] `json:"price"`
			Qty   decimal64.Decimal[decimal64.U4] `json:"qty"`
		}

		in := Order{
			Price: decimal64.MustParse[decimal64.U2]("19.99"),
			Qty:   decimal64.MustParse[decimal64.U4]("1.5"),
		}

		data, err := json.Marshal(in)
		require.NoError(t, err)
		require.Equal(t, `{"price":"19.99","qty":"1.5000"}`, string(data))

		var out Order
		require.NoError(t, json.Unmarshal(data, &out))
		require.Equal(t, in, out)
	})
}

func TestText(t *testing.T) {
	d := decimal64.MustParse[decimal64.U6]("123.45")

	text, err := d.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "123.450000", string(text))

	var back decimal64.Decimal[decimal64.U6]
	require.NoError(t, back.UnmarshalText(text))
	require.Equal(t, d, back)
}

func TestBinary(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		d := decimal64.MustParse[decimal64.U2]("123.45")

		data, err := d.MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0x30, 0x39, 2}, data)
	})

	t.Run("round trip", func(t *testing.T) {
		type TC struct {
			name  string
			input decimal64.Decimal[decimal64.U8]
		}

		tcs := []TC{
			{"zero", decimal64.Zero[decimal64.U8]()},
			{"one", decimal64.One[decimal64.U8]()},
			{"max", decimal64.Max[decimal64.U8]()},
			{"value", decimal64.MustParse[decimal64.U8]("123.45678901")},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
				data, err := tc.input.MarshalBinary()
				require.NoError(t, err)

				var back decimal64.Decimal[decimal64.U8]
				require.NoError(t, back.UnmarshalBinary(data))
				require.Equal(t, tc.input, back, spew.Sdump(data))
			})
		}
	})

	t.Run("invalid length", func(t *testing.T) {
		var d decimal64.Decimal[decimal64.U2]

		require.ErrorIs(t, d.UnmarshalBinary(nil), decimal64.ErrInvalidLength)
		require.ErrorIs(t, d.UnmarshalBinary(make([]byte, 8)), decimal64.ErrInvalidLength)
		require.ErrorIs(t, d.UnmarshalBinary(make([]byte, 10)), decimal64.ErrInvalidLength)
	})

	t.Run("scale mismatch", func(t *testing.T) {
		data, err := decimal64.MustParse[decimal64.U4]("1.5").MarshalBinary()
		require.NoError(t, err)

		var d decimal64.Decimal[decimal64.U2]
		require.ErrorIs(t, d.UnmarshalBinary(data), decimal64.ErrScaleMismatch)
	})

	t.Run("scale tag out of range", func(t *testing.T) {
		data := make([]byte, 9)
		data[8] = 20

		var d decimal64.Decimal[decimal64.U2]
		require.ErrorIs(t, d.UnmarshalBinary(data), decimal64.ErrScaleOutOfRange)
	})
}
