package colorspace

import (
	"errors"
	"fmt"
	"image/color"
)

const hexLen = 6

var (
	// ErrHexLength is returned when a hex color does not have exactly six
	// digits after the optional leading '#'.
	ErrHexLength = errors.New("wrong hex color length")
	// ErrHexDigit is returned when a hex color contains a byte outside [0-9a-fA-F].
	ErrHexDigit = errors.New("not a hexadecimal digit")
)

// RGB is an 8-bit per channel sRGB color.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses "#RRGGBB" or "RRGGBB", case-insensitive.
// Nothing is returned from a partially valid string.
func ParseHex(s string) (RGB, error) {
	digits := s
	if len(digits) > 0 && digits[0] == '#' {
		digits = digits[1:]
	}
	if len(digits) != hexLen {
		return RGB{}, fmt.Errorf("%w: got %d bytes, want %d or %d if the first character is '#'",
			ErrHexLength, len(s), hexLen, hexLen+1)
	}

	var ch [3]uint8
	for i := range ch {
		hi, err := hexDigit(digits[2*i])
		if err != nil {
			return RGB{}, err
		}
		lo, err := hexDigit(digits[2*i+1])
		if err != nil {
			return RGB{}, err
		}
		ch[i] = hi<<4 | lo
	}

	return RGB{ch[0], ch[1], ch[2]}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func hexDigit(b byte) (uint8, error) {
	switch {
	case '0' <= b && b <= '9':
		return b - '0', nil
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10, nil
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrHexDigit, b)
}

// FromColor converts any color.Color, dropping alpha.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{n.R, n.G, n.B}
}

// RGBA implements color.Color; RGB is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{c.R, c.G, c.B, 0xff}.RGBA()
}

// Hex returns the color as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Format supports %x and %X as "#rrggbb" and "#RRGGBB"; every other verb
// prints the rgb(...) form.
func (c RGB) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x':
		fmt.Fprintf(f, "#%02x%02x%02x", c.R, c.G, c.B)
	case 'X':
		fmt.Fprint(f, c.Hex())
	default:
		fmt.Fprint(f, c.String())
	}
}
