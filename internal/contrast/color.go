package contrast

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidColorFormat is returned when an input is not a #RGB, #RRGGBB or
// #RRGGBBAA hex color.
var ErrInvalidColorFormat = errors.New("invalid color format")

// RGB is a parsed color with 8-bit channels. Alpha is never kept.
// It marshals as "#RRGGBB".
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as uppercase #RRGGBB.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) String() string { return c.Hex() }

func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *RGB) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseColor parses a hex color. A single leading '#' is optional and digits
// are case-insensitive. Three digits expand by duplication ("f0a" is
// #FF00AA); for eight digits the trailing alpha pair is ignored.
func ParseColor(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		var ch [3]uint8
		for i := 0; i < 3; i++ {
			v, ok := hexDigit(hex[i])
			if !ok {
				return RGB{}, invalid(s)
			}
			ch[i] = v<<4 | v
		}
		return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
	case 6, 8:
		var ch [3]uint8
		for i := 0; i < len(hex); i += 2 {
			hi, ok1 := hexDigit(hex[i])
			lo, ok2 := hexDigit(hex[i+1])
			if !ok1 || !ok2 {
				return RGB{}, invalid(s)
			}
			if i < 6 {
				ch[i/2] = hi<<4 | lo
			}
		}
		return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
	default:
		return RGB{}, invalid(s)
	}
}

// MustParseColor is like ParseColor but panics on error. Intended for
// constants and tests.
func MustParseColor(s string) RGB {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func invalid(s string) error {
	return fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
