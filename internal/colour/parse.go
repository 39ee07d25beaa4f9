package colour

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColour is returned when a string cannot be parsed as a colour.
var ErrInvalidColour = errors.New("invalid colour")

// ParseColour parses a hex colour (#rrggbb or #rgb, the leading # optional)
// or a CSS colour name.
func ParseColour(s string) (colorful.Color, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return colorful.Color{}, fmt.Errorf("%w: empty string", ErrInvalidColour)
	}

	if named, ok := colornames.Map[strings.ToLower(in)]; ok {
		c, _ := colorful.MakeColor(named)
		return c, nil
	}

	hex := in
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if (len(hex) != 4 && len(hex) != 7) || !isHexDigits(hex[1:]) {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColour, s)
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColour, s)
	}
	return c, nil
}

// Normalise returns the canonical lower-case #rrggbb form of s.
func Normalise(s string) (string, error) {
	c, err := ParseColour(s)
	if err != nil {
		return "", err
	}
	return FromColorful(c).Hex(), nil
}

// Valid reports whether s parses as a colour.
func Valid(s string) bool {
	_, err := ParseColour(s)
	return err == nil
}

// FromColorful converts a go-colorful colour to 8-bit RGB, clamping out of gamut values.
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
