// Package colour provides colour parsing, colour space conversion and harmony generation.
package colour

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a color in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// CMYK converts the colour to CMYK percentages.
func (rgb RGB) CMYK() CMYK {
	return RGBToCMYK(int(rgb.R), int(rgb.G), int(rgb.B))
}

// RGBA returns the colour as an opaque color.RGBA.
func (rgb RGB) RGBA() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// HSL holds hue in degrees [0, 360), saturation and lightness in [0, 1].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// HSLOf returns the HSL components of c. Achromatic colours report a hue of 0.
func HSLOf(c colorful.Color) HSL {
	h, s, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return HSL{H: h, S: s, L: l}
}

// Rounded returns hue in whole degrees and saturation/lightness in whole percent.
func (hsl HSL) Rounded() (h, s, l int) {
	h = int(math.Round(hsl.H))
	if h == 360 {
		h = 0
	}
	return h, int(math.Round(hsl.S * 100)), int(math.Round(hsl.L * 100))
}

// String returns the colour as "hsl(h, s%, l%)".
func (hsl HSL) String() string {
	h, s, l := hsl.Rounded()
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, s, l)
}

// ColorJSON represents a color in JSON output format.
type ColorJSON struct {
	Hex  string `json:"hex"`
	RGB  RGB    `json:"rgb"`
	CMYK CMYK   `json:"cmyk"`
	HSL  HSL    `json:"hsl"`
}

// HexListJSON renders a list of hex colours as indented JSON with their conversions.
func HexListJSON(hexes []string) ([]byte, error) {
	colors := make([]ColorJSON, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseColour(h)
		if err != nil {
			return nil, err
		}
		rgb := FromColorful(c)
		colors = append(colors, ColorJSON{
			Hex:  rgb.Hex(),
			RGB:  rgb,
			CMYK: rgb.CMYK(),
			HSL:  HSLOf(c),
		})
	}
	return json.MarshalIndent(colors, "", "  ")
}
