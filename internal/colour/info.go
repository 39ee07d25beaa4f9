package colour

import (
	"fmt"
	"math"
)

// SwatchAlphas are the opacities shown for a colour, weakest first.
var SwatchAlphas = []float64{0.2, 0.4, 0.6, 0.8, 1}

// Swatch is a translucent variant of a colour.
type Swatch struct {
	Percent int    `json:"percent"`
	CSS     string `json:"css"`
}

// Format is a labelled textual representation of a colour.
type Format struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Info describes a colour in every representation Paletto displays.
type Info struct {
	Hex        string   `json:"hex"`
	RGB        RGB      `json:"rgb"`
	CMYK       CMYK     `json:"cmyk"`
	HSL        HSL      `json:"hsl"`
	Hue        int      `json:"hue"`
	Saturation int      `json:"saturation"`
	Lightness  int      `json:"lightness"`
	Contrast   float64  `json:"contrast"`
	TextColour string   `json:"text_colour"`
	Swatches   []Swatch `json:"swatches"`
}

// Describe parses s and computes its Info.
func Describe(s string) (Info, error) {
	c, err := ParseColour(s)
	if err != nil {
		return Info{}, err
	}

	rgb := FromColorful(c)
	hsl := HSLOf(c)
	h, sat, l := hsl.Rounded()

	info := Info{
		Hex:        rgb.Hex(),
		RGB:        rgb,
		CMYK:       rgb.CMYK(),
		HSL:        hsl,
		Hue:        h,
		Saturation: sat,
		Lightness:  l,
		Contrast:   math.Round(ContrastRatio(rgb.RGBA(), White.RGBA())*10) / 10,
		TextColour: TextColour(rgb),
		Swatches:   make([]Swatch, 0, len(SwatchAlphas)),
	}
	for _, alpha := range SwatchAlphas {
		css := fmt.Sprintf("rgba(%d,%d,%d,%g)", rgb.R, rgb.G, rgb.B, alpha)
		if alpha == 1 {
			css = fmt.Sprintf("rgb(%d,%d,%d)", rgb.R, rgb.G, rgb.B)
		}
		info.Swatches = append(info.Swatches, Swatch{
			Percent: int(math.Round(alpha * 100)),
			CSS:     css,
		})
	}
	return info, nil
}

// Formats returns the HEX, RGB, CMYK and HSL renderings in display order.
func (i Info) Formats() []Format {
	return []Format{
		{Label: "HEX", Value: i.Hex},
		{Label: "RGB", Value: i.RGB.String()},
		{Label: "CMYK", Value: i.CMYK.String()},
		{Label: "HSL", Value: fmt.Sprintf("hsl(%d, %d%%, %d%%)", i.Hue, i.Saturation, i.Lightness)},
	}
}
