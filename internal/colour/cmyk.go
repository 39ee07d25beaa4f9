package colour

import (
	"fmt"
	"math"
)

// CMYK holds ink coverage percentages, each in [0, 100].
type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

// String returns the colour as "cmyk(c%, m%, y%, k%)".
func (c CMYK) String() string {
	return fmt.Sprintf("cmyk(%d%%, %d%%, %d%%, %d%%)", c.C, c.M, c.Y, c.K)
}

// RGBToCMYK converts 8-bit RGB channels to CMYK percentages.
// Percentages are rounded half away from zero. Inputs outside [0, 255] are
// not rejected but produce meaningless results.
func RGBToCMYK(r, g, b int) CMYK {
	red := float64(r) / 255
	green := float64(g) / 255
	blue := float64(b) / 255

	k := 1 - math.Max(red, math.Max(green, blue))

	// Pure black: c, m and y would divide by zero.
	var c, m, y float64
	if k != 1 {
		c = (1 - red - k) / (1 - k)
		m = (1 - green - k) / (1 - k)
		y = (1 - blue - k) / (1 - k)
	}

	return CMYK{
		C: percent(c),
		M: percent(m),
		Y: percent(y),
		K: percent(k),
	}
}

func percent(v float64) int {
	return int(math.Round(v * 100))
}
