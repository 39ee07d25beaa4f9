package colour

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnsupportedScheme is returned for harmony schemes outside the known set.
var ErrUnsupportedScheme = errors.New("unsupported harmony scheme")

// HarmonyScheme selects a fixed set of hue rotations from a base colour.
type HarmonyScheme int

const (
	Complementary HarmonyScheme = iota
	Analogous
	Triadic
	Tetradic
	SplitComplementary
)

// schemeOffsets lists hue offsets in output order. Offset 0 is the base colour.
var schemeOffsets = map[HarmonyScheme][]float64{
	Complementary:      {0, 180},
	Analogous:          {-30, 0, 30},
	Triadic:            {0, 120, 240},
	Tetradic:           {0, 90, 180, 270},
	SplitComplementary: {0, 150, 210},
}

var schemeNames = map[HarmonyScheme]string{
	Complementary:      "complementary",
	Analogous:          "analogous",
	Triadic:            "triadic",
	Tetradic:           "tetradic",
	SplitComplementary: "split-complementary",
}

// Schemes returns every harmony scheme in display order.
func Schemes() []HarmonyScheme {
	return []HarmonyScheme{Complementary, Analogous, Triadic, Tetradic, SplitComplementary}
}

// String returns the scheme tag, e.g. "split-complementary".
func (s HarmonyScheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("HarmonyScheme(%d)", int(s))
}

// Offsets returns the hue offsets for the scheme in output order.
func (s HarmonyScheme) Offsets() ([]float64, error) {
	offsets, ok := schemeOffsets[s]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, s)
	}
	return append([]float64(nil), offsets...), nil
}

// MarshalText implements encoding.TextMarshaler.
func (s HarmonyScheme) MarshalText() ([]byte, error) {
	if _, ok := schemeNames[s]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedScheme, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *HarmonyScheme) UnmarshalText(text []byte) error {
	parsed, err := ParseHarmonyScheme(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseHarmonyScheme parses a scheme tag. Matching is case-insensitive and
// accepts underscores in place of hyphens.
func ParseHarmonyScheme(name string) (HarmonyScheme, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for scheme, n := range schemeNames {
		if n == key {
			return scheme, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedScheme, name)
}

// GenerateHarmony returns the colours of scheme built around base.
// Each generated colour keeps the base saturation and lightness and rotates
// the hue; the base itself is returned verbatim at its position.
// Achromatic bases have hue 0, so every generated colour equals the base grey.
func GenerateHarmony(base string, scheme HarmonyScheme) ([]string, error) {
	offsets, err := scheme.Offsets()
	if err != nil {
		return nil, err
	}

	c, err := ParseColour(base)
	if err != nil {
		return nil, err
	}
	hsl := HSLOf(c)

	out := make([]string, 0, len(offsets))
	for _, offset := range offsets {
		if offset == 0 {
			out = append(out, base)
			continue
		}
		out = append(out, colorful.Hsl(RotateHue(hsl.H, offset), hsl.S, hsl.L).Clamped().Hex())
	}
	return out, nil
}

// RotateHue adds offset degrees to hue and normalises the result into [0, 360).
func RotateHue(hue, offset float64) float64 {
	h := math.Mod(hue+offset, 360)
	if h < 0 {
		h += 360
	}
	return h
}
