package colour

import "math/rand/v2"

// RandomColour returns a uniformly random opaque colour as #rrggbb.
func RandomColour(r *rand.Rand) string {
	v := r.Uint32() & 0xffffff
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}.Hex()
}
