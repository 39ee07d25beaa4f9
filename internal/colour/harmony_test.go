package colour

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func hueOf(t *testing.T, hex string) float64 {
	t.Helper()
	c, err := ParseColour(hex)
	if err != nil {
		t.Fatalf("ParseColour(%q) error = %v", hex, err)
	}
	return HSLOf(c).H
}

func TestGenerateHarmonyLengths(t *testing.T) {
	tests := []struct {
		scheme HarmonyScheme
		want   int
	}{
		{Complementary, 2},
		{Analogous, 3},
		{Triadic, 3},
		{Tetradic, 4},
		{SplitComplementary, 3},
	}

	for _, tt := range tests {
		t.Run(tt.scheme.String(), func(t *testing.T) {
			got, err := GenerateHarmony("#3366cc", tt.scheme)
			if err != nil {
				t.Fatalf("GenerateHarmony() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d (%v)", len(got), tt.want, got)
			}
		})
	}
}

func TestGenerateHarmonyComplementaryRed(t *testing.T) {
	got, err := GenerateHarmony("#ff0000", Complementary)
	if err != nil {
		t.Fatalf("GenerateHarmony() error = %v", err)
	}
	if diff := cmp.Diff([]string{"#ff0000", "#00ffff"}, got); diff != "" {
		t.Errorf("GenerateHarmony() mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateHarmonyBasePosition(t *testing.T) {
	const base = "#3366CC"
	tests := []struct {
		scheme  HarmonyScheme
		baseIdx int
	}{
		{Complementary, 0},
		{Analogous, 1},
		{Triadic, 0},
		{Tetradic, 0},
		{SplitComplementary, 0},
	}

	for _, tt := range tests {
		t.Run(tt.scheme.String(), func(t *testing.T) {
			got, err := GenerateHarmony(base, tt.scheme)
			if err != nil {
				t.Fatalf("GenerateHarmony() error = %v", err)
			}
			// The base is passed through untouched, including its case.
			if got[tt.baseIdx] != base {
				t.Errorf("got[%d] = %q, want %q", tt.baseIdx, got[tt.baseIdx], base)
			}
		})
	}
}

func TestGenerateHarmonyHueOffsets(t *testing.T) {
	const base = "#3366cc"
	baseHue := hueOf(t, base)

	for _, scheme := range Schemes() {
		t.Run(scheme.String(), func(t *testing.T) {
			got, err := GenerateHarmony(base, scheme)
			if err != nil {
				t.Fatalf("GenerateHarmony() error = %v", err)
			}
			offsets, err := scheme.Offsets()
			if err != nil {
				t.Fatalf("Offsets() error = %v", err)
			}
			for i, hex := range got {
				want := RotateHue(baseHue, offsets[i])
				if d := hueDistance(hueOf(t, hex), want); d > 1 {
					t.Errorf("colour %d (%s): hue off by %.2f degrees", i, hex, d)
				}
			}
		})
	}
}

func TestGenerateHarmonyTetradicSpacing(t *testing.T) {
	got, err := GenerateHarmony("#ff0000", Tetradic)
	if err != nil {
		t.Fatalf("GenerateHarmony() error = %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 colours, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		step := RotateHue(hueOf(t, got[i]), -hueOf(t, got[i-1]))
		if math.Abs(step-90) > 1 {
			t.Errorf("step %d -> %d = %.2f degrees, want ~90", i-1, i, step)
		}
	}
}

func TestGenerateHarmonyKeepsSaturationAndLightness(t *testing.T) {
	const base = "#3366cc"
	c, _ := ParseColour(base)
	want := HSLOf(c)

	got, err := GenerateHarmony(base, Triadic)
	if err != nil {
		t.Fatalf("GenerateHarmony() error = %v", err)
	}
	for _, hex := range got {
		gc, _ := ParseColour(hex)
		hsl := HSLOf(gc)
		if math.Abs(hsl.S-want.S) > 0.01 || math.Abs(hsl.L-want.L) > 0.01 {
			t.Errorf("%s: s=%.3f l=%.3f, want s=%.3f l=%.3f", hex, hsl.S, hsl.L, want.S, want.L)
		}
	}
}

func TestGenerateHarmonyAchromatic(t *testing.T) {
	for _, base := range []string{"#808080", "#000000", "#ffffff"} {
		t.Run(base, func(t *testing.T) {
			got, err := GenerateHarmony(base, Analogous)
			if err != nil {
				t.Fatalf("GenerateHarmony() error = %v", err)
			}
			// Hue normalises to 0; rotating a grey leaves it unchanged.
			want := []string{base, base, base}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			for _, hex := range got {
				if h := hueOf(t, hex); math.IsNaN(h) || h != 0 {
					t.Errorf("hue of %s = %v, want 0", hex, h)
				}
			}
		})
	}
}

func TestGenerateHarmonyDeterministic(t *testing.T) {
	for _, scheme := range Schemes() {
		first, err := GenerateHarmony("#9b59b6", scheme)
		if err != nil {
			t.Fatalf("GenerateHarmony() error = %v", err)
		}
		second, _ := GenerateHarmony("#9b59b6", scheme)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("%s not deterministic:\n%s", scheme, diff)
		}
	}
}

func TestGenerateHarmonyNamedColour(t *testing.T) {
	got, err := GenerateHarmony("red", Complementary)
	if err != nil {
		t.Fatalf("GenerateHarmony() error = %v", err)
	}
	if diff := cmp.Diff([]string{"red", "#00ffff"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateHarmonyErrors(t *testing.T) {
	if _, err := GenerateHarmony("not-a-colour", Triadic); !errors.Is(err, ErrInvalidColour) {
		t.Errorf("invalid colour: err = %v, want ErrInvalidColour", err)
	}
	if _, err := GenerateHarmony("", Triadic); !errors.Is(err, ErrInvalidColour) {
		t.Errorf("empty colour: err = %v, want ErrInvalidColour", err)
	}
	if _, err := GenerateHarmony("#ff0000", HarmonyScheme(42)); !errors.Is(err, ErrUnsupportedScheme) {
		t.Errorf("unknown scheme: err = %v, want ErrUnsupportedScheme", err)
	}
}

func TestParseHarmonyScheme(t *testing.T) {
	tests := []struct {
		in      string
		want    HarmonyScheme
		wantErr bool
	}{
		{in: "complementary", want: Complementary},
		{in: "Analogous", want: Analogous},
		{in: " triadic ", want: Triadic},
		{in: "tetradic", want: Tetradic},
		{in: "split-complementary", want: SplitComplementary},
		{in: "split_complementary", want: SplitComplementary},
		{in: "monochrome", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHarmonyScheme(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedScheme) {
					t.Errorf("ParseHarmonyScheme(%q) err = %v, want ErrUnsupportedScheme", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHarmonyScheme(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHarmonyScheme(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHarmonySchemeRoundTrip(t *testing.T) {
	for _, s := range Schemes() {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", s, err)
		}
		var back HarmonyScheme
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		if back != s {
			t.Errorf("round trip %v -> %q -> %v", s, text, back)
		}
	}
	if _, err := HarmonyScheme(-1).MarshalText(); err == nil {
		t.Error("expected error marshalling unknown scheme")
	}
}

func TestRotateHue(t *testing.T) {
	tests := []struct {
		hue, offset, want float64
	}{
		{0, -30, 330},
		{350, 30, 20},
		{180, 180, 0},
		{10, 270, 280},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := RotateHue(tt.hue, tt.offset); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("RotateHue(%v, %v) = %v, want %v", tt.hue, tt.offset, got, tt.want)
		}
	}
}

// hueDistance is the shortest angle between two hues, in [0, 180].
func hueDistance(h1, h2 float64) float64 {
	d := math.Abs(h1 - h2)
	if d > 180 {
		d = 360 - d
	}
	return d
}
