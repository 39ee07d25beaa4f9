package colour

import (
	"encoding/json"
	"image/color"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestToRGB(t *testing.T) {
	tests := []struct {
		name  string
		color color.Color
		want  RGB
	}{
		{
			name:  "red",
			color: color.RGBA{R: 255, G: 0, B: 0, A: 255},
			want:  RGB{R: 255, G: 0, B: 0},
		},
		{
			name:  "white",
			color: color.RGBA{R: 255, G: 255, B: 255, A: 255},
			want:  RGB{R: 255, G: 255, B: 255},
		},
		{
			name:  "black",
			color: color.RGBA{R: 0, G: 0, B: 0, A: 255},
			want:  RGB{R: 0, G: 0, B: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToRGB(tt.color)
			if got != tt.want {
				t.Errorf("ToRGB() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "red", rgb: RGB{R: 255, G: 0, B: 0}, want: "#ff0000"},
		{name: "green", rgb: RGB{R: 0, G: 255, B: 0}, want: "#00ff00"},
		{name: "blue", rgb: RGB{R: 0, G: 0, B: 255}, want: "#0000ff"},
		{name: "grey", rgb: RGB{R: 128, G: 128, B: 128}, want: "#808080"},
		{name: "mixed", rgb: RGB{R: 26, G: 43, B: 60}, want: "#1a2b3c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRGBString(t *testing.T) {
	rgb := RGB{R: 12, G: 34, B: 56}
	if got, want := rgb.String(), "rgb(12, 34, 56)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestHSLOf(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		wantH   int
		wantS   int
		wantL   int
		wantStr string
	}{
		{name: "red", hex: "#ff0000", wantH: 0, wantS: 100, wantL: 50, wantStr: "hsl(0, 100%, 50%)"},
		{name: "lime", hex: "#00ff00", wantH: 120, wantS: 100, wantL: 50, wantStr: "hsl(120, 100%, 50%)"},
		{name: "blue", hex: "#0000ff", wantH: 240, wantS: 100, wantL: 50, wantStr: "hsl(240, 100%, 50%)"},
		{name: "grey has hue 0", hex: "#808080", wantH: 0, wantS: 0, wantL: 50, wantStr: "hsl(0, 0%, 50%)"},
		{name: "white", hex: "#ffffff", wantH: 0, wantS: 0, wantL: 100, wantStr: "hsl(0, 0%, 100%)"},
		{name: "black", hex: "#000000", wantH: 0, wantS: 0, wantL: 0, wantStr: "hsl(0, 0%, 0%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := colorful.Hex(tt.hex)
			if err != nil {
				t.Fatalf("colorful.Hex(%q) error = %v", tt.hex, err)
			}
			hsl := HSLOf(c)
			if math.IsNaN(hsl.H) {
				t.Fatal("hue is NaN")
			}
			h, s, l := hsl.Rounded()
			if h != tt.wantH || s != tt.wantS || l != tt.wantL {
				t.Errorf("Rounded() = (%d, %d, %d), want (%d, %d, %d)", h, s, l, tt.wantH, tt.wantS, tt.wantL)
			}
			if got := hsl.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestHexListJSON(t *testing.T) {
	data, err := HexListJSON([]string{"#ff0000", "black"})
	if err != nil {
		t.Fatalf("HexListJSON() error = %v", err)
	}

	var got []ColorJSON
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 colours, got %d", len(got))
	}
	if got[0].Hex != "#ff0000" || got[0].CMYK != (CMYK{C: 0, M: 100, Y: 100, K: 0}) {
		t.Errorf("unexpected first colour: %+v", got[0])
	}
	if got[1].Hex != "#000000" || got[1].CMYK.K != 100 {
		t.Errorf("unexpected second colour: %+v", got[1])
	}

	if _, err := HexListJSON([]string{"nope"}); err == nil {
		t.Error("expected error for invalid colour")
	}
}
