package colour

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDescribe(t *testing.T) {
	info, err := Describe("#FF0000")
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}

	want := []Format{
		{Label: "HEX", Value: "#ff0000"},
		{Label: "RGB", Value: "rgb(255, 0, 0)"},
		{Label: "CMYK", Value: "cmyk(0%, 100%, 100%, 0%)"},
		{Label: "HSL", Value: "hsl(0, 100%, 50%)"},
	}
	if diff := cmp.Diff(want, info.Formats()); diff != "" {
		t.Errorf("Formats() mismatch (-want +got):\n%s", diff)
	}
	if info.Contrast != 4.0 {
		t.Errorf("Contrast = %v, want 4.0", info.Contrast)
	}
	if info.TextColour != "white" {
		t.Errorf("TextColour = %q, want white", info.TextColour)
	}

	wantSwatches := []Swatch{
		{Percent: 20, CSS: "rgba(255,0,0,0.2)"},
		{Percent: 40, CSS: "rgba(255,0,0,0.4)"},
		{Percent: 60, CSS: "rgba(255,0,0,0.6)"},
		{Percent: 80, CSS: "rgba(255,0,0,0.8)"},
		{Percent: 100, CSS: "rgb(255,0,0)"},
	}
	if diff := cmp.Diff(wantSwatches, info.Swatches); diff != "" {
		t.Errorf("Swatches mismatch (-want +got):\n%s", diff)
	}
}

func TestDescribeAchromatic(t *testing.T) {
	info, err := Describe("#808080")
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}
	if info.Hue != 0 || info.Saturation != 0 || info.Lightness != 50 {
		t.Errorf("HSL = (%d, %d, %d), want (0, 0, 50)", info.Hue, info.Saturation, info.Lightness)
	}
	if info.CMYK != (CMYK{K: 50}) {
		t.Errorf("CMYK = %+v, want k=50 only", info.CMYK)
	}
}

func TestDescribeTextColour(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#000000", "white"},
		{"#ffffff", "black"},
		{"#ffff00", "black"},
		{"#0000ff", "white"},
	}
	for _, tt := range tests {
		info, err := Describe(tt.hex)
		if err != nil {
			t.Fatalf("Describe(%q) error = %v", tt.hex, err)
		}
		if info.TextColour != tt.want {
			t.Errorf("Describe(%q).TextColour = %q, want %q", tt.hex, info.TextColour, tt.want)
		}
	}
}

func TestDescribeInvalid(t *testing.T) {
	if _, err := Describe("#zzzzzz"); !errors.Is(err, ErrInvalidColour) {
		t.Errorf("err = %v, want ErrInvalidColour", err)
	}
}

func TestContrastRatio(t *testing.T) {
	black := RGB{}.RGBA()
	white := White.RGBA()
	if got := ContrastRatio(black, white); got < 20.9 || got > 21.01 {
		t.Errorf("ContrastRatio(black, white) = %v, want 21", got)
	}
	if got := ContrastRatio(white, white); got != 1 {
		t.Errorf("ContrastRatio(white, white) = %v, want 1", got)
	}
}

func TestPreviewer(t *testing.T) {
	var buf bytes.Buffer
	p := NewPreviewer(&buf, true)

	block := p.Block(RGB{R: 255}, 4)
	if !strings.Contains(block, "    ") {
		t.Errorf("Block() = %q, expected 4 spaces", block)
	}
	if !strings.Contains(block, "\x1b[") {
		t.Errorf("Block() = %q, expected ANSI escapes when forced", block)
	}

	label := p.Label(RGB{}, "#000000", 10)
	if !strings.Contains(label, "#000000") {
		t.Errorf("Label() = %q, expected text", label)
	}

	plain := NewPreviewer(&buf, false).Block(RGB{R: 255}, 3)
	if strings.Contains(plain, "\x1b[") {
		t.Errorf("Block() on non-terminal = %q, expected no escapes", plain)
	}
}
