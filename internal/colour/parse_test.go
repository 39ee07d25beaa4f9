package colour

import (
	"errors"
	"testing"
)

func TestNormalise(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "#FF0000", want: "#ff0000"},
		{in: "#ff0000", want: "#ff0000"},
		{in: "ff0000", want: "#ff0000"},
		{in: "  #1a2B3c ", want: "#1a2b3c"},
		{in: "#fff", want: "#ffffff"},
		{in: "#F0a", want: "#ff00aa"},
		{in: "white", want: "#ffffff"},
		{in: "RebeccaPurple", want: "#663399"},
		{in: "", wantErr: true},
		{in: "#12345", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "#ff00001", wantErr: true},
		{in: "rgb(1,2,3)", wantErr: true},
		{in: "notacolour", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Normalise(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColour) {
					t.Errorf("Normalise(%q) err = %v, want ErrInvalidColour", tt.in, err)
				}
				if Valid(tt.in) {
					t.Errorf("Valid(%q) = true, want false", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalise(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Normalise(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if !Valid(tt.in) {
				t.Errorf("Valid(%q) = false, want true", tt.in)
			}
		})
	}
}

func TestParseColourCaseInsensitiveEquality(t *testing.T) {
	a, err := ParseColour("#ABCDEF")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseColour("#abcdef")
	if err != nil {
		t.Fatal(err)
	}
	if FromColorful(a) != FromColorful(b) {
		t.Errorf("expected equal channels, got %+v and %+v", FromColorful(a), FromColorful(b))
	}
}
