package palette

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/paletto/internal/colour"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNewDraft(t *testing.T) {
	d := NewDraft()
	if diff := cmp.Diff([]string{"#000000"}, d.Colours); diff != "" {
		t.Errorf("NewDraft colours mismatch (-want +got):\n%s", diff)
	}
	if d.Name != "" {
		t.Errorf("Name = %q, want empty", d.Name)
	}
}

func TestDraftAdd(t *testing.T) {
	d := NewDraft()
	if err := d.Add("#FFAA00"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if got := d.Colours[1]; got != "#ffaa00" {
		t.Errorf("added colour = %q, want #ffaa00", got)
	}

	if err := d.Add("bogus"); !errors.Is(err, colour.ErrInvalidColour) {
		t.Errorf("Add(bogus) err = %v, want ErrInvalidColour", err)
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}

	for d.Len() < MaxColours {
		if err := d.AddRandom(testRand()); err != nil {
			t.Fatalf("AddRandom() error = %v", err)
		}
	}
	if err := d.Add("#ffffff"); !errors.Is(err, ErrFull) {
		t.Errorf("Add on full palette err = %v, want ErrFull", err)
	}
	if d.Len() != MaxColours {
		t.Errorf("Len() = %d, want %d", d.Len(), MaxColours)
	}
}

func TestDraftRemove(t *testing.T) {
	d := &Draft{Colours: []string{"#111111", "#222222", "#333333"}}

	if err := d.Remove(1); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if diff := cmp.Diff([]string{"#111111", "#333333"}, d.Colours); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if err := d.Remove(5); !errors.Is(err, ErrIndex) {
		t.Errorf("Remove(5) err = %v, want ErrIndex", err)
	}

	if err := d.Remove(0); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := d.Remove(0); !errors.Is(err, ErrLastColour) {
		t.Errorf("Remove last err = %v, want ErrLastColour", err)
	}
	if d.Len() != 1 {
		t.Errorf("Len() = %d, want 1", d.Len())
	}
}

func TestDraftUpdate(t *testing.T) {
	d := &Draft{Colours: []string{"#111111", "#222222"}}

	if err := d.Update(1, "navy"); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if d.Colours[1] != "#000080" {
		t.Errorf("Colours[1] = %q, want #000080", d.Colours[1])
	}

	if err := d.Update(0, "#12"); !errors.Is(err, colour.ErrInvalidColour) {
		t.Errorf("Update invalid err = %v, want ErrInvalidColour", err)
	}
	if d.Colours[0] != "#111111" {
		t.Errorf("invalid update changed colour to %q", d.Colours[0])
	}

	if err := d.Update(-1, "#ffffff"); !errors.Is(err, ErrIndex) {
		t.Errorf("Update(-1) err = %v, want ErrIndex", err)
	}
}

func TestDraftMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{name: "forward", from: 0, to: 2, want: []string{"b", "c", "a", "d"}},
		{name: "backward", from: 3, to: 1, want: []string{"a", "d", "b", "c"}},
		{name: "same", from: 2, to: 2, want: []string{"a", "b", "c", "d"}},
		{name: "to end", from: 1, to: 3, want: []string{"a", "c", "d", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Draft{Colours: []string{"a", "b", "c", "d"}}
			if err := d.Move(tt.from, tt.to); err != nil {
				t.Fatalf("Move() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, d.Colours); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}

	d := &Draft{Colours: []string{"a"}}
	if err := d.Move(0, 1); !errors.Is(err, ErrIndex) {
		t.Errorf("Move out of range err = %v, want ErrIndex", err)
	}
}

func TestDraftRandomise(t *testing.T) {
	r := testRand()
	d := NewDraft()
	for range 50 {
		d.Randomise(r)
		if d.Len() < 3 || d.Len() > MaxColours {
			t.Fatalf("Randomise produced %d colours", d.Len())
		}
		for _, c := range d.Colours {
			if !colour.Valid(c) {
				t.Fatalf("Randomise produced invalid colour %q", c)
			}
		}
	}
}

func TestDraftReset(t *testing.T) {
	d := &Draft{Name: "x", Colours: []string{"#ffffff", "#eeeeee"}}
	d.Reset()
	if d.Name != "" || len(d.Colours) != 1 || d.Colours[0] != DefaultColour {
		t.Errorf("Reset() left %+v", d)
	}
}

func TestValidate(t *testing.T) {
	tooMany := make([]string, MaxColours+1)
	for i := range tooMany {
		tooMany[i] = "#ffffff"
	}

	tests := []struct {
		name    string
		pname   string
		colours []string
		wantErr error
	}{
		{name: "ok", pname: "Sunset", colours: []string{"#ff0000", "orange"}},
		{name: "blank name", pname: "   ", colours: []string{"#ff0000"}, wantErr: ErrEmptyName},
		{name: "no colours", pname: "x", colours: nil, wantErr: ErrNoColours},
		{name: "too many", pname: "x", colours: tooMany, wantErr: ErrFull},
		{name: "invalid", pname: "x", colours: []string{"#ff0000", "nope"}, wantErr: colour.ErrInvalidColour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.pname, tt.colours)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFromHarmony(t *testing.T) {
	d, err := FromHarmony("#FF0000", colour.Complementary)
	if err != nil {
		t.Fatalf("FromHarmony() error = %v", err)
	}
	if d.Name != "complementary #ff0000" {
		t.Errorf("Name = %q", d.Name)
	}
	if diff := cmp.Diff([]string{"#ff0000", "#00ffff"}, d.Colours); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if _, err := FromHarmony("nope", colour.Triadic); !errors.Is(err, colour.ErrInvalidColour) {
		t.Errorf("err = %v, want ErrInvalidColour", err)
	}
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{"harmony": KindHarmony, "Custom": KindCustom, "": KindCustom} {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Errorf("ParseKind(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseKind("other"); err == nil {
		t.Error("expected error for unknown kind")
	}
}
