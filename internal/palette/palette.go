// Package palette implements the editing model for palettes being composed.
package palette

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/jmylchreest/paletto/internal/colour"
)

// MaxColours is the largest number of colours a palette may hold.
const MaxColours = 12

// DefaultColour seeds new and reset drafts.
const DefaultColour = "#000000"

var (
	// ErrFull is returned when adding to a palette that already holds MaxColours.
	ErrFull = fmt.Errorf("palette already holds %d colours", MaxColours)

	// ErrLastColour is returned when removing the only colour of a palette.
	ErrLastColour = errors.New("palette must keep at least one colour")

	// ErrIndex is returned for positions outside the palette.
	ErrIndex = errors.New("colour index out of range")

	// ErrEmptyName is returned when validating a palette without a name.
	ErrEmptyName = errors.New("palette name is required")

	// ErrNoColours is returned when validating a palette with no colours.
	ErrNoColours = errors.New("palette has no colours")
)

// Kind records how a palette was created.
type Kind string

const (
	KindHarmony Kind = "harmony"
	KindCustom  Kind = "custom"
)

// ParseKind parses "harmony" or "custom"; the empty string means custom.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindHarmony:
		return KindHarmony, nil
	case KindCustom, "":
		return KindCustom, nil
	default:
		return "", fmt.Errorf("unknown palette type %q (valid: harmony, custom)", s)
	}
}

// Draft is a palette under construction.
type Draft struct {
	Name    string
	Colours []string
}

// NewDraft returns an unnamed draft holding DefaultColour.
func NewDraft() *Draft {
	return &Draft{Colours: []string{DefaultColour}}
}

// FromColours returns a draft holding the given colours, normalised.
func FromColours(name string, colours []string) (*Draft, error) {
	normalised, err := NormaliseColours(colours)
	if err != nil {
		return nil, err
	}
	return &Draft{Name: name, Colours: normalised}, nil
}

// FromHarmony returns a draft holding the harmony set of scheme around base.
func FromHarmony(base string, scheme colour.HarmonyScheme) (*Draft, error) {
	hexes, err := colour.GenerateHarmony(base, scheme)
	if err != nil {
		return nil, err
	}
	normalisedBase, _ := colour.Normalise(base)
	return FromColours(fmt.Sprintf("%s %s", scheme, normalisedBase), hexes)
}

// Len returns the number of colours in the draft.
func (d *Draft) Len() int {
	return len(d.Colours)
}

// Add appends c. Adding to a full palette returns ErrFull and leaves it unchanged.
func (d *Draft) Add(c string) error {
	if len(d.Colours) >= MaxColours {
		return ErrFull
	}
	hex, err := colour.Normalise(c)
	if err != nil {
		return err
	}
	d.Colours = append(d.Colours, hex)
	return nil
}

// AddRandom appends a random colour.
func (d *Draft) AddRandom(r *rand.Rand) error {
	return d.Add(colour.RandomColour(r))
}

// Remove deletes the colour at i. The last remaining colour cannot be removed.
func (d *Draft) Remove(i int) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	if len(d.Colours) <= 1 {
		return ErrLastColour
	}
	d.Colours = append(d.Colours[:i], d.Colours[i+1:]...)
	return nil
}

// Update replaces the colour at i. Invalid colours are rejected.
func (d *Draft) Update(i int, c string) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	hex, err := colour.Normalise(c)
	if err != nil {
		return err
	}
	d.Colours[i] = hex
	return nil
}

// Move takes the colour at from out of the palette and reinserts it at to.
func (d *Draft) Move(from, to int) error {
	if err := d.checkIndex(from); err != nil {
		return err
	}
	if err := d.checkIndex(to); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	c := d.Colours[from]
	d.Colours = append(d.Colours[:from], d.Colours[from+1:]...)
	d.Colours = append(d.Colours[:to], append([]string{c}, d.Colours[to:]...)...)
	return nil
}

// Randomise replaces the colours with between 3 and MaxColours random colours.
func (d *Draft) Randomise(r *rand.Rand) {
	n := r.IntN(MaxColours-2) + 3
	d.Colours = make([]string, n)
	for i := range d.Colours {
		d.Colours[i] = colour.RandomColour(r)
	}
}

// Reset returns the draft to its initial state.
func (d *Draft) Reset() {
	d.Name = ""
	d.Colours = []string{DefaultColour}
}

// Validate checks the draft can be saved.
func (d *Draft) Validate() error {
	return Validate(d.Name, d.Colours)
}

func (d *Draft) checkIndex(i int) error {
	if i < 0 || i >= len(d.Colours) {
		return fmt.Errorf("%w: %d (palette has %d colours)", ErrIndex, i, len(d.Colours))
	}
	return nil
}

// Validate checks a palette name and colour list.
func Validate(name string, colours []string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if len(colours) == 0 {
		return ErrNoColours
	}
	if len(colours) > MaxColours {
		return fmt.Errorf("palette has %d colours: %w", len(colours), ErrFull)
	}
	for i, c := range colours {
		if !colour.Valid(c) {
			return fmt.Errorf("colour %d: %w: %q", i, colour.ErrInvalidColour, c)
		}
	}
	return nil
}

// NormaliseColours returns colours in canonical #rrggbb form.
func NormaliseColours(colours []string) ([]string, error) {
	out := make([]string, len(colours))
	for i, c := range colours {
		hex, err := colour.Normalise(c)
		if err != nil {
			return nil, fmt.Errorf("colour %d: %w", i, err)
		}
		out[i] = hex
	}
	return out, nil
}
