package store

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/paletto/internal/palette"
)

// Palettes returns stored palettes, newest first.
func (s *Store) Palettes() []Palette {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Palette, len(s.doc.Palettes))
	for i, p := range s.doc.Palettes {
		out[i] = p.clone()
	}
	return out
}

// Palette returns the palette with the given ID.
func (s *Store) Palette(id string) (Palette, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.doc.Palettes {
		if p.ID == id {
			return p.clone(), nil
		}
	}
	return Palette{}, fmt.Errorf("palette %s: %w", id, ErrNotFound)
}

// SavePalette stores a new palette ahead of existing ones.
func (s *Store) SavePalette(name string, colours []string, kind palette.Kind) (Palette, error) {
	name = strings.TrimSpace(name)
	if err := palette.Validate(name, colours); err != nil {
		return Palette{}, err
	}
	normalised, err := palette.NormaliseColours(colours)
	if err != nil {
		return Palette{}, err
	}
	if kind == "" {
		kind = palette.KindCustom
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := Palette{
		ID:        s.newID(),
		Name:      name,
		Colours:   normalised,
		Kind:      kind,
		CreatedAt: s.now().UnixMilli(),
	}
	doc := s.doc.clone()
	doc.Palettes = append([]Palette{p}, doc.Palettes...)
	if err := s.persist(doc); err != nil {
		return Palette{}, err
	}
	s.logger.Info("saved palette", "id", p.ID, "name", p.Name, "colours", len(p.Colours), "type", p.Kind)
	return p.clone(), nil
}

// UpdatePalette replaces the name and colours of a palette. ID, type and
// creation time are preserved.
func (s *Store) UpdatePalette(id, name string, colours []string) (Palette, error) {
	name = strings.TrimSpace(name)
	if err := palette.Validate(name, colours); err != nil {
		return Palette{}, err
	}
	normalised, err := palette.NormaliseColours(colours)
	if err != nil {
		return Palette{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.doc.clone()
	for i := range doc.Palettes {
		if doc.Palettes[i].ID != id {
			continue
		}
		doc.Palettes[i].Name = name
		doc.Palettes[i].Colours = normalised
		if err := s.persist(doc); err != nil {
			return Palette{}, err
		}
		s.logger.Info("updated palette", "id", id, "name", name, "colours", len(normalised))
		return doc.Palettes[i].clone(), nil
	}
	return Palette{}, fmt.Errorf("palette %s: %w", id, ErrNotFound)
}

// RemovePalette deletes the palette with the given ID.
func (s *Store) RemovePalette(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.doc.clone()
	kept := doc.Palettes[:0]
	for _, p := range doc.Palettes {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(doc.Palettes) {
		return fmt.Errorf("palette %s: %w", id, ErrNotFound)
	}
	doc.Palettes = kept
	if err := s.persist(doc); err != nil {
		return err
	}
	s.logger.Info("removed palette", "id", id)
	return nil
}
