package store

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/paletto/internal/colour"
)

// Colours returns saved colours in the order they were saved.
func (s *Store) Colours() []SavedColour {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]SavedColour, len(s.doc.SavedColours))
	copy(out, s.doc.SavedColours)
	return out
}

// Colour returns the saved colour with the given ID.
func (s *Store) Colour(id string) (SavedColour, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.doc.SavedColours {
		if c.ID == id {
			return c, nil
		}
	}
	return SavedColour{}, fmt.Errorf("colour %s: %w", id, ErrNotFound)
}

// SaveColour appends a colour to the saved list. name is optional.
func (s *Store) SaveColour(hex, name string) (SavedColour, error) {
	normalised, err := colour.Normalise(hex)
	if err != nil {
		return SavedColour{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	saved := SavedColour{
		ID:        s.newID(),
		Hex:       normalised,
		Name:      strings.TrimSpace(name),
		CreatedAt: s.now().UnixMilli(),
	}
	doc := s.doc.clone()
	doc.SavedColours = append(doc.SavedColours, saved)
	if err := s.persist(doc); err != nil {
		return SavedColour{}, err
	}
	s.logger.Info("saved colour", "id", saved.ID, "hex", saved.Hex)
	return saved, nil
}

// RemoveColour deletes the saved colour with the given ID.
func (s *Store) RemoveColour(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.doc.clone()
	kept := doc.SavedColours[:0]
	for _, c := range doc.SavedColours {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(doc.SavedColours) {
		return fmt.Errorf("colour %s: %w", id, ErrNotFound)
	}
	doc.SavedColours = kept
	if err := s.persist(doc); err != nil {
		return err
	}
	s.logger.Info("removed colour", "id", id)
	return nil
}
