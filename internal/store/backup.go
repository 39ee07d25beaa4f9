package store

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jmylchreest/paletto/internal/compression"
	"github.com/jmylchreest/paletto/internal/palette"
)

// Backup writes a snapshot of the store to w in the given format.
func (s *Store) Backup(w io.Writer, format compression.Format) error {
	doc := s.Snapshot()
	if doc.SavedColours == nil {
		doc.SavedColours = []SavedColour{}
	}
	if doc.Palettes == nil {
		doc.Palettes = []Palette{}
	}

	cw, err := compression.NewWriter(w, format)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		cw.Close()
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	if err := cw.Close(); err != nil {
		return fmt.Errorf("failed to finish backup: %w", err)
	}
	s.logger.Info("wrote backup", "format", format, "colours", len(doc.SavedColours), "palettes", len(doc.Palettes))
	return nil
}

// Restore replaces the store contents with a backup read from r. The backup
// encoding (plain, gzip or xz) is detected automatically. Nothing is written
// unless the whole backup validates.
func (s *Store) Restore(r io.Reader) (Document, error) {
	dr, format, err := compression.NewReader(r, compression.DefaultLimit)
	if err != nil {
		return Document{}, err
	}
	var doc Document
	if err := json.NewDecoder(dr).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("failed to decode backup: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, fmt.Errorf("invalid backup: %w", err)
	}
	for i := range doc.Palettes {
		if doc.Palettes[i].Kind == "" {
			doc.Palettes[i].Kind = palette.KindCustom
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persist(doc); err != nil {
		return Document{}, err
	}
	s.logger.Info("restored backup", "format", format, "colours", len(doc.SavedColours), "palettes", len(doc.Palettes))
	return doc.clone(), nil
}
