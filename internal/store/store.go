// Package store persists saved colours and palettes in a JSON document on disk.
//
// The document holds two flat collections, "savedColors" and "palettes".
// Saved colours are kept in insertion order; palettes are kept newest first.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/paletto/internal/colour"
	"github.com/jmylchreest/paletto/internal/palette"
)

// ErrNotFound is returned when an ID does not match any stored entry.
var ErrNotFound = errors.New("not found")

// SavedColour is a single colour the user kept.
type SavedColour struct {
	ID        string `json:"id"`
	Hex       string `json:"hex"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

// Palette is a named, ordered list of colours.
type Palette struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Colours   []string     `json:"colors"`
	Kind      palette.Kind `json:"type"`
	CreatedAt int64        `json:"createdAt"`
}

// Document is the on-disk layout of the store.
type Document struct {
	SavedColours []SavedColour `json:"savedColors"`
	Palettes     []Palette     `json:"palettes"`
}

// Store is a file-backed collection of saved colours and palettes.
// It is safe for concurrent use.
type Store struct {
	path   string
	logger hclog.Logger
	now    func() time.Time
	newID  func() string

	mu  sync.RWMutex
	doc Document
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for store events.
func WithLogger(l hclog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the ID generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// Open loads the store at path. A missing file yields an empty store; the
// file is created on the first write.
func Open(path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store path cannot be empty")
	}
	s := &Store{
		path:   path,
		logger: hclog.NewNullLogger(),
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the document from disk, replacing in-memory state.
func (s *Store) Reload() error {
	doc, err := readDocument(s.path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
	s.logger.Debug("loaded store", "path", s.path, "colours", len(doc.SavedColours), "palettes", len(doc.Palettes))
	return nil
}

func readDocument(path string) (Document, error) {
	data, err := os.ReadFile(path) // #nosec G304 - store path is user configuration
	if errors.Is(err, os.ErrNotExist) {
		return Document{}, nil
	}
	if err != nil {
		return Document{}, fmt.Errorf("failed to read store: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, nil
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to parse store %s: %w", path, err)
	}
	return doc, nil
}

// persist writes doc atomically. Callers hold s.mu.
func (s *Store) persist(doc Document) error {
	if doc.SavedColours == nil {
		doc.SavedColours = []SavedColour{}
	}
	if doc.Palettes == nil {
		doc.Palettes = []Palette{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".paletto-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("failed to set store permissions: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace store: %w", err)
	}
	s.doc = doc
	return nil
}

// Snapshot returns a deep copy of the current document.
func (s *Store) Snapshot() Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.clone()
}

// Counts returns the number of saved colours and palettes.
func (s *Store) Counts() (colours, palettes int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.doc.SavedColours), len(s.doc.Palettes)
}

func (d Document) clone() Document {
	out := Document{
		SavedColours: slices.Clone(d.SavedColours),
		Palettes:     make([]Palette, len(d.Palettes)),
	}
	for i, p := range d.Palettes {
		out.Palettes[i] = p.clone()
	}
	return out
}

func (p Palette) clone() Palette {
	p.Colours = slices.Clone(p.Colours)
	return p
}

// Validate checks every entry of the document.
func (d Document) Validate() error {
	ids := make(map[string]struct{})
	for i, c := range d.SavedColours {
		if c.ID == "" {
			return fmt.Errorf("saved colour %d: missing id", i)
		}
		if _, dup := ids[c.ID]; dup {
			return fmt.Errorf("saved colour %d: duplicate id %s", i, c.ID)
		}
		ids[c.ID] = struct{}{}
		if !colour.Valid(c.Hex) {
			return fmt.Errorf("saved colour %d: %w: %q", i, colour.ErrInvalidColour, c.Hex)
		}
	}
	for i, p := range d.Palettes {
		if p.ID == "" {
			return fmt.Errorf("palette %d: missing id", i)
		}
		if _, dup := ids[p.ID]; dup {
			return fmt.Errorf("palette %d: duplicate id %s", i, p.ID)
		}
		ids[p.ID] = struct{}{}
		if err := palette.Validate(p.Name, p.Colours); err != nil {
			return fmt.Errorf("palette %d: %w", i, err)
		}
		if _, err := palette.ParseKind(string(p.Kind)); err != nil {
			return fmt.Errorf("palette %d: %w", i, err)
		}
	}
	return nil
}
