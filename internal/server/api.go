package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jmylchreest/paletto/internal/colour"
	"github.com/jmylchreest/paletto/internal/palette"
	"github.com/jmylchreest/paletto/internal/store"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// CMYKResponse is returned by GET /api/v1/cmyk.
type CMYKResponse struct {
	RGB  colour.RGB  `json:"rgb"`
	CMYK colour.CMYK `json:"cmyk"`
	Text string      `json:"text"`
}

// HarmonyResponse is a single scheme's output.
type HarmonyResponse struct {
	Base    string   `json:"base"`
	Scheme  string   `json:"scheme"`
	Colours []string `json:"colors"`
}

// SaveColourRequest is the body of POST /api/v1/saved-colours.
type SaveColourRequest struct {
	Hex  string `json:"hex"`
	Name string `json:"name,omitempty"`
}

// PaletteRequest is the body of POST and PUT /api/v1/palettes.
type PaletteRequest struct {
	Name    string   `json:"name"`
	Colours []string `json:"colors"`
	Type    string   `json:"type,omitempty"`
}

// RandomPaletteRequest is the optional body of POST /api/v1/palettes/random.
// When Name is set the generated palette is saved.
type RandomPaletteRequest struct {
	Name string `json:"name,omitempty"`
}

// RandomPaletteResponse is returned by POST /api/v1/palettes/random when
// the palette is not saved.
type RandomPaletteResponse struct {
	Colours []string `json:"colors"`
}

func (s *HTTPServer) handleColourInfo(w http.ResponseWriter, r *http.Request) {
	raw, err := url.PathUnescape(chi.URLParam(r, "colour"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_colour", err.Error())
		return
	}
	info, err := colour.Describe(raw)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *HTTPServer) handleCMYK(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var channels [3]int
	for i, name := range []string{"r", "g", "b"} {
		v, err := parseChannel(q.Get(name))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_channel", fmt.Sprintf("%s: %v", name, err))
			return
		}
		channels[i] = v
	}
	rgb := colour.RGB{R: uint8(channels[0]), G: uint8(channels[1]), B: uint8(channels[2])}
	cmyk := colour.RGBToCMYK(channels[0], channels[1], channels[2])
	writeJSON(w, http.StatusOK, CMYKResponse{RGB: rgb, CMYK: cmyk, Text: cmyk.String()})
}

// parseChannel parses a 0-255 channel value.
func parseChannel(s string) (int, error) {
	if s == "" {
		return 0, errors.New("value is required")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("%d is outside 0-255", v)
	}
	return v, nil
}

func (s *HTTPServer) handleHarmony(w http.ResponseWriter, r *http.Request) {
	base := r.URL.Query().Get("base")
	if base == "" {
		writeError(w, http.StatusBadRequest, "invalid_colour", "base is required")
		return
	}

	schemes := colour.Schemes()
	if name := r.URL.Query().Get("scheme"); name != "" {
		scheme, err := colour.ParseHarmonyScheme(name)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		schemes = []colour.HarmonyScheme{scheme}
	}

	out := make([]HarmonyResponse, 0, len(schemes))
	for _, scheme := range schemes {
		colours, err := colour.GenerateHarmony(base, scheme)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		harmoniesGeneratedTotal.WithLabelValues(scheme.String()).Inc()
		out = append(out, HarmonyResponse{Base: base, Scheme: scheme.String(), Colours: colours})
	}

	if len(out) == 1 {
		writeJSON(w, http.StatusOK, out[0])
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *HTTPServer) handleSchemes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, colour.Schemes())
}

func (s *HTTPServer) handleListColours(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Colours())
}

func (s *HTTPServer) handleSaveColour(w http.ResponseWriter, r *http.Request) {
	var req SaveColourRequest
	if !decodeBody(w, r, &req) {
		return
	}
	saved, err := s.store.SaveColour(req.Hex, req.Name)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	s.RefreshMetrics()
	writeJSON(w, http.StatusCreated, saved)
}

func (s *HTTPServer) handleRemoveColour(w http.ResponseWriter, r *http.Request) {
	if err := s.store.RemoveColour(chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	s.RefreshMetrics()
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) handleListPalettes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Palettes())
}

func (s *HTTPServer) handleGetPalette(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.Palette(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *HTTPServer) handleSavePalette(w http.ResponseWriter, r *http.Request) {
	var req PaletteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	kind, err := palette.ParseKind(req.Type)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_palette", err.Error())
		return
	}
	p, err := s.store.SavePalette(req.Name, req.Colours, kind)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	s.RefreshMetrics()
	writeJSON(w, http.StatusCreated, p)
}

func (s *HTTPServer) handleUpdatePalette(w http.ResponseWriter, r *http.Request) {
	var req PaletteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	p, err := s.store.UpdatePalette(chi.URLParam(r, "id"), req.Name, req.Colours)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *HTTPServer) handleRemovePalette(w http.ResponseWriter, r *http.Request) {
	if err := s.store.RemovePalette(chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	s.RefreshMetrics()
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) handleRandomPalette(w http.ResponseWriter, r *http.Request) {
	var req RandomPaletteRequest
	if r.ContentLength != 0 && !decodeBody(w, r, &req) {
		return
	}

	d := palette.NewDraft()
	d.Randomise(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	if req.Name == "" {
		writeJSON(w, http.StatusOK, RandomPaletteResponse{Colours: d.Colours})
		return
	}

	p, err := s.store.SavePalette(req.Name, d.Colours, palette.KindCustom)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	s.RefreshMetrics()
	writeJSON(w, http.StatusCreated, p)
}

// decodeBody decodes a JSON request body into v, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return false
	}
	return true
}

// writeDomainError maps package errors onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, colour.ErrInvalidColour):
		writeError(w, http.StatusBadRequest, "invalid_colour", err.Error())
	case errors.Is(err, colour.ErrUnsupportedScheme):
		writeError(w, http.StatusBadRequest, "unsupported_scheme", err.Error())
	case errors.Is(err, palette.ErrEmptyName),
		errors.Is(err, palette.ErrNoColours),
		errors.Is(err, palette.ErrFull):
		writeError(w, http.StatusBadRequest, "invalid_palette", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{Error: errCode, Message: message})
}
