package site

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/travisdwitt/oakview/internal/chart"
	"github.com/travisdwitt/oakview/internal/navigator"
)

type sectionJSON struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Anchor string `json:"anchor"`
	URL    string `json:"url"`
}

func (s *Server) handleSections(w http.ResponseWriter, r *http.Request) {
	sections := make([]sectionJSON, 0, len(navigator.Sections()))
	for _, sec := range navigator.Sections() {
		sections = append(sections, sectionJSON{
			ID:     sec.String(),
			Label:  sec.Label(),
			Anchor: sec.Anchor(),
			URL:    s.cfg.AnchorURL(sec.Anchor()),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"sections": sections})
}

type chartSummary struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
}

func (s *Server) handleListCharts(w http.ResponseWriter, r *http.Request) {
	var charts []chartSummary
	for _, c := range chart.Cards() {
		charts = append(charts, chartSummary{
			Name:        c.Name,
			Title:       c.Title,
			Description: c.Description,
			Kind:        c.Kind.String(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"charts": charts})
}

// handleChartGeometry returns the computed primitives for one card.
func (s *Server) handleChartGeometry(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	card, ok := s.cardByName(name)
	if !ok {
		jsonError(w, "unknown chart: "+name, http.StatusNotFound)
		return
	}

	geom, err := card.Geometry()
	if err != nil {
		s.log.Warn("chart geometry failed", "chart", name, "error", err)
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"name":        card.Name,
		"title":       card.Title,
		"description": card.Description,
		"xLabels":     card.XLabels,
		"geometry":    geom,
	})
}

func (s *Server) handleChartPNG(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	card, ok := s.cardByName(name)
	if !ok {
		jsonError(w, "unknown chart: "+name, http.StatusNotFound)
		return
	}

	width := queryInt(r, "w", chart.DefaultPNGWidth)
	height := queryInt(r, "h", chart.DefaultPNGHeight)

	// Render fully before writing so a failure can still set the status.
	var buf bytes.Buffer
	if err := chart.WritePNG(&buf, card, width, height); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, chart.ErrInvalidDomain) || errors.Is(err, chart.ErrNothingToExport) {
			status = http.StatusUnprocessableEntity
		}
		s.log.Warn("chart png failed", "chart", name, "error", err)
		jsonError(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}

// queryInt reads a positive integer parameter, falling back to def.
func queryInt(r *http.Request, key string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v <= 0 || v > 4096 {
		return def
	}
	return v
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
