package site

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/travisdwitt/oakview/internal/chart"
	"github.com/travisdwitt/oakview/internal/navigator"
	"github.com/travisdwitt/oakview/internal/team"
	"github.com/yuin/goldmark"
)

//go:embed page.html
var pageSource string

var pageTemplate = template.Must(template.New("page").Parse(pageSource))

type navLink struct {
	ID     string
	Label  string
	Anchor string
	Accent string
}

type chartView struct {
	Name        string
	Title       string
	Description string
	SVG         template.HTML
	Legend      []chart.Segment
	XLabels     []string
	Failed      bool
}

type memberView struct {
	Name  string
	Role  string
	Bio   template.HTML
	Links []team.Link
}

type pageData struct {
	Nav     []navLink
	Charts  []chartView
	Team    []memberView
	BaseURL string
}

var navAccents = map[navigator.Section]string{
	navigator.SectionDemo:   "#3b82f6",
	navigator.SectionMap:    "#f97316",
	navigator.SectionCharts: "#22c55e",
	navigator.SectionAbout:  "#ef4444",
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data, err := s.buildPage()
	if err != nil {
		s.log.Error("page build failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.log.Error("page render failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) buildPage() (pageData, error) {
	data := pageData{BaseURL: s.cfg.BaseURL}

	for _, sec := range navigator.Sections() {
		data.Nav = append(data.Nav, navLink{
			ID:     sec.String(),
			Label:  sec.Label(),
			Anchor: sec.Anchor(),
			Accent: navAccents[sec],
		})
	}

	for _, c := range chart.Cards() {
		view := chartView{
			Name:        c.Name,
			Title:       c.Title,
			Description: c.Description,
			XLabels:     c.XLabels,
		}
		svg, err := chartSVG(c)
		if err != nil {
			// A broken dataset renders an empty card, not a broken page.
			s.log.Warn("chart skipped", "chart", c.Name, "error", err)
			view.Failed = true
		}
		view.SVG = svg
		switch c.Kind {
		case chart.KindPie:
			view.Legend = c.Segments
		case chart.KindLine:
			for _, series := range c.Series {
				view.Legend = append(view.Legend, chart.Segment{Label: series.Name, Color: series.Color})
			}
		}
		data.Charts = append(data.Charts, view)
	}

	for _, m := range team.Roster() {
		bio, err := renderMarkdown(m.Bio)
		if err != nil {
			return data, fmt.Errorf("bio for %s: %w", m.Name, err)
		}
		data.Team = append(data.Team, memberView{Name: m.Name, Role: m.Role, Bio: bio, Links: m.Links()})
	}
	return data, nil
}

// renderMarkdown converts trusted roster markdown to HTML.
func renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
