package site

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travisdwitt/oakview/internal/chart"
	"github.com/travisdwitt/oakview/internal/config"
	"github.com/travisdwitt/oakview/internal/logging"
)

func testServer(t *testing.T) (*Server, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	cfg := &config.Config{BaseURL: "https://oak.example", Serve: config.ServeConfig{Port: "0"}}
	return NewServer(cfg, logging.JSON(&logs, "debug")), &logs
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestHealth(t *testing.T) {
	s, logs := testServer(t)

	rec := get(t, s, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	assert.Contains(t, logs.String(), `"path":"/health"`)
	assert.Contains(t, logs.String(), `"status":200`)
}

func TestRequestLoggerKeepsFlusher(t *testing.T) {
	var logs bytes.Buffer
	var flushable bool
	h := RequestLogger(logging.JSON(&logs, "info"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, ok := w.(http.Flusher)
		flushable = ok
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte("streamed"))
		if ok {
			f.Flush()
		}
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stream", nil))

	assert.True(t, flushable)
	assert.True(t, rec.Flushed)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, logs.String(), `"status":202`)
	assert.Contains(t, logs.String(), `"bytes":8`)
}

func TestRequestLoggerDefaultsToOK(t *testing.T) {
	var logs bytes.Buffer
	h := RequestLogger(logging.JSON(&logs, "info"))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/quiet", nil))
	assert.Contains(t, logs.String(), `"status":200`)
	assert.Contains(t, logs.String(), `"bytes":0`)
}

func TestSections(t *testing.T) {
	s, _ := testServer(t)

	var body struct {
		Sections []sectionJSON `json:"sections"`
	}
	rec := get(t, s, "/api/sections")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &body)

	require.Len(t, body.Sections, 4)
	assert.Equal(t, sectionJSON{ID: "demo", Label: "Demo", Anchor: "#demo", URL: "https://oak.example/#demo"}, body.Sections[0])
	assert.Equal(t, "About Us", body.Sections[3].Label)
}

func TestListCharts(t *testing.T) {
	s, _ := testServer(t)

	var body struct {
		Charts []chartSummary `json:"charts"`
	}
	decode(t, get(t, s, "/api/charts"), &body)

	require.Len(t, body.Charts, 3)
	assert.Equal(t, "population", body.Charts[0].Name)
	assert.Equal(t, "pie", body.Charts[1].Kind)
}

func TestChartGeometry(t *testing.T) {
	s, _ := testServer(t)

	t.Run("bar", func(t *testing.T) {
		var body struct {
			Geometry chart.Geometry `json:"geometry"`
		}
		rec := get(t, s, "/api/charts/population")
		require.Equal(t, http.StatusOK, rec.Code)
		decode(t, rec, &body)

		require.Len(t, body.Geometry.Heights, 6)
		assert.InDelta(t, 425.0/450*200, body.Geometry.Heights[0], 1e-9)
	})

	t.Run("pie", func(t *testing.T) {
		var body struct {
			Geometry chart.Geometry `json:"geometry"`
		}
		decode(t, get(t, s, "/api/charts/demographics"), &body)

		require.Len(t, body.Geometry.Arcs, 5)
		assert.Equal(t, "White", body.Geometry.Arcs[0].Label)
		assert.InDelta(t, 126.0, body.Geometry.Arcs[1].StartAngle, 1e-9)
	})

	t.Run("line", func(t *testing.T) {
		var body struct {
			XLabels  []string       `json:"xLabels"`
			Geometry chart.Geometry `json:"geometry"`
		}
		decode(t, get(t, s, "/api/charts/housing"), &body)

		require.Len(t, body.Geometry.Lines, 2)
		assert.Len(t, body.Geometry.Lines[0].Points, 13)
		assert.Equal(t, "Jan", body.XLabels[0])
	})
}

func TestChartGeometryErrors(t *testing.T) {
	s, _ := testServer(t)

	rec := get(t, s, "/api/charts/rainfall")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"unknown chart: rainfall"}`, rec.Body.String())

	s.cardByName = func(string) (chart.Card, bool) {
		card := chart.PopulationCard()
		card.MaxValue = 0
		return card, true
	}
	rec = get(t, s, "/api/charts/population")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), chart.ErrInvalidDomain.Error())
}

func TestChartPNG(t *testing.T) {
	s, _ := testServer(t)

	rec := get(t, s, "/charts/housing.png?w=320&h=200")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())

	rec = get(t, s, "/charts/rainfall.png")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	s.cardByName = func(name string) (chart.Card, bool) {
		return chart.Card{Name: name, Kind: chart.KindBar}, true
	}
	rec = get(t, s, "/charts/empty.png")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestIndex(t *testing.T) {
	s, _ := testServer(t)

	rec := get(t, s, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	for _, id := range []string{"demo", "map", "charts", "about"} {
		assert.Contains(t, body, `<section id="`+id+`"`)
		assert.Contains(t, body, `href="#`+id+`"`)
	}
	assert.Contains(t, body, `<svg class="chart bar"`)
	assert.Contains(t, body, `<svg class="chart pie"`)
	assert.Contains(t, body, `<polyline points="0.00,`)
	assert.Contains(t, body, "<strong>geospatial data visualization</strong>")
	assert.Contains(t, body, "<em>intuitive user experiences</em>")
	assert.Contains(t, body, "Hispanic: 27%")
	assert.Contains(t, body, `<a href="mailto:alex@example.com" rel="noopener noreferrer">Email</a>`)
	assert.Contains(t, body, `<a href="#" rel="noopener noreferrer">GitHub</a>`)
	assert.Equal(t, 3, strings.Count(body, `>LinkedIn</a>`))
}

func TestChartSVGFailure(t *testing.T) {
	card := chart.HousingCard()
	card.XDomain = 1

	_, err := chartSVG(card)
	assert.ErrorIs(t, err, chart.ErrInvalidDomain)
}

func TestPieSVGStopsAtOneTurn(t *testing.T) {
	card := chart.DemographicsCard()
	svg, err := chartSVG(card)
	require.NoError(t, err)

	out := string(svg)
	assert.Equal(t, 4, strings.Count(out, "<path "))
	assert.NotContains(t, out, card.Segments[4].Color)
	// Asian ends at twelve o'clock instead of wrapping past it.
	assert.Contains(t, out, `A40,40 0 0 1 50.000,10.000 Z" fill="`+card.Segments[3].Color+`"`)

	// Only White starts at twelve o'clock.
	start := "M50,50 L50.000,10.000 "
	assert.Equal(t, 1, strings.Count(out, start))
	idx := strings.Index(out, start)
	assert.Contains(t, out[idx:idx+120], `fill="`+card.Segments[0].Color+`"`)
}

func TestPolar(t *testing.T) {
	x, y := polar(0)
	assert.InDelta(t, svgPieCenter, x, 1e-9)
	assert.InDelta(t, svgPieCenter-svgPieRadius, y, 1e-9)

	x, y = polar(90)
	assert.InDelta(t, svgPieCenter+svgPieRadius, x, 1e-9)
	assert.InDelta(t, svgPieCenter, y, 1e-9)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	cfg := &config.Config{Serve: config.ServeConfig{Port: "0"}}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, ln, cfg, nil) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
