package site

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/travisdwitt/oakview/internal/chart"
	"github.com/travisdwitt/oakview/internal/config"
	"github.com/travisdwitt/oakview/internal/logging"
)

// Server is the browser preview of the landing page.
type Server struct {
	router chi.Router
	log    *slog.Logger
	cfg    *config.Config

	// cardByName resolves chart cards for the chart endpoints.
	cardByName func(name string) (chart.Card, bool)
}

// NewServer creates and configures the HTTP server.
func NewServer(cfg *config.Config, log *slog.Logger) *Server {
	if log == nil {
		log = logging.Discard()
	}
	s := &Server{
		log:        log,
		cfg:        cfg,
		cardByName: chart.CardByName,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleIndex)

	r.Route("/api", func(r chi.Router) {
		r.Get("/sections", s.handleSections)
		r.Get("/charts", s.handleListCharts)
		r.Get("/charts/{name}", s.handleChartGeometry)
	})
	r.Get("/charts/{name}.png", s.handleChartPNG)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
