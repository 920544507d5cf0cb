// Package http exposes the diagram catalog over a stateless JSON/HTML API.
// Position and parameters travel in the query string; the server keeps no
// session state, matching the engine's ownership model (state belongs to the
// caller).
package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/blockwalk/blockwalk"
	"github.com/blockwalk/blockwalk/internal/presentation/html"
	"github.com/blockwalk/blockwalk/pkg/catalog"
	"github.com/blockwalk/blockwalk/pkg/diagrams"
	"github.com/blockwalk/blockwalk/pkg/domain"
)

// Server routes catalog and frame requests.
type Server struct {
	frameRenders *prometheus.CounterVec
	chartRenders *prometheus.CounterVec
}

// NewHandler creates the HTTP handler and registers metrics on the given
// registry (pass prometheus.NewRegistry() in tests to avoid global state).
func NewHandler(reg *prometheus.Registry) http.Handler {
	s := &Server{
		frameRenders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blockwalk_frame_renders_total",
				Help: "Frames rendered, by diagram.",
			},
			[]string{"diagram"},
		),
		chartRenders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blockwalk_chart_renders_total",
				Help: "Chart pages rendered, by diagram.",
			},
			[]string{"diagram"},
		),
	}
	reg.MustRegister(s.frameRenders, s.chartRenders)

	r := chi.NewRouter()
	r.Get("/diagrams", s.listDiagrams)
	r.Get("/diagrams/{slug}", s.getDiagram)
	r.Get("/diagrams/{slug}/frame", s.getFrame)
	r.Get("/diagrams/{slug}/chart", s.getChart)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) listDiagrams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, catalog.Infos())
}

// diagramDetail is the full static definition of one diagram.
type diagramDetail struct {
	Info   diagrams.Info      `json:"info"`
	Steps  []domain.Step      `json:"steps"`
	Params []domain.ParamSpec `json:"params,omitempty"`
}

func (s *Server) getDiagram(w http.ResponseWriter, r *http.Request) {
	d, ok := s.resolve(w, r)
	if !ok {
		return
	}
	writeJSON(w, diagramDetail{Info: d.Info(), Steps: d.Steps(), Params: d.Params()})
}

func (s *Server) getFrame(w http.ResponseWriter, r *http.Request) {
	d, ok := s.resolve(w, r)
	if !ok {
		return
	}
	eng := blockwalk.NewFromDiagram(d)
	state := s.stateFromQuery(eng, r)
	s.frameRenders.WithLabelValues(d.Info().Slug).Inc()
	writeJSON(w, eng.Render(state))
}

func (s *Server) getChart(w http.ResponseWriter, r *http.Request) {
	d, ok := s.resolve(w, r)
	if !ok {
		return
	}
	eng := blockwalk.NewFromDiagram(d)
	state := s.stateFromQuery(eng, r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	s.chartRenders.WithLabelValues(d.Info().Slug).Inc()
	if err := html.RenderPage(w, d, state); err != nil {
		http.Error(w, fmt.Sprintf("Chart error: %v", err), http.StatusNotFound)
	}
}

// resolve looks up the slug or writes a 404.
func (s *Server) resolve(w http.ResponseWriter, r *http.Request) (diagrams.Diagram, bool) {
	slug := chi.URLParam(r, "slug")
	d, err := catalog.FromSlug(slug)
	if err != nil {
		http.Error(w, fmt.Sprintf("Unknown diagram %q", slug), http.StatusNotFound)
		return nil, false
	}
	return d, true
}

// stateFromQuery builds the requested state: ?step=N plus one query value
// per declared parameter. Out-of-range values clamp, junk is ignored — the
// same degrade-to-noop policy as the interactive frontends.
func (s *Server) stateFromQuery(eng *blockwalk.Engine, r *http.Request) *domain.State {
	state := eng.Start()
	if raw := r.URL.Query().Get("step"); raw != "" {
		if i, err := strconv.Atoi(raw); err == nil {
			state = eng.JumpTo(state, i)
		}
	}
	for _, spec := range eng.Diagram().Params() {
		if raw := r.URL.Query().Get(spec.Name); raw != "" {
			state, _ = eng.SetParamString(state, spec.Name, raw)
		}
	}
	return state
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, fmt.Sprintf("Encode error: %v", err), http.StatusInternalServerError)
	}
}
