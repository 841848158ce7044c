// Package http exposes the Braid pipeline as a small JSON API: parse,
// validate, and plan endpoints plus health and Prometheus metrics.
package http

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/braid"
	"github.com/aretw0/braid/internal/logging"
	"github.com/aretw0/braid/pkg/grd"
	"github.com/aretw0/braid/pkg/ports"
)

// Server wires the parser, an optional plan cache, and request metrics.
type Server struct {
	parser *braid.Parser
	store  ports.PlanStore // nil disables caching
	logger *slog.Logger

	requests  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// Option configures the Server.
type Option func(*Server)

// WithPlanStore enables plan caching.
func WithPlanStore(store ports.PlanStore) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRegistry registers the server metrics on reg instead of the default
// Prometheus registry. Tests use this to avoid duplicate registration.
func WithRegistry(reg prometheus.Registerer) Option {
	return func(s *Server) {
		s.register(reg)
	}
}

// NewServer creates a Server around parser.
func NewServer(parser *braid.Parser, opts ...Option) *Server {
	s := &Server{
		parser: parser,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.requests == nil {
		s.register(prometheus.DefaultRegisterer)
	}
	return s
}

func (s *Server) register(reg prometheus.Registerer) {
	factory := promauto.With(reg)
	s.requests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "braid",
		Name:      "requests_total",
		Help:      "Pipeline requests by operation and outcome.",
	}, []string{"op", "outcome"})
	s.durations = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "braid",
		Name:      "request_duration_seconds",
		Help:      "Pipeline request latency by operation.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op"})
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/parse", s.handleParse)
	r.Post("/validate", s.handleValidate)
	r.Post("/plan", s.handlePlan)
	return r
}

// request is the common body for all pipeline endpoints.
type request struct {
	// Text may be raw flowchart source or a document embedding a fenced
	// mermaid block.
	Text string `json:"text"`
}

type parseResponse struct {
	Direction grd.Direction `json:"direction"`
	Nodes     []grd.Node    `json:"nodes"`
	Edges     []grd.Edge    `json:"edges"`
}

type validateResponse struct {
	Valid bool     `json:"valid"`
	Error string   `json:"error,omitempty"`
	Notes []string `json:"notes,omitempty"`
}

type planResponse struct {
	Steps  []grd.Step `json:"steps"`
	Cached bool       `json:"cached"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": braid.Version})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	defer s.observe("parse", time.Now())

	req, ok := s.decode(w, r, "parse")
	if !ok {
		return
	}

	structure, err := s.parser.Parse(req.Text)
	if err != nil {
		s.requests.WithLabelValues("parse", "error").Inc()
		// Structural problems, including a missing diagram, are faults in
		// the submitted entity.
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	s.requests.WithLabelValues("parse", "ok").Inc()
	writeJSON(w, http.StatusOK, parseResponse{
		Direction: structure.Direction(),
		Nodes:     structure.Nodes(),
		Edges:     structure.Edges(),
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	defer s.observe("validate", time.Now())

	req, ok := s.decode(w, r, "validate")
	if !ok {
		return
	}

	valid, message := s.parser.Validate(req.Text)
	resp := validateResponse{Valid: valid, Error: message}
	if valid {
		if structure, err := s.parser.Parse(req.Text); err == nil {
			resp.Notes = s.parser.Notes(structure)
		}
		s.requests.WithLabelValues("validate", "ok").Inc()
	} else {
		s.requests.WithLabelValues("validate", "invalid").Inc()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	defer s.observe("plan", time.Now())

	req, ok := s.decode(w, r, "plan")
	if !ok {
		return
	}

	key := planKey(req.Text)
	if s.store != nil {
		if steps, err := s.store.Load(r.Context(), key); err == nil {
			s.requests.WithLabelValues("plan", "cached").Inc()
			writeJSON(w, http.StatusOK, planResponse{Steps: steps, Cached: true})
			return
		} else if !errors.Is(err, ports.ErrPlanNotFound) {
			s.logger.Warn("plan cache load failed", "error", err)
		}
	}

	steps, err := s.parser.Plan(req.Text)
	if err != nil {
		s.requests.WithLabelValues("plan", "error").Inc()
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	if s.store != nil {
		if err := s.store.Save(r.Context(), key, steps); err != nil {
			s.logger.Warn("plan cache save failed", "error", err)
		}
	}

	s.requests.WithLabelValues("plan", "ok").Inc()
	writeJSON(w, http.StatusOK, planResponse{Steps: steps})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, op string) (request, bool) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.requests.WithLabelValues(op, "bad_request").Inc()
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return request{}, false
	}
	return req, true
}

func (s *Server) observe(op string, start time.Time) {
	s.durations.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func planKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
