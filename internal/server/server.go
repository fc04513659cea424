/*
Package server exposes the translator over HTTP. The API is three
hand-written routes: POST /translate takes a two-tape description and
answers with the single-tape table, POST /run executes a single-tape
table against an input tape, and GET /healthz reports liveness.
Translated tables are cached by content hash.
*/
package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mwarzynski/uw-turing-machine/internal/cache"
	"github.com/mwarzynski/uw-turing-machine/internal/compiler"
	"github.com/mwarzynski/uw-turing-machine/internal/interpreter"
	"github.com/mwarzynski/uw-turing-machine/internal/parser"
	"github.com/mwarzynski/uw-turing-machine/pkg/machine"
)

// Server holds the handler dependencies.
type Server struct {
	store  cache.Store
	logger *slog.Logger
}

// NewHandler creates the HTTP handler for the translator API.
func NewHandler(store cache.Store, logger *slog.Logger) http.Handler {
	s := &Server{store: store, logger: logger}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/translate", s.handleTranslate)
	r.Post("/run", s.handleRun)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleTranslate reads a two-tape description from the request body and
// answers with the rendered single-tape table.
func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	key := cache.Key(body)
	if table, ok, err := s.store.Get(r.Context(), key); err != nil {
		s.logger.Warn("cache lookup failed", "error", err)
	} else if ok {
		cacheHits.Inc()
		s.writeTable(w, table)
		return
	}

	transitions, err := parser.ParseTwoTape(bytes.NewReader(body))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows := compiler.Translate(transitions)
	table := machine.RenderTable(rows)

	translationsTotal.Inc()
	tableRows.Observe(float64(len(rows)))

	if err := s.store.Put(r.Context(), key, table); err != nil {
		s.logger.Warn("cache store failed", "error", err)
	}
	s.writeTable(w, table)
}

func (s *Server) writeTable(w http.ResponseWriter, table string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(table))
}

// RunRequest is the body of POST /run.
type RunRequest struct {
	// Machine is a single-tape description in the 5-field line format.
	Machine string `json:"machine"`
	// Tape is the bare input, one letter per rune.
	Tape string `json:"tape"`
	// Steps bounds the run.
	Steps int `json:"steps"`
}

// RunResponse is the answer of POST /run.
type RunResponse struct {
	Accepted bool   `json:"accepted"`
	Halted   bool   `json:"halted"`
	State    string `json:"state"`
	Steps    int    `json:"steps"`
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Steps <= 0 {
		http.Error(w, "steps must be positive", http.StatusBadRequest)
		return
	}

	rows, err := parser.ParseSingleTape(bytes.NewReader([]byte(req.Machine)))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m := interpreter.New(interpreter.NewDefinition(rows))
	res := m.Run(req.Steps, interpreter.TapeFromString(req.Tape))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(RunResponse{
		Accepted: res.Accepted,
		Halted:   res.Halted,
		State:    string(res.State),
		Steps:    res.Steps,
	})
}
