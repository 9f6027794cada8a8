// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/katalvlaran/costflow/bellmanford"
	"github.com/katalvlaran/costflow/core"
	"github.com/katalvlaran/costflow/flow"
	"github.com/katalvlaran/costflow/internal/config"
	"github.com/katalvlaran/costflow/report"
)

// errTooManyVertices is returned for graphs above config.Server.MaxVertices.
var errTooManyVertices = errors.New("too many vertices")

// graphErrors are the input errors reported as 422 invalid_graph.
var graphErrors = []error{
	core.ErrBadVertexCount,
	core.ErrInvalidEdgeEndpoint,
	core.ErrNegativeCapacity,
	core.ErrCostOutOfRange,
	core.ErrSelfLoop,
	flow.ErrSourceOutOfRange,
	flow.ErrSinkOutOfRange,
	flow.ErrSourceIsSink,
	bellmanford.ErrSourceOutOfRange,
	errTooManyVertices,
}

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	cfg    config.Server
	logger *charmlog.Logger
}

// NewHandlers creates handlers bounded by cfg that log to logger.
func NewHandlers(cfg config.Server, logger *charmlog.Logger) *Handlers {
	if logger == nil {
		logger = charmlog.Default()
	}
	return &Handlers{cfg: cfg, logger: logger}
}

// HandleSolve handles POST /api/v1/solve.
func (h *Handlers) HandleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if !h.decode(w, r, &req) {
		return
	}

	nw, err := h.network(req.GraphJSON)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	sink := flow.DefaultSink
	if req.Sink != nil {
		sink = *req.Sink
	}
	opts := []flow.Option{
		flow.WithSink(sink),
		flow.WithLogger(h.requestLogger(r)),
	}
	if req.CycleCheck {
		opts = append(opts, flow.WithCycleCheck())
	}

	res, err := flow.MinCostMaxFlow(r.Context(), nw, req.Source, opts...)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	doc := report.NewSolveDoc("", nw, res)
	doc.ID = uuid.NewString()
	writeJSON(w, http.StatusOK, doc)
}

// HandleShortestPaths handles POST /api/v1/shortest-paths.
func (h *Handlers) HandleShortestPaths(w http.ResponseWriter, r *http.Request) {
	var req PathsRequest
	if !h.decode(w, r, &req) {
		return
	}

	nw, err := h.network(req.GraphJSON)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := bellmanford.ShortestPaths(nw.Arcs(), req.Source)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	doc := report.NewPathsDoc("", res)
	doc.ID = uuid.NewString()
	writeJSON(w, http.StatusOK, doc)
}

// HandleHealth handles GET /api/v1/health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// decode enforces a JSON body within MaxBodyBytes; on failure it has
// already written the 400 response.
func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		writeError(w, http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: "content type must be application/json"})
		return false
	}

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes)).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return false
	}

	return true
}

func (h *Handlers) network(g GraphJSON) (*core.Network, error) {
	if g.Vertices > h.cfg.MaxVertices {
		return nil, fmt.Errorf("%d > %d: %w", g.Vertices, h.cfg.MaxVertices, errTooManyVertices)
	}
	return core.FromEdges(g.Vertices, g.coreEdges())
}

// fail maps a solve or validation error to its response.
func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	var nce bellmanford.NegativeCycleError
	switch {
	case errors.As(err, &nce):
		writeError(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "negative_cycle", Message: err.Error(), Cycle: nce.Cycle})
	case errors.Is(err, bellmanford.ErrNegativeCycle):
		writeError(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "negative_cycle", Message: err.Error()})
	case isGraphError(err):
		writeError(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid_graph", Message: err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, ErrorResponse{Error: "request_timeout"})
	default:
		h.requestLogger(r).Error("request failed", "err", err)
		writeError(w, http.StatusInternalServerError, ErrorResponse{Error: "internal_error"})
	}
}

func (h *Handlers) requestLogger(r *http.Request) *charmlog.Logger {
	if id := middleware.GetReqID(r.Context()); id != "" {
		return h.logger.With("request_id", id)
	}
	return h.logger
}

func isGraphError(err error) bool {
	for _, target := range graphErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, resp ErrorResponse) {
	writeJSON(w, status, resp)
}
