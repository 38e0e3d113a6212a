package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/azmapper/azmap/pkg/model"
	"github.com/azmapper/azmap/pkg/pipeline"
	"github.com/azmapper/azmap/pkg/snapshot"
	"github.com/azmapper/azmap/pkg/store"
)

// diagramRequest is the body of POST /api/diagrams.
type diagramRequest struct {
	Snapshot *snapshot.Snapshot        `json:"snapshot"`
	Config   model.VisualizationConfig `json:"config"`
	Formats  []string                  `json:"formats,omitempty"`
	Refresh  bool                      `json:"refresh,omitempty"`
}

// diagramResponse carries pipeline output. Artifact bytes are base64
// encoded by the JSON marshaller.
type diagramResponse struct {
	BuildID   string             `json:"build_id"`
	NodeCount int                `json:"node_count"`
	EdgeCount int                `json:"edge_count"`
	Cache     pipeline.CacheInfo `json:"cache"`
	Artifacts map[string][]byte  `json:"artifacts"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateDiagram(w http.ResponseWriter, r *http.Request) {
	var req diagramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Snapshot == nil {
		writeError(w, http.StatusBadRequest, "snapshot required")
		return
	}
	if err := req.Snapshot.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := pipeline.ValidateFormats(req.Formats); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := pipeline.Options{
		Snapshot: req.Snapshot,
		Config:   req.Config,
		Formats:  req.Formats,
		Refresh:  req.Refresh,
		IconDir:  s.cfg.IconDir,
		Logger:   s.logger,
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.logger.Error("pipeline failed", "error", err)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	record := &store.BuildRecord{
		ID:               result.BuildID,
		SubscriptionID:   result.Snapshot.SubscriptionID,
		SubscriptionName: result.Snapshot.SubscriptionName,
		Config:           req.Config,
		GraphHash:        result.GraphHash,
		DocumentHash:     result.DocumentHash,
		NodeCount:        result.Stats.NodeCount,
		EdgeCount:        result.Stats.EdgeCount,
		Formats:          opts.Formats,
		DOT:              result.DOT,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.archive.Save(r.Context(), record); err != nil {
		s.logger.Warn("archiving build failed", "build_id", result.BuildID, "error", err)
	}

	writeJSON(w, http.StatusOK, diagramResponse{
		BuildID:   result.BuildID,
		NodeCount: result.Stats.NodeCount,
		EdgeCount: result.Stats.EdgeCount,
		Cache:     result.CacheInfo,
		Artifacts: result.Artifacts,
	})
}

func (s *Server) handleListBuilds(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	records, err := s.archive.List(r.Context(), r.URL.Query().Get("subscription"), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if records == nil {
		records = []*store.BuildRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleGetBuild(w http.ResponseWriter, r *http.Request) {
	record, err := s.archive.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "build not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleDeleteBuild(w http.ResponseWriter, r *http.Request) {
	if err := s.archive.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
