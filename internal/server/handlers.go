package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/islandhop/placesearch/internal/catalog"
	"github.com/islandhop/placesearch/internal/search"
)

// searchRequest is the POST /api/v1/search body.
type searchRequest struct {
	Query            string   `json:"query"`
	MaxResults       int      `json:"maxResults,omitempty"`
	CategoryHint     string   `json:"categoryHint,omitempty"`
	MinScore         *float64 `json:"minScore,omitempty"`
	MinSemanticScore *float64 `json:"minSemanticScore,omitempty"`
	IncludeBreakdown bool     `json:"includeBreakdown,omitempty"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("search request", zap.String("query", req.Query), zap.Int("max_results", req.MaxResults))
	result, err := s.engine.Search(r.Context(), req.Query, search.Options{
		MaxResults:       req.MaxResults,
		CategoryHint:     catalog.Category(req.CategoryHint),
		MinScore:         req.MinScore,
		MinSemanticScore: req.MinSemanticScore,
		IncludeBreakdown: req.IncludeBreakdown,
	})
	if err != nil {
		if errors.Is(err, search.ErrEmptyQuery) {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

// relatedRequest is the POST /api/v1/related body.
type relatedRequest struct {
	IDs   []string `json:"ids"`
	Limit int      `json:"limit,omitempty"`
}

func (s *Server) handleRelated(w http.ResponseWriter, r *http.Request) {
	var req relatedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("related request", zap.Strings("ids", req.IDs), zap.Int("limit", req.Limit))
	result, err := s.engine.SearchRelated(r.Context(), req.IDs, req.Limit)
	if err != nil {
		switch {
		case errors.Is(err, search.ErrNoSeeds):
			s.respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, search.ErrVectorsUnavailable):
			s.respondError(w, http.StatusServiceUnavailable, err.Error())
		default:
			s.logger.Error("related search failed", zap.Error(err))
			s.respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetPlace(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	entry, ok := s.catalog.ByID(id)
	if !ok {
		s.respondError(w, http.StatusNotFound, "place not found")
		return
	}
	s.respondJSON(w, http.StatusOK, entry)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.engine.Status())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
