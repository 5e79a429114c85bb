package server

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"kinorelay/internal/media"
	"kinorelay/internal/provider"
)

// isoMillis matches JavaScript's Date.toISOString output.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// apiError is a caller-facing failure with its own status code.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return e.Message
}

func badRequest(msg string) error {
	return &apiError{Status: http.StatusBadRequest, Message: msg}
}

// handle adapts an error-returning handler. apiErrors keep their status;
// anything else becomes a 500 carrying the error text.
func (s *Server) handle(h func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		var apiErr *apiError
		if errors.As(err, &apiErr) {
			log.WithField("path", r.URL.Path).Info(apiErr.Message)
			writeJSON(w, apiErr.Status, errorResponse{Error: apiErr.Message})
			return
		}

		log.WithField("path", r.URL.Path).WithError(err).Error("request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "Internal server error",
			Message: err.Error(),
		})
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: s.now().UTC().Format(isoMillis),
	})
	return nil
}

// handleCache resolves players for a Kinopoisk ID.
// Body: {"kinopoisk": "...", "type": "movie"|"series"}
func (s *Server) handleCache(w http.ResponseWriter, r *http.Request) error {
	var req cacheRequest
	if err := decodeRequest(r, &req); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"kinopoisk": req.Kinopoisk,
		"type":      req.Type,
	}).Info("player lookup")

	if req.Kinopoisk == "" {
		return badRequest("Kinopoisk ID is required")
	}

	id, ok := media.NormalizeKinopoiskID(string(req.Kinopoisk))
	if !ok {
		return badRequest("Invalid Kinopoisk ID format")
	}
	kind := media.ParseContentKind(string(req.Type))

	players := provider.Collect(r.Context(), s.providers, id, kind)
	if len(players) == 0 {
		return &apiError{Status: http.StatusNotFound, Message: "No players found"}
	}

	writeJSON(w, http.StatusOK, players)
	return nil
}

// handleCacheShiki validates a Shikimori lookup and answers with no players.
func (s *Server) handleCacheShiki(w http.ResponseWriter, r *http.Request) error {
	var req shikiRequest
	if err := decodeRequest(r, &req); err != nil {
		return err
	}

	if req.Shikimori == "" {
		return badRequest("Shikimori ID is required")
	}

	// TODO: query Shikimori-keyed sources here once one is registered in provider.
	writeJSON(w, http.StatusOK, media.Players{})
	return nil
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "Endpoint not found"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("couldn't write response")
	}
}
