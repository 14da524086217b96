package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"landmark-route-service/internal/domain"
	"landmark-route-service/internal/platform/obs"
	"landmark-route-service/internal/routing"
	"landmark-route-service/internal/services"
	"log/slog"
	"net/http"
)

// RouteService is the application surface the handlers depend on.
type RouteService interface {
	ListNodes(ctx context.Context) ([]domain.LandmarkNode, error)
	FindPath(ctx context.Context, start, end string) (domain.RouteResult, error)
	Nearby(ctx context.Context, anchor string, radiusKm float64) ([]domain.NearbyLandmark, error)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "encode failed",
			"req_id", obs.RequestID(r.Context()), "method", r.Method, "path", r.URL.Path, "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeServiceError maps domain errors onto HTTP statuses. Unexpected errors
// are logged and hidden behind a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, routing.ErrUnknownNode),
		errors.Is(err, services.ErrSameEndpoints),
		errors.Is(err, services.ErrInvalidRadius),
		errors.Is(err, services.ErrMissingLandmark):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, routing.ErrNoPathFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"req_id", obs.RequestID(r.Context()), "method", r.Method, "path", r.URL.Path, "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func allow(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	return false
}
