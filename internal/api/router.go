package api

import (
	"landmark-route-service/internal/api/handlers"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(svc handlers.RouteService, nearbyRadiusKm float64) http.Handler {
	mux := http.NewServeMux()

	landmarkHandler := &handlers.LandmarkHandler{Service: svc, DefaultRadiusKm: nearbyRadiusKm}
	pathHandler := &handlers.PathHandler{Service: svc}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/landmarks", landmarkHandler.List)
	mux.HandleFunc("/landmarks/nearby", landmarkHandler.Nearby)
	mux.HandleFunc("/paths", pathHandler.Find)

	return requestIDMiddleware(loggingMiddleware(mux))
}
