package handlers

import (
	"landmark-route-service/internal/api/dto"
	"net/http"
	"strconv"
	"strings"
)

type LandmarkHandler struct {
	Service         RouteService
	DefaultRadiusKm float64
}

// List returns every routable landmark.
func (h *LandmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}

	nodes, err := h.Service.ListNodes(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.ListLandmarkResponse{Landmarks: make([]dto.LandmarkResponse, 0, len(nodes))}
	for _, n := range nodes {
		res.Landmarks = append(res.Landmarks, dto.LandmarkResponse{
			Name: n.Name,
			Lat:  n.Location.Lat,
			Lng:  n.Location.Lng,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Nearby lists landmarks around ?name= within ?radius_km=.
func (h *LandmarkHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()

	name := strings.TrimSpace(q.Get("name"))
	if name == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}

	radius := h.DefaultRadiusKm
	if raw := strings.TrimSpace(q.Get("radius_km")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "radius_km must be a number")
			return
		}
		radius = v
	}

	nearby, err := h.Service.Nearby(r.Context(), name, radius)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NearbyResponse{
		Anchor:    name,
		RadiusKm:  radius,
		Landmarks: dto.NewNearbyLandmarks(nearby),
	})
}
