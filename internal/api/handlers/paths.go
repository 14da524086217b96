package handlers

import (
	"encoding/json"
	"io"
	"landmark-route-service/internal/api/dto"
	"net/http"
	"strings"
)

const maxBodyBytes = 1 << 16

type PathHandler struct {
	Service RouteService
}

// Find computes the route between two landmarks, with road geometry and the
// landmarks lying along it.
func (h *PathHandler) Find(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}

	var req dto.PathRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	start := strings.TrimSpace(req.Start)
	end := strings.TrimSpace(req.End)
	if start == "" || end == "" {
		writeError(w, r, http.StatusBadRequest, "start and end are required")
		return
	}

	res, err := h.Service.FindPath(r.Context(), start, end)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewPathResponse(res))
}
