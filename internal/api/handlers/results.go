package handlers

import (
	"net/http"
	"strconv"

	"geo-distance-service/internal/api/dto"
	"geo-distance-service/internal/ports"
)

const maxResultsLimit = 500

// ResultsHandler lists recently persisted distance computations.
type ResultsHandler struct {
	Store ports.ResultStore
}

func (h *ResultsHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if h.Store == nil {
		writeError(w, r, http.StatusServiceUnavailable, "result store not configured")
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxResultsLimit)
	}

	results, err := h.Store.Recent(r.Context(), limit)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "listing results failed")
		return
	}

	out := dto.ListResultsResponse{Results: make([]dto.ResultResponse, 0, len(results))}
	for _, res := range results {
		out.Results = append(out.Results, dto.ResultResponse{
			NameA:         res.NameA,
			NameB:         res.NameB,
			LatA:          res.LatA,
			LonA:          res.LonA,
			LatB:          res.LatB,
			LonB:          res.LonB,
			DistanceKm:    res.DistanceKm,
			DistanceMiles: res.DistanceMiles,
			NearlyBoth:    res.NearlyBoth,
			ComputedAt:    res.ComputedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, out)
}
