package handlers

import (
	"log"
	"net/http"

	"geo-distance-service/internal/api/dto"
	"geo-distance-service/internal/domain"
	"geo-distance-service/internal/geomath"
	"geo-distance-service/internal/ports"
	"geo-distance-service/internal/services"
)

// DistanceHandler normalizes a pair of points, computes distance and
// proximity metrics and records the result. Store and Cache are
// optional; a nil dependency disables that side effect.
type DistanceHandler struct {
	Store     ports.ResultStore
	Cache     ports.ResultCache
	Tolerance geomath.Tolerance
}

func (h *DistanceHandler) Distance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.DistanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	format, err := services.ParseFormat(req.Format)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	tol := h.Tolerance
	if req.ToleranceDeg != nil {
		if *req.ToleranceDeg < 0 {
			writeError(w, r, http.StatusBadRequest, "tolerance_deg must be non-negative")
			return
		}
		tol = geomath.Tolerance{Deg: *req.ToleranceDeg}
	}

	row := ports.RawRow{
		NameA: req.A.Name,
		LatA:  req.A.Lat,
		LonA:  req.A.Lon,
		NameB: req.B.Name,
		LatB:  req.B.Lat,
		LonB:  req.B.Lon,
	}
	pair, err := services.NormalizeRow(row, format)
	if err != nil {
		writeCoordError(w, r, err)
		return
	}

	// Cached entries are computed with the default tolerance; a custom
	// tolerance bypasses the cache entirely.
	useCache := h.Cache != nil && req.ToleranceDeg == nil

	cached := false
	var metrics domain.DistanceMetrics
	if useCache {
		m, ok, err := h.Cache.Get(r.Context(), pair)
		if err != nil {
			log.Printf("result cache read failed: %v", err)
		} else if ok {
			metrics = m
			cached = true
		}
	}

	if !cached {
		metrics, err = services.ComputeMetrics(pair, tol)
		if err != nil {
			writeError(w, r, http.StatusInternalServerError, err.Error())
			return
		}

		if useCache {
			if err := h.Cache.Put(r.Context(), pair, metrics); err != nil {
				log.Printf("result cache write failed: %v", err)
			}
		}

		if h.Store != nil {
			result := ports.PairResult{
				NameA:         pair.A.Name,
				NameB:         pair.B.Name,
				LatA:          pair.A.Lat.DD,
				LonA:          pair.A.Lon.DD,
				LatB:          pair.B.Lat.DD,
				LonB:          pair.B.Lon.DD,
				DistanceKm:    metrics.Km,
				DistanceMiles: metrics.Miles,
				NearlyBoth:    metrics.Nearly.Both,
			}
			if err := h.Store.Save(r.Context(), result); err != nil {
				log.Printf("result store write failed: %v", err)
			}
		}
	}

	writeJSON(w, r, http.StatusOK, dto.DistanceResponse{
		A:             pointResponse(pair.A),
		B:             pointResponse(pair.B),
		DistanceKm:    metrics.Km,
		DistanceMiles: metrics.Miles,
		Nearly:        metrics.Nearly,
		Cached:        cached,
	})
}

func pointResponse(p domain.NormalizedPoint) dto.PointResponse {
	return dto.PointResponse{
		Name:   p.Name,
		LatDD:  p.Lat.DD,
		LonDD:  p.Lon.DD,
		LatDMS: p.Lat.DMS,
		LonDMS: p.Lon.DMS,
	}
}
