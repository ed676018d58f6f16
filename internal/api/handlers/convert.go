package handlers

import (
	"net/http"

	"geo-distance-service/internal/api/dto"
	"geo-distance-service/internal/geo"
	"geo-distance-service/internal/geomath"
)

// ConvertHandler normalizes a single textual coordinate.
type ConvertHandler struct{}

func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ConvertRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var kind geo.Kind
	switch req.Kind {
	case "lat":
		kind = geo.Latitude
	case "lon":
		kind = geo.Longitude
	default:
		writeError(w, r, http.StatusBadRequest, "kind must be \"lat\" or \"lon\"")
		return
	}

	var (
		value float64
		err   error
	)
	switch req.Format {
	case "dms":
		value, err = geo.ParseDMS(req.Value, kind)
	case "ddm":
		value, err = geo.ParseDDM(req.Value, kind)
	default:
		writeError(w, r, http.StatusBadRequest, "format must be \"dms\" or \"ddm\"")
		return
	}
	if err != nil {
		writeCoordError(w, r, err)
		return
	}

	dd := geomath.Round(value, 6)
	writeJSON(w, r, http.StatusOK, dto.ConvertResponse{
		DD:  dd,
		DMS: geo.FormatDMS(dd, kind),
	})
}
