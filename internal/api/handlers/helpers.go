package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"geo-distance-service/internal/geo"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// decodeJSON reads the request body into dst and reports failures as a
// 400 response. Returns false when the handler should stop.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

// writeCoordError maps the parser error taxonomy onto a 400 response
// so that clients can branch on error_kind without string matching.
func writeCoordError(w http.ResponseWriter, r *http.Request, err error) {
	body := map[string]string{"error": err.Error()}

	var syntaxErr *geo.SyntaxError
	var fieldErr *geo.FieldError
	var coordErr *geo.CoordError
	switch {
	case errors.As(err, &syntaxErr):
		body["error_kind"] = "format"
	case errors.As(err, &fieldErr):
		body["error_kind"] = "field"
		body["field"] = fieldErr.Field.String()
	case errors.As(err, &coordErr):
		body["error_kind"] = "validation"
	}

	writeJSON(w, r, http.StatusBadRequest, body)
}
