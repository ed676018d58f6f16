package api

import (
	"net/http"

	"geo-distance-service/internal/api/handlers"
	"geo-distance-service/internal/geomath"
	"geo-distance-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware
// of concrete adapters.
func NewRouter(store ports.ResultStore, cache ports.ResultCache, tol geomath.Tolerance) http.Handler {
	mux := http.NewServeMux()

	convertHandler := &handlers.ConvertHandler{}
	distanceHandler := &handlers.DistanceHandler{
		Store:     store,
		Cache:     cache,
		Tolerance: tol,
	}
	resultsHandler := &handlers.ResultsHandler{Store: store}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/convert", convertHandler.Convert)
	mux.HandleFunc("/distance", distanceHandler.Distance)
	mux.HandleFunc("/results", resultsHandler.List)

	return loggingMiddleware(mux)
}
