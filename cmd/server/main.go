package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"geo-distance-service/internal/adapters/cache"
	"geo-distance-service/internal/adapters/store"
	"geo-distance-service/internal/api"
	"geo-distance-service/internal/config"
	"geo-distance-service/internal/geomath"
	"geo-distance-service/internal/platform/db"
	"geo-distance-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis) behind ports and starts
// the HTTP server. Both adapters are optional: without them the service
// still converts and computes, it just stops persisting and caching.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	var resultStore ports.ResultStore
	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		sqlDB, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer sqlDB.Close()

		// Create the schema on startup for local runs.
		if err := store.InitSchema(sqlDB); err != nil {
			log.Fatal(err)
		}
		resultStore = store.NewSQLResultStore(sqlDB)
	} else {
		log.Println("DATABASE_URL not set, results will not be persisted")
	}

	var resultCache ports.ResultCache
	if addr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		resultCache = cache.NewRedisResultCache(client, time.Hour)
	} else {
		log.Println("REDIS_ADDR not set, result caching disabled")
	}

	router := api.NewRouter(resultStore, resultCache, geomath.DefaultTolerance)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
