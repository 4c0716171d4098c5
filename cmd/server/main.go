package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/darren10101/SnapEvent-sub001/internal/adapters/cache"
	"github.com/darren10101/SnapEvent-sub001/internal/adapters/directions"
	"github.com/darren10101/SnapEvent-sub001/internal/adapters/repositories"
	"github.com/darren10101/SnapEvent-sub001/internal/api"
	"github.com/darren10101/SnapEvent-sub001/internal/config"
	"github.com/darren10101/SnapEvent-sub001/internal/platform/db"
	"github.com/darren10101/SnapEvent-sub001/internal/ports"
	"github.com/darren10101/SnapEvent-sub001/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, Google Maps) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL, ok := config.Require("DATABASE_URL")
	if !ok {
		log.Fatal("DATABASE_URL is required")
	}

	apiKey, ok := config.Require("GMAPS_API_KEY")
	if !ok {
		log.Fatal("GMAPS_API_KEY is required")
	}

	port := config.Get("PORT", "8080")

	store, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	provider, err := directions.NewGoogleDirectionsProvider(apiKey)
	if err != nil {
		log.Fatal(err)
	}

	// The schedule cache lives behind a port: Redis when configured,
	// otherwise the schedule_cache column on the event row itself.
	var scheduleCache ports.ScheduleCache
	if addr := config.Get("REDIS_ADDR", ""); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		scheduleCache = cache.NewRedisScheduleCache(client, 35*time.Minute)
		log.Printf("schedule cache backend=redis addr=%s", addr)
	} else {
		scheduleCache = cache.NewSQLScheduleCache(store)
		log.Println("schedule cache backend=store")
	}

	eventRepo := repositories.NewPostgresEventRepository(store)
	userRepo := repositories.NewPostgresUserRepository(store)

	scheduleService := services.NewScheduleService(eventRepo, userRepo, provider, scheduleCache)
	meetupService := services.NewMeetupService(provider, services.CentroidStrategy{})

	router := api.NewRouter(eventRepo, scheduleService, meetupService)

	// Timeouts are tuned for cold-cache schedule generation (external
	// API latency per participant).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
