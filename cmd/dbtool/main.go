package main

import (
	"database/sql"
	"log"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/darren10101/SnapEvent-sub001/internal/adapters/repositories"
	"github.com/darren10101/SnapEvent-sub001/internal/config"
	"github.com/darren10101/SnapEvent-sub001/internal/platform/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL, ok := config.Require("DATABASE_URL")
	if !ok {
		log.Fatal("DATABASE_URL is required")
	}

	store, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/demo.json")
	if err := initAndSeed(store, seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(store *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(store); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedFromJSON(store, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")

	return nil
}
