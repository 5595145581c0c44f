package main

import (
	"log"
	"os"

	"github.com/campusmatch/campusmatch/internal/config"
	"github.com/campusmatch/campusmatch/internal/datastore/postgres"
)

func main() {
	env := "DEV"
	if len(os.Args) > 1 && os.Args[1] != "" {
		env = os.Args[1]
	}

	cfg, err := config.NewConfig(env)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	database, err := postgres.InitializeDB(
		cfg.Get("POSTGRES_USER"), cfg.Get("POSTGRES_PASSWORD"), cfg.Get("POSTGRES_DB_NAME"),
		cfg.Get("POSTGRES_HOST"), cfg.Get("POSTGRES_PORT"),
	)
	if err != nil {
		log.Fatalf("failed to init db: %v", err)
	}

	if err := postgres.SeedDemoData(database); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	log.Println("Seeding completed.")
}
