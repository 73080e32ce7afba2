// Command seed-laws loads the law table from a JSON seed file. By default it
// only seeds an empty table, matching server startup; -force inserts the
// records regardless.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"legaldash-backend/repository"

	"github.com/joho/godotenv"
)

func main() {
	force := flag.Bool("force", false, "insert seed records even if the table is not empty")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}

	dbPath := os.Getenv("LAW_DB_PATH")
	if dbPath == "" {
		dbPath = "laws.db"
	}
	seedPath := os.Getenv("LAW_SEED_PATH")
	if seedPath == "" {
		seedPath = "sample_laws.json"
	}

	db, err := repository.OpenDB(dbPath)
	if err != nil {
		log.Fatal("Failed to open law database: ", err)
	}
	defer db.Close()

	ctx := context.Background()
	lawRepo := repository.NewLawRepository(db)

	if !*force {
		if err := lawRepo.SeedIfEmpty(ctx, seedPath); err != nil {
			log.Fatal("Failed to seed laws: ", err)
		}
		count, err := lawRepo.Count(ctx)
		if err != nil {
			log.Fatal("Failed to count laws: ", err)
		}
		log.Printf("Law table holds %d records", count)
		return
	}

	records, err := repository.LoadSeedFile(seedPath)
	if err != nil {
		log.Fatal("Failed to load seed file: ", err)
	}
	inserted, err := lawRepo.BulkInsert(ctx, records)
	if err != nil {
		log.Fatal("Failed to insert seed records: ", err)
	}
	log.Printf("Inserted %d records from %s", inserted, seedPath)
}
