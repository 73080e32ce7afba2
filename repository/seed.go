package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"legaldash-backend/models"
)

// SeedIfEmpty loads laws from the JSON seed file when the table holds zero
// rows; otherwise it is a no-op. A missing or unreadable seed file is logged
// and skipped so startup still succeeds with zero laws.
func (r *LawRepository) SeedIfEmpty(ctx context.Context, seedPath string) error {
	count, err := r.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	records, err := LoadSeedFile(seedPath)
	if err != nil {
		log.Printf("Warning: skipping law seeding: %v", err)
		return nil
	}

	inserted, err := r.BulkInsert(ctx, records)
	if err != nil {
		return fmt.Errorf("seed laws: %w", err)
	}

	log.Printf("Seeded %d laws from %s", inserted, seedPath)
	return nil
}

// LoadSeedFile reads and parses the seed JSON (an array of law entries).
func LoadSeedFile(path string) ([]models.SeedLaw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var records []models.SeedLaw
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return records, nil
}
