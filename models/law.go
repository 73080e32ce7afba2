package models

import (
	"time"
)

// DefaultJurisdiction is applied to seeded laws that carry no jurisdiction.
const DefaultJurisdiction = "India"

// Law represents a statute record. Laws are created once during startup
// seeding and are never updated or deleted by the running service.
type Law struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Jurisdiction string    `json:"jurisdiction"`
	Tags         string    `json:"tags"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
}

// SeedLaw is one entry of the external seed file. Missing fields are
// tolerated and filled with defaults at insert time.
type SeedLaw struct {
	Title        string `json:"title"`
	Jurisdiction string `json:"jurisdiction"`
	Tags         string `json:"tags"`
	Text         string `json:"text"`
}
