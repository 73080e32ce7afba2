package models

import (
	"time"
)

// Suggestion is a write-only audit record of an AI law-topic suggestion.
// Nothing in the HTTP surface reads these back.
type Suggestion struct {
	ID               int64     `json:"id"`
	SourceDocPreview string    `json:"source_doc_preview"`
	SuggestedText    string    `json:"suggested_text"`
	Reason           string    `json:"reason"`
	CreatedAt        time.Time `json:"created_at"`
}
