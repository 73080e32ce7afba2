package repository

import (
	"context"
	"database/sql"

	"legaldash-backend/models"
)

// SuggestionRepository handles database operations for the suggestion audit
// log. Suggestions are append-only; no read path is exposed.
type SuggestionRepository struct {
	db *sql.DB
}

// NewSuggestionRepository creates a new suggestion repository.
func NewSuggestionRepository(db *sql.DB) *SuggestionRepository {
	return &SuggestionRepository{db: db}
}

// Create inserts a suggestion record.
func (r *SuggestionRepository) Create(ctx context.Context, s *models.Suggestion) error {
	query := `
		INSERT INTO suggestions (source_doc_preview, suggested_text, reason)
		VALUES (?, ?, ?)
		RETURNING id, created_at`

	return r.db.QueryRowContext(
		ctx, query,
		s.SourceDocPreview,
		s.SuggestedText,
		s.Reason,
	).Scan(&s.ID, &s.CreatedAt)
}
