package repository

import (
	"context"
	"testing"

	"legaldash-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionCreate(t *testing.T) {
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewSuggestionRepository(db)

	s := &models.Suggestion{
		SourceDocPreview: "This rental agreement is made...",
		SuggestedText:    `{"laws":[],"suggestions":[]}`,
		Reason:           "AI law-match",
	}
	require.NoError(t, repo.Create(context.Background(), s))

	assert.NotZero(t, s.ID)
	assert.False(t, s.CreatedAt.IsZero())

	// The log is append-only: a second insert gets its own row.
	second := &models.Suggestion{SourceDocPreview: "p", SuggestedText: "t", Reason: "AI law-match"}
	require.NoError(t, repo.Create(context.Background(), second))
	assert.Greater(t, second.ID, s.ID)
}
