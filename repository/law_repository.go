package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"legaldash-backend/models"
)

// DefaultSearchLimit caps law search results when the caller asks for none.
const DefaultSearchLimit = 10

// LawRepository handles database operations for laws.
type LawRepository struct {
	db *sql.DB
}

// NewLawRepository creates a new law repository.
func NewLawRepository(db *sql.DB) *LawRepository {
	return &LawRepository{db: db}
}

// Count returns the number of law rows.
func (r *LawRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM laws`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count laws: %w", err)
	}
	return count, nil
}

// Create inserts a single law row.
func (r *LawRepository) Create(ctx context.Context, law *models.Law) error {
	query := `
		INSERT INTO laws (title, jurisdiction, tags, text)
		VALUES (?, ?, ?, ?)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(
		ctx, query,
		law.Title,
		law.Jurisdiction,
		law.Tags,
		law.Text,
	).Scan(&law.ID, &law.CreatedAt)

	return err
}

// BulkInsert inserts seed records in one transaction. Missing fields get
// per-field defaults; entries without title or text are filled with the
// placeholder values the upstream seed format tolerates.
func (r *LawRepository) BulkInsert(ctx context.Context, records []models.SeedLaw) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO laws (title, jurisdiction, tags, text) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare seed insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, rec := range records {
		title := rec.Title
		if title == "" {
			title = "No Title"
		}
		jurisdiction := rec.Jurisdiction
		if jurisdiction == "" {
			jurisdiction = models.DefaultJurisdiction
		}
		if _, err := stmt.ExecContext(ctx, title, jurisdiction, rec.Tags, rec.Text); err != nil {
			return 0, fmt.Errorf("insert seed law %q: %w", title, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed transaction: %w", err)
	}
	return inserted, nil
}

// Search returns laws matching the query and jurisdiction filters, newest
// first. The query is a case-insensitive substring match against title, tags
// or body; an empty query matches everything. Ordering is recency only.
func (r *LawRepository) Search(ctx context.Context, query, jurisdiction string, limit int) ([]models.Law, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	sqlQuery := `
		SELECT id, title, jurisdiction, tags, text, created_at
		FROM laws`

	var (
		clauses []string
		args    []interface{}
	)

	if jurisdiction = strings.TrimSpace(jurisdiction); jurisdiction != "" {
		clauses = append(clauses, `LOWER(jurisdiction) LIKE ?`)
		args = append(args, likePattern(jurisdiction))
	}
	if query = strings.TrimSpace(query); query != "" {
		clauses = append(clauses, `(LOWER(title) LIKE ? OR LOWER(tags) LIKE ? OR LOWER(text) LIKE ?)`)
		pattern := likePattern(query)
		args = append(args, pattern, pattern, pattern)
	}

	if len(clauses) > 0 {
		sqlQuery += " WHERE " + strings.Join(clauses, " AND ")
	}
	sqlQuery += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("search laws: %w", err)
	}
	defer rows.Close()

	var laws []models.Law
	for rows.Next() {
		var law models.Law
		err := rows.Scan(
			&law.ID,
			&law.Title,
			&law.Jurisdiction,
			&law.Tags,
			&law.Text,
			&law.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		laws = append(laws, law)
	}

	return laws, rows.Err()
}

func likePattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
