package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/p-virex/stepik-chapter-4/internal/models"
)

// RequestRepository manages persistence for tutoring requests.
type RequestRepository struct {
	db *sqlx.DB
}

// NewRequestRepository constructs a RequestRepository.
func NewRequestRepository(db *sqlx.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// Create inserts one request row and fills in the generated ID.
func (r *RequestRepository) Create(ctx context.Context, request *models.Request) error {
	const query = `INSERT INTO requests (goal, free_time, client_name, client_phone)
		VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.GetContext(ctx, &request.ID, query,
		request.Goal, request.FreeTime, request.ClientName, request.ClientPhone); err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return nil
}

// ListAll returns every request, newest first, for follow-up exports.
func (r *RequestRepository) ListAll(ctx context.Context) ([]models.Request, error) {
	const query = `SELECT id, goal, free_time, client_name, client_phone FROM requests ORDER BY id DESC`
	var requests []models.Request
	if err := r.db.SelectContext(ctx, &requests, query); err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return requests, nil
}

// Count returns the number of stored requests.
func (r *RequestRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM requests`); err != nil {
		return 0, fmt.Errorf("count requests: %w", err)
	}
	return total, nil
}
