package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/p-virex/stepik-chapter-4/internal/models"
)

// BookingRepository manages persistence for lesson bookings.
type BookingRepository struct {
	db *sqlx.DB
}

// NewBookingRepository constructs a BookingRepository.
func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts one booking row and fills in the generated ID.
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	const query = `INSERT INTO bookings (teacher_name, weekday, time_slot, client_name, client_phone)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.GetContext(ctx, &booking.ID, query,
		booking.TeacherName, booking.Weekday, booking.TimeSlot, booking.ClientName, booking.ClientPhone); err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

// ListAll returns every booking, newest first, for follow-up exports.
func (r *BookingRepository) ListAll(ctx context.Context) ([]models.Booking, error) {
	const query = `SELECT id, teacher_name, weekday, time_slot, client_name, client_phone FROM bookings ORDER BY id DESC`
	var bookings []models.Booking
	if err := r.db.SelectContext(ctx, &bookings, query); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// Count returns the number of stored bookings.
func (r *BookingRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM bookings`); err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return total, nil
}
