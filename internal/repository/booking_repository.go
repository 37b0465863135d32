package repository

import (
	"context"

	"wealthwise-chat/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type BookingRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewBookingRepository(db *pgxpool.Pool, logger *zap.Logger) *BookingRepository {
	return &BookingRepository{
		db:     db,
		logger: logger,
	}
}

// ListByUser returns up to limit bookings for one user, newest first.
func (r *BookingRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Booking, error) {
	query := squirrel.Select("id", "user_id", "expert_id", "scheduled_at", "amount_inr", "status", "notes", "created_at", "updated_at").
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		var booking models.Booking
		if err := rows.Scan(
			&booking.ID, &booking.UserID, &booking.ExpertID, &booking.ScheduledAt, &booking.AmountINR,
			&booking.Status, &booking.Notes, &booking.CreatedAt, &booking.UpdatedAt,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, &booking)
	}

	return bookings, rows.Err()
}

// Create inserts a booking. Used by the seed tool only.
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	query := squirrel.Insert("bookings").
		Columns("id", "user_id", "expert_id", "scheduled_at", "amount_inr", "status", "notes", "created_at", "updated_at").
		Values(booking.ID, booking.UserID, booking.ExpertID, booking.ScheduledAt, booking.AmountINR, booking.Status, booking.Notes, booking.CreatedAt, booking.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
