package repository

import (
	"context"

	"wealthwise-chat/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ExpertRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewExpertRepository(db *pgxpool.Pool, logger *zap.Logger) *ExpertRepository {
	return &ExpertRepository{
		db:     db,
		logger: logger,
	}
}

// ListVerified returns up to limit experts that are both active and verified.
func (r *ExpertRepository) ListVerified(ctx context.Context, limit int) ([]*models.Expert, error) {
	query := squirrel.Select("id", "name", "bio", "specialization", "experience_years", "hourly_rate_inr", "is_active", "is_verified", "created_at", "updated_at").
		From("experts").
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.Eq{"is_verified": true}).
		OrderBy("experience_years DESC").
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

	var experts []*models.Expert
	for rows.Next() {
		var expert models.Expert
		if err := rows.Scan(
			&expert.ID, &expert.Name, &expert.Bio, &expert.Specialization, &expert.ExperienceYears,
			&expert.HourlyRateINR, &expert.IsActive, &expert.IsVerified, &expert.CreatedAt, &expert.UpdatedAt,
		); err != nil {
			return nil, err
		}
		experts = append(experts, &expert)
	}

	return experts, rows.Err()
}

// Create inserts an expert. Used by the seed tool only.
func (r *ExpertRepository) Create(ctx context.Context, expert *models.Expert) error {
	query := squirrel.Insert("experts").
		Columns("id", "name", "bio", "specialization", "experience_years", "hourly_rate_inr", "is_active", "is_verified", "created_at", "updated_at").
		Values(expert.ID, expert.Name, expert.Bio, expert.Specialization, expert.ExperienceYears, expert.HourlyRateINR, expert.IsActive, expert.IsVerified, expert.CreatedAt, expert.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
