package repository

import (
	"context"

	"wealthwise-chat/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type CourseRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCourseRepository(db *pgxpool.Pool, logger *zap.Logger) *CourseRepository {
	return &CourseRepository{
		db:     db,
		logger: logger,
	}
}

// ListActive returns up to limit active courses, optionally filtered by category.
func (r *CourseRepository) ListActive(ctx context.Context, category string, limit int) ([]*models.Course, error) {
	query := squirrel.Select("id", "title", "description", "category", "price_inr", "instructor_name", "learning_outcomes", "is_active", "created_at", "updated_at").
		From("courses").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if category != "" {
		query = query.Where(squirrel.Eq{"category": category})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID, &course.Title, &course.Description, &course.Category, &course.PriceINR,
			&course.InstructorName, &course.LearningOutcomes, &course.IsActive, &course.CreatedAt, &course.UpdatedAt,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	return courses, rows.Err()
}

// Create inserts a course. Used by the seed tool only.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := squirrel.Insert("courses").
		Columns("id", "title", "description", "category", "price_inr", "instructor_name", "learning_outcomes", "is_active", "created_at", "updated_at").
		Values(course.ID, course.Title, course.Description, course.Category, course.PriceINR, course.InstructorName, course.LearningOutcomes, course.IsActive, course.CreatedAt, course.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
