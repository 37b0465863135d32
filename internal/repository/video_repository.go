package repository

import (
	"context"

	"wealthwise-chat/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type VideoRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewVideoRepository(db *pgxpool.Pool, logger *zap.Logger) *VideoRepository {
	return &VideoRepository{
		db:     db,
		logger: logger,
	}
}

// ListRecent returns up to limit videos, most recently published first,
// optionally filtered by category.
func (r *VideoRepository) ListRecent(ctx context.Context, category string, limit int) ([]*models.Video, error) {
	query := squirrel.Select("id", "title", "description", "category", "youtube_id", "published_at", "created_at").
		From("videos").
		OrderBy("published_at DESC").
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

	var videos []*models.Video
	for rows.Next() {
		var video models.Video
		if err := rows.Scan(
			&video.ID, &video.Title, &video.Description, &video.Category, &video.YouTubeID,
			&video.PublishedAt, &video.CreatedAt,
		); err != nil {
			return nil, err
		}
		videos = append(videos, &video)
	}

	return videos, rows.Err()
}

// Create inserts a video. Used by the seed tool only.
func (r *VideoRepository) Create(ctx context.Context, video *models.Video) error {
	query := squirrel.Insert("videos").
		Columns("id", "title", "description", "category", "youtube_id", "published_at", "created_at").
		Values(video.ID, video.Title, video.Description, video.Category, video.YouTubeID, video.PublishedAt, video.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
