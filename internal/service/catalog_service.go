package service

import (
	"context"
	"fmt"
	"time"

	"wealthwise-chat/internal/dto"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Listing bounds for the public catalog endpoints.
const (
	maxListCourses  = 50
	maxListExperts  = 20
	maxListVideos   = 50
	maxListBookings = 20
)

// CatalogService exposes the platform's read-only catalog views. It shares
// the repositories the context builder reads from.
type CatalogService struct {
	courses  CourseSource
	experts  ExpertSource
	videos   VideoSource
	bookings BookingSource
	logger   *zap.Logger
}

func NewCatalogService(
	courses CourseSource,
	experts ExpertSource,
	videos VideoSource,
	bookings BookingSource,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		courses:  courses,
		experts:  experts,
		videos:   videos,
		bookings: bookings,
		logger:   logger,
	}
}

func (s *CatalogService) ListCourses(ctx context.Context, category string) ([]dto.CourseResponse, error) {
	courses, err := s.courses.ListActive(ctx, category, maxListCourses)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	result := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		result = append(result, dto.CourseResponse{
			ID:               course.ID.String(),
			Title:            course.Title,
			Description:      course.Description,
			Category:         course.Category,
			PriceINR:         course.PriceINR,
			InstructorName:   course.InstructorName,
			LearningOutcomes: course.LearningOutcomes,
		})
	}
	return result, nil
}

func (s *CatalogService) ListExperts(ctx context.Context) ([]dto.ExpertResponse, error) {
	experts, err := s.experts.ListVerified(ctx, maxListExperts)
	if err != nil {
		return nil, fmt.Errorf("failed to list experts: %w", err)
	}

	result := make([]dto.ExpertResponse, 0, len(experts))
	for _, expert := range experts {
		result = append(result, dto.ExpertResponse{
			ID:              expert.ID.String(),
			Name:            expert.Name,
			Bio:             expert.Bio,
			Specialization:  expert.Specialization,
			ExperienceYears: expert.ExperienceYears,
			HourlyRateINR:   expert.HourlyRateINR,
		})
	}
	return result, nil
}

func (s *CatalogService) ListVideos(ctx context.Context, category string) ([]dto.VideoResponse, error) {
	videos, err := s.videos.ListRecent(ctx, category, maxListVideos)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}

	result := make([]dto.VideoResponse, 0, len(videos))
	for _, video := range videos {
		result = append(result, dto.VideoResponse{
			ID:          video.ID.String(),
			Title:       video.Title,
			Description: video.Description,
			Category:    video.Category,
			YouTubeID:   video.YouTubeID,
			PublishedAt: video.PublishedAt.Format(time.RFC3339),
		})
	}
	return result, nil
}

func (s *CatalogService) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]dto.BookingResponse, error) {
	bookings, err := s.bookings.ListByUser(ctx, userID, maxListBookings)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	result := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, dto.BookingResponse{
			ID:          booking.ID.String(),
			ExpertID:    booking.ExpertID.String(),
			ScheduledAt: booking.ScheduledAt.Format(time.RFC3339),
			AmountINR:   booking.AmountINR,
			Status:      string(booking.Status),
			Notes:       booking.Notes,
		})
	}
	return result, nil
}
