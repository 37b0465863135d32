package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"wealthwise-chat/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sample bounds for the context block. The block grounds a single chat reply,
// it is a snapshot, not a full export.
const (
	maxContextCourses  = 10
	maxContextExperts  = 5
	maxContextVideos   = 10
	maxContextBookings = 5
)

// Section fallbacks used when an individual read fails or returns nothing.
const (
	coursesFallback = "Educational courses available on the platform"
	expertsFallback = "Certified financial experts available for consultation"
	videosFallback  = "Educational videos covering various financial topics"
)

// Returned when every read fails. The responder always gets a usable block.
const totalFallbackContext = `Financial education platform with courses, expert consultations, and market insights available.
Current market showing positive trends with gold around ₹62,500/10g and active trading in Indian markets.`

type CourseSource interface {
	ListActive(ctx context.Context, category string, limit int) ([]*models.Course, error)
}

type ExpertSource interface {
	ListVerified(ctx context.Context, limit int) ([]*models.Expert, error)
}

type VideoSource interface {
	ListRecent(ctx context.Context, category string, limit int) ([]*models.Video, error)
}

type BookingSource interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Booking, error)
}

// ContextService assembles the bounded platform snapshot that grounds each
// chat reply. It is strictly read-only.
type ContextService struct {
	courses  CourseSource
	experts  ExpertSource
	videos   VideoSource
	bookings BookingSource
	logger   *zap.Logger
}

func NewContextService(
	courses CourseSource,
	experts ExpertSource,
	videos VideoSource,
	bookings BookingSource,
	logger *zap.Logger,
) *ContextService {
	return &ContextService{
		courses:  courses,
		experts:  experts,
		videos:   videos,
		bookings: bookings,
		logger:   logger,
	}
}

// BuildContext renders the context block for one request. The underlying reads
// are independent and run concurrently; a failed read degrades to its
// section's fallback sentence instead of aborting the assembly. The result is
// never empty: if every read fails, a hard-coded fallback paragraph is
// returned. Bookings are only fetched when a user id is supplied.
func (s *ContextService) BuildContext(ctx context.Context, userID *uuid.UUID) string {
	var (
		wg       sync.WaitGroup
		courses  []*models.Course
		experts  []*models.Expert
		videos   []*models.Video
		bookings []*models.Booking

		coursesErr, expertsErr, videosErr, bookingsErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		courses, coursesErr = s.courses.ListActive(ctx, "", maxContextCourses)
		if coursesErr != nil {
			s.logger.Warn("Failed to fetch courses for context", zap.Error(coursesErr))
		}
	}()
	go func() {
		defer wg.Done()
		experts, expertsErr = s.experts.ListVerified(ctx, maxContextExperts)
		if expertsErr != nil {
			s.logger.Warn("Failed to fetch experts for context", zap.Error(expertsErr))
		}
	}()
	go func() {
		defer wg.Done()
		videos, videosErr = s.videos.ListRecent(ctx, "", maxContextVideos)
		if videosErr != nil {
			s.logger.Warn("Failed to fetch videos for context", zap.Error(videosErr))
		}
	}()

	if userID != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bookings, bookingsErr = s.bookings.ListByUser(ctx, *userID, maxContextBookings)
			if bookingsErr != nil {
				s.logger.Warn("Failed to fetch bookings for context",
					zap.String("user_id", userID.String()),
					zap.Error(bookingsErr),
				)
			}
		}()
	}

	wg.Wait()

	// Total backend failure still has to produce a usable context block.
	if coursesErr != nil && expertsErr != nil && videosErr != nil &&
		(userID == nil || bookingsErr != nil) {
		s.logger.Error("All context reads failed, using fallback context")
		return totalFallbackContext
	}

	var builder strings.Builder

	builder.WriteString(sectionCourses + ":\n")
	builder.WriteString(renderCourses(courses))

	builder.WriteString("\n\n" + sectionExperts + ":\n")
	builder.WriteString(renderExperts(experts))

	builder.WriteString("\n\n" + sectionVideos + ":\n")
	builder.WriteString(renderVideos(videos))

	if userID != nil && len(bookings) > 0 {
		builder.WriteString("\n\n" + sectionActivity + ":\n")
		builder.WriteString(renderBookings(bookings))
	}

	builder.WriteString("\n\n" + sectionMarket + ":\n")
	builder.WriteString(`- Nifty 50: Current trend showing positive momentum in Indian markets
- Sensex: Trading in positive territory with good fundamentals
- Gold: ₹62,500 per 10g (approximate current rate)
- Silver: ₹74,200 per kg (approximate current rate)`)

	builder.WriteString("\n\nNote: This platform offers comprehensive financial education through courses, expert consultations, and educational content.")

	return builder.String()
}

func renderCourses(courses []*models.Course) string {
	if len(courses) == 0 {
		return coursesFallback
	}

	lines := make([]string, 0, len(courses))
	for _, course := range courses {
		category := course.Category
		if category == "" {
			category = "General"
		}
		description := course.Description
		if description == "" {
			description = "Financial course"
		}
		instructor := course.InstructorName
		if instructor == "" {
			instructor = "Expert"
		}
		lines = append(lines, fmt.Sprintf("- %s (%s): %s... Price: ₹%.0f by %s",
			course.Title, category, truncate(description, 100), course.PriceINR, instructor))
	}
	return strings.Join(lines, "\n")
}

func renderExperts(experts []*models.Expert) string {
	if len(experts) == 0 {
		return expertsFallback
	}

	lines := make([]string, 0, len(experts))
	for _, expert := range experts {
		specialization := strings.Join(expert.Specialization, ", ")
		if specialization == "" {
			specialization = "Financial Planning"
		}
		lines = append(lines, fmt.Sprintf("- Specialization: %s, Experience: %d years, Rate: ₹%.0f/hour",
			specialization, expert.ExperienceYears, expert.HourlyRateINR))
	}
	return strings.Join(lines, "\n")
}

func renderVideos(videos []*models.Video) string {
	if len(videos) == 0 {
		return videosFallback
	}

	lines := make([]string, 0, len(videos))
	for _, video := range videos {
		category := video.Category
		if category == "" {
			category = "Finance"
		}
		description := video.Description
		if description == "" {
			description = "Educational content"
		}
		lines = append(lines, fmt.Sprintf("- %s (%s): %s...",
			video.Title, category, truncate(description, 80)))
	}
	return strings.Join(lines, "\n")
}

func renderBookings(bookings []*models.Booking) string {
	lines := make([]string, 0, len(bookings))
	for _, booking := range bookings {
		lines = append(lines, fmt.Sprintf("- Session: ₹%.0f, Status: %s, Scheduled: %s",
			booking.AmountINR, booking.Status, booking.ScheduledAt.Format("02/01/2006")))
	}
	return strings.Join(lines, "\n")
}

// truncate cuts s to at most n runes without splitting a multi-byte character.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
