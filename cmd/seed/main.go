package main

import (
	"context"
	"log"
	"time"

	"wealthwise-chat/internal/models"
	"wealthwise-chat/internal/repository"
	"wealthwise-chat/pkg/config"
	"wealthwise-chat/pkg/logger"
	"wealthwise-chat/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Seeds demo catalog data for local development. The chat service itself
// never writes to these tables.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	courseRepo := repository.NewCourseRepository(db, appLogger)
	expertRepo := repository.NewExpertRepository(db, appLogger)
	videoRepo := repository.NewVideoRepository(db, appLogger)
	bookingRepo := repository.NewBookingRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	now := time.Now()

	experts := []*models.Expert{
		{
			ID:              uuid.New(),
			Name:            "Priya Sharma",
			Bio:             "SEBI-registered investment advisor focused on goal-based planning for salaried professionals.",
			Specialization:  []string{"Mutual Funds", "Retirement Planning"},
			ExperienceYears: 12,
			HourlyRateINR:   2500,
			IsActive:        true,
			IsVerified:      true,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              uuid.New(),
			Name:            "Arjun Mehta",
			Bio:             "Former equity research analyst teaching fundamentals of stock selection and portfolio construction.",
			Specialization:  []string{"Equity", "Stock Market"},
			ExperienceYears: 9,
			HourlyRateINR:   3000,
			IsActive:        true,
			IsVerified:      true,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
	for _, expert := range experts {
		if err := expertRepo.Create(ctx, expert); err != nil {
			appLogger.Fatal("Failed to seed expert", zap.String("name", expert.Name), zap.Error(err))
		}
	}

	courses := []*models.Course{
		{
			ID:               uuid.New(),
			Title:            "Budgeting Basics",
			Description:      "Build your first monthly budget with the 50/30/20 rule and learn to track every rupee.",
			Category:         "Budgeting",
			PriceINR:         999,
			InstructorName:   "Priya Sharma",
			LearningOutcomes: []string{"Create a monthly budget", "Track expenses", "Build an emergency fund"},
			IsActive:         true,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
		{
			ID:               uuid.New(),
			Title:            "SIP and Mutual Funds Masterclass",
			Description:      "Understand fund categories, expense ratios, and how to build a long-term SIP portfolio.",
			Category:         "Investing",
			PriceINR:         1999,
			InstructorName:   "Arjun Mehta",
			LearningOutcomes: []string{"Pick a fund category", "Start a SIP", "Review portfolio annually"},
			IsActive:         true,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
		{
			ID:               uuid.New(),
			Title:            "Tax Saving Under 80C",
			Description:      "ELSS, PPF, and insurance compared: choose the right mix for your bracket.",
			Category:         "Tax",
			PriceINR:         1499,
			InstructorName:   "Priya Sharma",
			LearningOutcomes: []string{"Compare 80C options", "Plan annual tax savings"},
			IsActive:         true,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
	}
	for _, course := range courses {
		if err := courseRepo.Create(ctx, course); err != nil {
			appLogger.Fatal("Failed to seed course", zap.String("title", course.Title), zap.Error(err))
		}
	}

	videos := []*models.Video{
		{
			ID:          uuid.New(),
			Title:       "What is an Index Fund?",
			Description: "A five-minute introduction to passive investing and why costs matter.",
			Category:    "Investing",
			YouTubeID:   "dQw4w9WgXcQ",
			PublishedAt: now.Add(-48 * time.Hour),
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			Title:       "UPI, NEFT, RTGS Explained",
			Description: "When to use each transfer method and what they cost.",
			Category:    "Banking",
			YouTubeID:   "oHg5SJYRHA0",
			PublishedAt: now.Add(-24 * time.Hour),
			CreatedAt:   now,
		},
	}
	for _, video := range videos {
		if err := videoRepo.Create(ctx, video); err != nil {
			appLogger.Fatal("Failed to seed video", zap.String("title", video.Title), zap.Error(err))
		}
	}

	// One demo booking so the user-activity context section has data.
	demoUser := uuid.New()
	booking := &models.Booking{
		ID:          uuid.New(),
		UserID:      demoUser,
		ExpertID:    experts[0].ID,
		ScheduledAt: now.Add(72 * time.Hour),
		AmountINR:   2500,
		Status:      models.BookingStatusConfirmed,
		Notes:       "Retirement planning consultation",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := bookingRepo.Create(ctx, booking); err != nil {
		appLogger.Fatal("Failed to seed booking", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!",
		zap.String("demo_user_id", demoUser.String()),
	)
}
