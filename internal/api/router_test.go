package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wealthwise-chat/internal/api/handlers"
	"wealthwise-chat/internal/models"
	"wealthwise-chat/internal/service"
	"wealthwise-chat/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

type staticSources struct {
	bookings []*models.Booking
}

func (s *staticSources) ListActive(_ context.Context, _ string, _ int) ([]*models.Course, error) {
	return []*models.Course{{
		ID:             uuid.New(),
		Title:          "Budgeting Basics",
		Category:       "Budgeting",
		PriceINR:       999,
		InstructorName: "Priya Sharma",
		IsActive:       true,
	}}, nil
}

func (s *staticSources) ListVerified(_ context.Context, _ int) ([]*models.Expert, error) {
	return nil, nil
}

func (s *staticSources) ListRecent(_ context.Context, _ string, _ int) ([]*models.Video, error) {
	return nil, nil
}

func (s *staticSources) ListByUser(_ context.Context, _ uuid.UUID, _ int) ([]*models.Booking, error) {
	return s.bookings, nil
}

func newTestApp(t *testing.T, sources *staticSources, jwtManager *auth.JWTManager) *fiber.App {
	t.Helper()
	logger := zap.NewNop()

	contextService := service.NewContextService(sources, sources, sources, sources, logger)
	catalogService := service.NewCatalogService(sources, sources, sources, sources, logger)
	chatService := service.NewChatService(contextService, service.NewTemplateResponder(logger), logger)

	return SetupRouter(
		handlers.NewChatHandler(chatService, logger),
		handlers.NewCatalogHandler(catalogService, logger),
		handlers.NewBookingHandler(catalogService, logger),
		handlers.NewHealthHandler(nil, logger),
		jwtManager,
		logger,
	)
}

func TestRouterCORSPreflight(t *testing.T) {
	app := newTestApp(t, &staticSources{}, auth.NewJWTManager("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodOptions, "/functions/v1/finance-chat", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "authorization, x-client-info, apikey, content-type")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	allowHeaders := strings.ToLower(resp.Header.Get("Access-Control-Allow-Headers"))
	for _, header := range []string{"authorization", "x-client-info", "apikey", "content-type"} {
		assert.Contains(t, allowHeaders, header)
	}
}

func TestRouterChatEndpoint(t *testing.T) {
	app := newTestApp(t, &staticSources{}, auth.NewJWTManager("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodPost, "/functions/v1/finance-chat", strings.NewReader(`{"message": "budget"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRouterCatalogEndpoints(t *testing.T) {
	app := newTestApp(t, &staticSources{}, auth.NewJWTManager("test-secret", time.Hour))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var courses []map[string]any
	require.NoError(t, json.Unmarshal(raw, &courses))
	require.Len(t, courses, 1)
	assert.Equal(t, "Budgeting Basics", courses[0]["title"])
}

func TestRouterBookingsRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	userID := uuid.New()
	sources := &staticSources{bookings: []*models.Booking{{
		ID:          uuid.New(),
		UserID:      userID,
		ExpertID:    uuid.New(),
		ScheduledAt: time.Now().Add(24 * time.Hour),
		AmountINR:   2500,
		Status:      models.BookingStatusConfirmed,
	}}}
	app := newTestApp(t, sources, jwtManager)

	// No token.
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Garbage token.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Valid token.
	token, err := jwtManager.GenerateToken(userID, "user@example.com")
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var bookings []map[string]any
	require.NoError(t, json.Unmarshal(raw, &bookings))
	require.Len(t, bookings, 1)
	assert.Equal(t, "confirmed", bookings[0]["status"])
}
