package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wealthwise-chat/internal/models"
	"wealthwise-chat/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

type fakeCourseSource struct {
	courses []*models.Course
	err     error
}

func (f *fakeCourseSource) ListActive(_ context.Context, _ string, _ int) ([]*models.Course, error) {
	return f.courses, f.err
}

type fakeExpertSource struct{}

func (f *fakeExpertSource) ListVerified(_ context.Context, _ int) ([]*models.Expert, error) {
	return nil, nil
}

type fakeVideoSource struct{}

func (f *fakeVideoSource) ListRecent(_ context.Context, _ string, _ int) ([]*models.Video, error) {
	return nil, nil
}

type fakeBookingSource struct{}

func (f *fakeBookingSource) ListByUser(_ context.Context, _ uuid.UUID, _ int) ([]*models.Booking, error) {
	return nil, nil
}

type stubResponder struct {
	reply string
	err   error
}

func (s *stubResponder) Respond(_ context.Context, _, _ string) (string, error) {
	return s.reply, s.err
}

func newChatApp(responder service.Responder) *fiber.App {
	logger := zap.NewNop()
	contextService := service.NewContextService(
		&fakeCourseSource{},
		&fakeExpertSource{},
		&fakeVideoSource{},
		&fakeBookingSource{},
		logger,
	)
	chatService := service.NewChatService(contextService, responder, logger)
	handler := NewChatHandler(chatService, logger)

	app := fiber.New()
	app.Post("/functions/v1/finance-chat", handler.Chat)
	return app
}

func postChat(t *testing.T, app *fiber.App, body string) (*http.Response, map[string]string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/functions/v1/finance-chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]string
	require.NoError(t, json.Unmarshal(raw, &parsed), "body: %s", raw)
	return resp, parsed
}

func TestChatHandlerMissingMessage(t *testing.T) {
	app := newChatApp(&stubResponder{reply: "should not be reached"})

	bodies := []string{
		`{}`,
		`{"message": ""}`,
		`{"message": "   "}`,
		`{"message": "\t\n"}`,
		`not even json`,
	}
	for _, body := range bodies {
		resp, parsed := postChat(t, app, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body %q", body)
		assert.Equal(t, "Message is required", parsed["error"], "body %q", body)
	}
}

func TestChatHandlerSuccess(t *testing.T) {
	app := newChatApp(service.NewTemplateResponder(zap.NewNop()))

	resp, parsed := postChat(t, app, `{"message": "How should I start a SIP?"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(parsed["response"], "📈 **Smart Investing for Indians**"))
}

func TestChatHandlerDefaultMenu(t *testing.T) {
	app := newChatApp(service.NewTemplateResponder(zap.NewNop()))

	resp, parsed := postChat(t, app, `{"message": "asdkjasdj"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, parsed["response"], "WealthWise Academy Finance Assistant")
}

func TestChatHandlerUserIDPassedThrough(t *testing.T) {
	app := newChatApp(service.NewTemplateResponder(zap.NewNop()))

	body := `{"message": "asdkjasdj", "userId": "` + uuid.NewString() + `"}`
	resp, parsed := postChat(t, app, body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, parsed["response"], "WealthWise Academy Finance Assistant")
}

func TestChatHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantError string
	}{
		{
			name:      "missing credential",
			err:       service.ErrNotConfigured,
			wantError: "OpenAI API key not configured",
		},
		{
			name:      "upstream failure",
			err:       service.ErrUpstream,
			wantError: "Failed to get response from AI",
		},
		{
			name:      "unexpected failure",
			err:       errors.New("something broke"),
			wantError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newChatApp(&stubResponder{err: tt.err})

			resp, parsed := postChat(t, app, `{"message": "hello"}`)
			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
			assert.Equal(t, tt.wantError, parsed["error"])
		})
	}
}
