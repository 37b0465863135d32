package service

import (
	"context"
	"errors"
	"testing"

	"wealthwise-chat/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

type stubResponder struct {
	reply string
	err   error
}

func (s *stubResponder) Respond(_ context.Context, _, _ string) (string, error) {
	return s.reply, s.err
}

func newTestChatService(bookings *fakeBookingSource, responder Responder) *ChatService {
	contextService := NewContextService(
		&fakeCourseSource{courses: []*models.Course{sampleCourse()}},
		&fakeExpertSource{},
		&fakeVideoSource{},
		bookings,
		zap.NewNop(),
	)
	return NewChatService(contextService, responder, zap.NewNop())
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	svc := newTestChatService(&fakeBookingSource{}, &stubResponder{reply: "ok"})

	for _, message := range []string{"", "   ", "\n\t "} {
		_, err := svc.Chat(context.Background(), message, "")
		assert.ErrorIs(t, err, ErrMessageRequired, "message %q", message)
	}
}

func TestChatMalformedUserIDIsTolerated(t *testing.T) {
	bookings := &fakeBookingSource{}
	svc := newTestChatService(bookings, &stubResponder{reply: "ok"})

	reply, err := svc.Chat(context.Background(), "budget help", "not-a-uuid")
	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
	assert.False(t, bookings.called, "malformed user id must not trigger a booking read")
}

func TestChatValidUserIDFetchesBookings(t *testing.T) {
	bookings := &fakeBookingSource{}
	svc := newTestChatService(bookings, &stubResponder{reply: "ok"})

	_, err := svc.Chat(context.Background(), "budget help", uuid.NewString())
	require.NoError(t, err)
	assert.True(t, bookings.called)
}

func TestChatPropagatesResponderError(t *testing.T) {
	upstream := errors.New("boom")
	svc := newTestChatService(&fakeBookingSource{}, &stubResponder{err: upstream})

	_, err := svc.Chat(context.Background(), "budget help", "")
	assert.ErrorIs(t, err, upstream)
}

func TestChatEndToEndTemplateStrategy(t *testing.T) {
	svc := newTestChatService(&fakeBookingSource{}, NewTemplateResponder(zap.NewNop()))

	// Course data is present, so the budgeting reply carries the course hint.
	reply, err := svc.Chat(context.Background(), "help me with budgeting", "")
	require.NoError(t, err)
	assert.Contains(t, reply, "Budgeting Fundamentals")
	assert.Contains(t, reply, "Check our budgeting courses")
}
