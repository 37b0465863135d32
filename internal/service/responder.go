package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrMessageRequired is returned when the incoming message is empty after
	// trimming.
	ErrMessageRequired = errors.New("message is required")
	// ErrNotConfigured is returned by the completion responder when no API key
	// is configured. No request can succeed in that state.
	ErrNotConfigured = errors.New("completion API key not configured")
	// ErrUpstream is returned when the completion service answers with a
	// non-success status.
	ErrUpstream = errors.New("completion request failed")
)

// Responder produces the final reply for a validated message. Exactly one
// implementation is active per deployment, selected from configuration.
type Responder interface {
	Respond(ctx context.Context, message, contextBlock string) (string, error)
}

// TemplateResponder answers from the canned knowledge base. It never fails
// for a non-empty message and needs no network access.
type TemplateResponder struct {
	logger *zap.Logger
}

func NewTemplateResponder(logger *zap.Logger) *TemplateResponder {
	return &TemplateResponder{logger: logger}
}

func (r *TemplateResponder) Respond(_ context.Context, message, contextBlock string) (string, error) {
	topic, matches := MatchTopic(message)
	if topic != nil && matches > 0 {
		r.logger.Debug("Topic matched",
			zap.String("topic", topic.ID),
			zap.Int("keyword_hits", matches),
		)
		return topic.Render(contextBlock), nil
	}

	r.logger.Debug("No topic matched, using default menu response")
	return defaultMenuResponse(contextBlock), nil
}
