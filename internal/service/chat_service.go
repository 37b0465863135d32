package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatService is the top-level request pipeline: validate the message, build
// the context block, then produce the reply through the configured responder.
// Each invocation is stateless.
type ChatService struct {
	contextService *ContextService
	responder      Responder
	logger         *zap.Logger
}

func NewChatService(contextService *ContextService, responder Responder, logger *zap.Logger) *ChatService {
	return &ChatService{
		contextService: contextService,
		responder:      responder,
		logger:         logger,
	}
}

// Chat handles one message. An empty or whitespace-only message yields
// ErrMessageRequired. A malformed user id is tolerated: the context block is
// built without the user's bookings, matching what an anonymous request gets.
func (s *ChatService) Chat(ctx context.Context, message, userID string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrMessageRequired
	}

	var user *uuid.UUID
	if userID != "" {
		parsed, err := uuid.Parse(userID)
		if err != nil {
			s.logger.Warn("Ignoring malformed user id", zap.String("user_id", userID))
		} else {
			user = &parsed
		}
	}

	contextBlock := s.contextService.BuildContext(ctx, user)

	reply, err := s.responder.Respond(ctx, message, contextBlock)
	if err != nil {
		return "", err
	}

	return reply, nil
}
