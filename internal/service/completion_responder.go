package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"wealthwise-chat/pkg/config"

	"go.uber.org/zap"
)

// CompletionResponder forwards the conversation to an OpenAI-compatible
// chat-completions endpoint and returns the generated text verbatim. At most
// one outbound call is made per request and a failed call is never retried.
type CompletionResponder struct {
	config     *config.OpenAIConfig
	httpClient *http.Client
	logger     *zap.Logger
}

func NewCompletionResponder(cfg *config.OpenAIConfig, logger *zap.Logger) *CompletionResponder {
	if cfg.APIKey == "" {
		logger.Error("OpenAI API key is not configured, completion requests will fail")
	}

	return &CompletionResponder{
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string              `json:"model"`
	Messages    []completionMessage `json:"messages"`
	MaxTokens   int                 `json:"max_tokens"`
	Temperature float64             `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (r *CompletionResponder) Respond(ctx context.Context, message, contextBlock string) (string, error) {
	if r.config.APIKey == "" {
		return "", ErrNotConfigured
	}

	payload := completionRequest{
		Model: r.config.Model,
		Messages: []completionMessage{
			{Role: "system", Content: buildSystemPrompt(contextBlock)},
			{Role: "user", Content: message},
		},
		MaxTokens:   r.config.MaxTokens,
		Temperature: r.config.Temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.config.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.config.APIKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.logger.Error("Completion request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		// Upstream detail is logged for diagnosis but never forwarded to the
		// caller.
		r.logger.Error("Completion request returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(respBody)),
		)
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("%w: invalid response body: %v", ErrUpstream, err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrUpstream)
	}

	return completion.Choices[0].Message.Content, nil
}

// buildSystemPrompt renders the finance-educator instruction embedding the
// platform context block.
func buildSystemPrompt(contextBlock string) string {
	return fmt.Sprintf(`You are a knowledgeable finance educator for WealthWise Academy, a financial education platform. Your role is to teach personal finance concepts clearly and help users make informed decisions.

PLATFORM CONTEXT:
%s

GUIDELINES:
- Ground your advice in the platform data above when relevant
- Explain concepts simply, avoid unexplained jargon
- Cover budgeting, investing, saving, debt management, and financial planning
- Recommend approaches but never guarantee outcomes or returns
- Always end with a reminder that this is educational content, not licensed financial advice
- Keep replies to roughly 2-4 paragraphs unless the user asks for more detail`, contextBlock)
}
