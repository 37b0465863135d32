package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func TestTemplateResponderMatchedTopic(t *testing.T) {
	responder := NewTemplateResponder(zap.NewNop())

	reply, err := responder.Respond(context.Background(), "How should I start a SIP?", "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(reply, "📈 **Smart Investing for Indians**"),
		"investing reply should start with the investing header, got: %.60q", reply)
}

func TestTemplateResponderDefaultMenu(t *testing.T) {
	responder := NewTemplateResponder(zap.NewNop())

	reply, err := responder.Respond(context.Background(), "asdkjasdj", "")
	require.NoError(t, err)
	assert.Contains(t, reply, "WealthWise Academy Finance Assistant")
	assert.Contains(t, reply, "What specific area would you like to explore?")
}

func TestTemplateResponderTotality(t *testing.T) {
	responder := NewTemplateResponder(zap.NewNop())

	messages := []string{
		"a",
		"budget",
		"completely unrelated text with no finance words",
		"🤔",
		strings.Repeat("invest ", 100),
	}
	for _, message := range messages {
		reply, err := responder.Respond(context.Background(), message, "")
		require.NoError(t, err, "message %q", message)
		assert.NotEmpty(t, reply, "message %q", message)
	}
}

func TestTemplateResponderContextConditionedFragments(t *testing.T) {
	responder := NewTemplateResponder(zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name         string
		message      string
		contextBlock string
		wantFragment string
		wantPresent  bool
	}{
		{
			name:         "budgeting hint with course section",
			message:      "help me budget",
			contextBlock: sectionCourses + ":\n- Budgeting Basics",
			wantFragment: "Check our budgeting courses",
			wantPresent:  true,
		},
		{
			name:         "budgeting hint without course section",
			message:      "help me budget",
			contextBlock: "nothing relevant",
			wantFragment: "Check our budgeting courses",
			wantPresent:  false,
		},
		{
			name:         "expert hint with expert section",
			message:      "where to invest",
			contextBlock: sectionExperts + ":\n- Specialization: Equity",
			wantFragment: "Book a session with our certified experts",
			wantPresent:  true,
		},
		{
			name:         "menu resources blurb with course section",
			message:      "zzzz",
			contextBlock: sectionCourses + ":\n- Budgeting Basics",
			wantFragment: "Available Resources",
			wantPresent:  true,
		},
		{
			name:         "menu resources blurb without course section",
			message:      "zzzz",
			contextBlock: "nothing relevant",
			wantFragment: "Available Resources",
			wantPresent:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := responder.Respond(ctx, tt.message, tt.contextBlock)
			require.NoError(t, err)
			if tt.wantPresent {
				assert.Contains(t, reply, tt.wantFragment)
			} else {
				assert.NotContains(t, reply, tt.wantFragment)
			}
		})
	}
}

func TestDefaultMenuResponseStable(t *testing.T) {
	// Aside from the context-conditioned resources blurb, the menu is fixed.
	withCourses := defaultMenuResponse(sectionCourses + ": data")
	without := defaultMenuResponse("")

	stripped := strings.ReplaceAll(withCourses,
		"\n\n📚 **Available Resources:**\nWe have expert courses and certified financial advisors to help you build wealth systematically.", "")
	assert.Equal(t, without, stripped)
}
