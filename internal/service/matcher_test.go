package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchTopic(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		wantTopic   string // empty means no match expected
		wantMatches int
	}{
		{
			name:        "single budgeting keyword",
			message:     "how do I make a budget?",
			wantTopic:   "budgeting",
			wantMatches: 1,
		},
		{
			name:        "sip matches investing before mutualfunds on tie",
			message:     "How should I start a SIP?",
			wantTopic:   "investing",
			wantMatches: 1,
		},
		{
			name:        "higher keyword count wins",
			message:     "what is the nav of a mutual fund sip",
			wantTopic:   "mutualfunds",
			wantMatches: 3,
		},
		{
			name:        "tie keeps earlier topic in table order",
			message:     "budget for the market",
			wantTopic:   "budgeting",
			wantMatches: 1,
		},
		{
			name:        "case insensitive",
			message:     "Tell me about BITCOIN",
			wantTopic:   "crypto",
			wantMatches: 1,
		},
		{
			name:        "keyword inside larger word still matches as substring",
			message:     "thinking about reinvestment",
			wantTopic:   "investing",
			wantMatches: 2, // "invest" and "investment"
		},
		{
			name:    "gibberish matches nothing",
			message: "asdkjasdj",
		},
		{
			name:    "unrelated sentence matches nothing",
			message: "what's the weather like today",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, matches := MatchTopic(tt.message)

			if tt.wantTopic == "" {
				assert.Nil(t, topic)
				assert.Zero(t, matches)
				return
			}

			require.NotNil(t, topic)
			assert.Equal(t, tt.wantTopic, topic.ID)
			assert.Equal(t, tt.wantMatches, matches)
		})
	}
}

func TestMatchTopicDeterministic(t *testing.T) {
	// Same input always selects the same topic.
	first, firstCount := MatchTopic("gold and silver rates")
	for i := 0; i < 10; i++ {
		topic, matches := MatchTopic("gold and silver rates")
		require.NotNil(t, topic)
		assert.Equal(t, first.ID, topic.ID)
		assert.Equal(t, firstCount, matches)
	}
}

func TestTopicsTableShape(t *testing.T) {
	topics := Topics()
	require.NotEmpty(t, topics)

	seen := make(map[string]bool)
	for _, topic := range topics {
		assert.NotEmpty(t, topic.ID)
		assert.NotEmpty(t, topic.Keywords)
		require.NotNil(t, topic.Render)
		assert.NotEmpty(t, topic.Render(""))
		assert.False(t, seen[topic.ID], "duplicate topic id %s", topic.ID)
		seen[topic.ID] = true

		for _, keyword := range topic.Keywords {
			assert.Equal(t, strings.ToLower(keyword), keyword,
				"keyword %q of topic %s must be lower case", keyword, topic.ID)
		}
	}
}
