package service

import "strings"

// MatchTopic scores the message against the knowledge base and returns the
// best topic together with its keyword hit count. Matching is
// case-insensitive substring containment. A later topic replaces the current
// best only on a strictly greater count, so equal scores keep the earlier
// topic. A zero count means no topic matched and the returned topic is nil.
func MatchTopic(message string) (*Topic, int) {
	lower := strings.ToLower(message)

	var best *Topic
	maxMatches := 0

	for i := range financeTopics {
		matches := 0
		for _, keyword := range financeTopics[i].Keywords {
			if strings.Contains(lower, keyword) {
				matches++
			}
		}
		if matches > maxMatches {
			maxMatches = matches
			best = &financeTopics[i]
		}
	}

	return best, maxMatches
}
