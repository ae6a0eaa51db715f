package models

import "time"

// Match is a mutually-liked pair of users, live for a bounded window.
type Match struct {
	MatchID       string   `dynamodbav:"matchId" json:"matchId"` // Partition Key: sorted pair joined with "_"
	Users         []string `dynamodbav:"users" json:"users"`     // Sorted pair of user ids
	CreatedAt     string   `dynamodbav:"createdAt" json:"createdAt"`
	ExpiresAt     string   `dynamodbav:"expiresAt" json:"expiresAt"`
	ExpiredAt     string   `dynamodbav:"expiredAt,omitempty" json:"expiredAt,omitempty"`
	MessageCount  int      `dynamodbav:"messageCount" json:"messageCount"`
	Active        bool     `dynamodbav:"active" json:"active"`
	Icebreaker    string   `dynamodbav:"icebreaker,omitempty" json:"icebreaker,omitempty"`
	LastMessage   string   `dynamodbav:"lastMessage,omitempty" json:"lastMessage,omitempty"`
	LastMessageAt string   `dynamodbav:"lastMessageAt,omitempty" json:"lastMessageAt,omitempty"`
}

// CanonicalMatchID returns the deterministic match key for a user pair.
// Both orderings of the pair map to the same key.
func CanonicalMatchID(userA, userB string) string {
	if userB < userA {
		userA, userB = userB, userA
	}
	return userA + "_" + userB
}

// HasUser reports whether the given user is one of the matched pair.
func (m *Match) HasUser(userID string) bool {
	for _, u := range m.Users {
		if u == userID {
			return true
		}
	}
	return false
}

// Expired reports whether the match passed its expiry time, regardless of
// the Active flag.
func (m *Match) Expired(now time.Time) bool {
	expiresAt, err := time.Parse(time.RFC3339, m.ExpiresAt)
	if err != nil {
		return false
	}
	return now.After(expiresAt)
}

// MatchesTable is the DynamoDB table name for matches
const MatchesTable = "Matches"
