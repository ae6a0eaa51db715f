package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalMatchID(t *testing.T) {
	assert.Equal(t, "alice_bob", CanonicalMatchID("alice", "bob"))
	assert.Equal(t, "alice_bob", CanonicalMatchID("bob", "alice"))
	assert.Equal(t, CanonicalMatchID("u123", "u045"), CanonicalMatchID("u045", "u123"))
}

func TestMatchHasUser(t *testing.T) {
	match := Match{Users: []string{"alice", "bob"}}
	assert.True(t, match.HasUser("alice"))
	assert.True(t, match.HasUser("bob"))
	assert.False(t, match.HasUser("mallory"))
	assert.False(t, match.HasUser(""))
}

func TestMatchExpired(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt string
		expired   bool
	}{
		{"in the future", now.Add(time.Hour).Format(time.RFC3339), false},
		{"in the past", now.Add(-time.Hour).Format(time.RFC3339), true},
		{"exactly now", now.Format(time.RFC3339), false},
		{"unparseable", "not-a-timestamp", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := Match{ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.expired, match.Expired(now))
		})
	}
}

func TestSwipeID(t *testing.T) {
	// Swipe keys are directional: alice->bob and bob->alice are distinct rows.
	assert.Equal(t, "alice_bob", SwipeID("alice", "bob"))
	assert.Equal(t, "bob_alice", SwipeID("bob", "alice"))
}
