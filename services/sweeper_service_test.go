package services

import (
	"context"
	"testing"
	"time"

	"ember_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type conditionalUpdate struct {
	matchID   string
	update    string
	condition string
	values    map[string]types.AttributeValue
}

func TestSweepExpiresOnlySilentMatches(t *testing.T) {
	now := time.Now().UTC()
	matches := []models.Match{
		{
			MatchID:   "alice_bob",
			Users:     []string{"alice", "bob"},
			ExpiresAt: now.Add(-time.Hour).Format(time.RFC3339),
			Active:    true,
		},
		{
			MatchID:      "carol_dave",
			Users:        []string{"carol", "dave"},
			ExpiresAt:    now.Add(-time.Hour).Format(time.RFC3339),
			MessageCount: 3,
			Active:       true,
		},
		{
			MatchID:   "erin_frank",
			Users:     []string{"erin", "frank"},
			ExpiresAt: now.Add(time.Hour).Format(time.RFC3339),
			Active:    true,
		},
	}

	var updates []conditionalUpdate
	dynamo := &stubDynamo{
		scanItems: func(_ context.Context, tableName, _ string, _ map[string]types.AttributeValue, _ map[string]string) ([]map[string]types.AttributeValue, error) {
			require.Equal(t, models.MatchesTable, tableName)
			items := make([]map[string]types.AttributeValue, 0, len(matches))
			for _, match := range matches {
				items = append(items, mustItem(t, match))
			}
			return items, nil
		},
		updateItemWithCondition: func(_ context.Context, tableName, updateExpression, conditionExpression string, key, values map[string]types.AttributeValue, _ map[string]string) error {
			require.Equal(t, models.MatchesTable, tableName)
			updates = append(updates, conditionalUpdate{
				matchID:   stringKey(key, "matchId"),
				update:    updateExpression,
				condition: conditionExpression,
				values:    values,
			})
			return nil
		},
	}
	sw := &SweeperService{Dynamo: dynamo}

	expired, err := sw.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, expired)
	require.Len(t, updates, 1)

	flip := updates[0]
	assert.Equal(t, "alice_bob", flip.matchID)
	assert.Equal(t, "SET active = :inactive, expiredAt = :expiredAt", flip.update)
	assert.Equal(t, "messageCount = :zero", flip.condition)

	inactive := flip.values[":inactive"].(*types.AttributeValueMemberBOOL)
	assert.False(t, inactive.Value)
	expiredAt, err := time.Parse(time.RFC3339, flip.values[":expiredAt"].(*types.AttributeValueMemberS).Value)
	require.NoError(t, err)
	assert.WithinDuration(t, now, expiredAt, 5*time.Second)
}

func TestSweepLosesRaceToFirstMessage(t *testing.T) {
	// A first message lands between the scan and the write: the conditional
	// update fails, the match stays active, and nothing else is touched.
	now := time.Now().UTC()
	silent := models.Match{
		MatchID:   "alice_bob",
		Users:     []string{"alice", "bob"},
		ExpiresAt: now.Add(-time.Hour).Format(time.RFC3339),
		Active:    true,
	}

	dynamo := &stubDynamo{
		scanItems: func(_ context.Context, _, _ string, _ map[string]types.AttributeValue, _ map[string]string) ([]map[string]types.AttributeValue, error) {
			return []map[string]types.AttributeValue{mustItem(t, silent)}, nil
		},
		updateItemWithCondition: func(_ context.Context, tableName, _, conditionExpression string, _, _ map[string]types.AttributeValue, _ map[string]string) error {
			require.Equal(t, "messageCount = :zero", conditionExpression)
			return conflictErr(tableName)
		},
	}
	sw := &SweeperService{Dynamo: dynamo}

	expired, err := sw.Sweep(context.Background())
	require.NoError(t, err, "a lost race is not a sweep failure")
	assert.Zero(t, expired)
}

func TestSweepNothingToExpire(t *testing.T) {
	now := time.Now().UTC()
	matches := []models.Match{
		{
			MatchID:   "alice_bob",
			Users:     []string{"alice", "bob"},
			ExpiresAt: now.Add(12 * time.Hour).Format(time.RFC3339),
			Active:    true,
		},
	}

	// updateItemWithCondition left unset: writing anything panics the test.
	dynamo := &stubDynamo{
		scanItems: func(_ context.Context, _, _ string, _ map[string]types.AttributeValue, _ map[string]string) ([]map[string]types.AttributeValue, error) {
			return []map[string]types.AttributeValue{mustItem(t, matches[0])}, nil
		},
	}
	sw := &SweeperService{Dynamo: dynamo}

	expired, err := sw.Sweep(context.Background())
	require.NoError(t, err)
	assert.Zero(t, expired)
}

func TestSweepIsIdempotent(t *testing.T) {
	// A match the sweeper already flipped no longer passes the active filter,
	// so a second pass sees an empty scan and writes nothing.
	scans := 0
	dynamo := &stubDynamo{
		scanItems: func(_ context.Context, _, _ string, _ map[string]types.AttributeValue, _ map[string]string) ([]map[string]types.AttributeValue, error) {
			scans++
			return nil, nil
		},
	}
	sw := &SweeperService{Dynamo: dynamo}

	for i := 0; i < 2; i++ {
		expired, err := sw.Sweep(context.Background())
		require.NoError(t, err)
		assert.Zero(t, expired)
	}
	assert.Equal(t, 2, scans)
}
