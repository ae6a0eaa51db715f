package services

import (
	"context"
	"testing"

	"ember_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSwipeRejectsBadInput(t *testing.T) {
	// No stub functions set: any storage call panics the test.
	ss := &SwipeService{Dynamo: &stubDynamo{}}

	tests := []struct {
		name   string
		from   string
		to     string
		action string
	}{
		{"unknown action", "alice", "bob", "superlike"},
		{"empty from", "", "bob", models.SwipeActionLike},
		{"empty to", "alice", "", models.SwipeActionLike},
		{"self swipe", "alice", "alice", models.SwipeActionPass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ss.RecordSwipe(context.Background(), tt.from, tt.to, tt.action)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRecordSwipeFirstTime(t *testing.T) {
	var stored models.Swipe
	dynamo := &stubDynamo{
		getItem: func(_ context.Context, tableName string, _ map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
			return nil, notFoundErr(tableName)
		},
		putItem: func(_ context.Context, tableName string, item interface{}) error {
			require.Equal(t, models.SwipesTable, tableName)
			stored = item.(models.Swipe)
			return nil
		},
	}
	ss := &SwipeService{Dynamo: dynamo}

	alreadyRecorded, err := ss.RecordSwipe(context.Background(), "alice", "bob", models.SwipeActionLike)
	require.NoError(t, err)
	assert.False(t, alreadyRecorded)
	assert.Equal(t, "alice_bob", stored.SwipeID)
	assert.Equal(t, "alice", stored.FromUserID)
	assert.Equal(t, "bob", stored.ToUserID)
	assert.Equal(t, models.SwipeActionLike, stored.Action)
	assert.NotEmpty(t, stored.CreatedAt)
}

func TestRecordSwipeRepeatIsIdempotent(t *testing.T) {
	existing := models.Swipe{
		SwipeID:    "alice_bob",
		FromUserID: "alice",
		ToUserID:   "bob",
		Action:     models.SwipeActionLike,
	}
	puts := 0
	dynamo := &stubDynamo{
		getItem: func(_ context.Context, _ string, _ map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
			return mustItem(t, existing), nil
		},
		putItem: func(_ context.Context, _ string, _ interface{}) error {
			puts++
			return nil
		},
	}
	ss := &SwipeService{Dynamo: dynamo}

	alreadyRecorded, err := ss.RecordSwipe(context.Background(), "alice", "bob", models.SwipeActionLike)
	require.NoError(t, err)
	assert.True(t, alreadyRecorded)
	assert.Equal(t, 1, puts, "repeat swipe still overwrites the ledger entry")
}

func TestRecordSwipeChangedDecision(t *testing.T) {
	existing := models.Swipe{SwipeID: "alice_bob", Action: models.SwipeActionPass}
	var stored models.Swipe
	dynamo := &stubDynamo{
		getItem: func(_ context.Context, _ string, _ map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
			return mustItem(t, existing), nil
		},
		putItem: func(_ context.Context, _ string, item interface{}) error {
			stored = item.(models.Swipe)
			return nil
		},
	}
	ss := &SwipeService{Dynamo: dynamo}

	alreadyRecorded, err := ss.RecordSwipe(context.Background(), "alice", "bob", models.SwipeActionLike)
	require.NoError(t, err)
	assert.False(t, alreadyRecorded, "a pass changing to a like is a new decision")
	assert.Equal(t, models.SwipeActionLike, stored.Action)
}

func TestHasLiked(t *testing.T) {
	tests := []struct {
		name   string
		swipe  *models.Swipe
		expect bool
	}{
		{"no swipe on record", nil, false},
		{"recorded pass", &models.Swipe{SwipeID: "bob_alice", Action: models.SwipeActionPass}, false},
		{"recorded like", &models.Swipe{SwipeID: "bob_alice", Action: models.SwipeActionLike}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dynamo := &stubDynamo{
				getItem: func(_ context.Context, tableName string, _ map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
					if tt.swipe == nil {
						return nil, notFoundErr(tableName)
					}
					return mustItem(t, *tt.swipe), nil
				},
			}
			ss := &SwipeService{Dynamo: dynamo}

			liked, err := ss.HasLiked(context.Background(), "bob", "alice")
			require.NoError(t, err)
			assert.Equal(t, tt.expect, liked)
		})
	}
}

func TestSwipedTargets(t *testing.T) {
	swipes := []models.Swipe{
		{SwipeID: "alice_bob", FromUserID: "alice", ToUserID: "bob", Action: models.SwipeActionLike},
		{SwipeID: "alice_carol", FromUserID: "alice", ToUserID: "carol", Action: models.SwipeActionPass},
	}
	dynamo := &stubDynamo{
		queryItemsWithIndex: func(_ context.Context, tableName, indexName, _ string, _ map[string]types.AttributeValue, _ map[string]string, _ int32) ([]map[string]types.AttributeValue, error) {
			require.Equal(t, models.SwipesTable, tableName)
			require.Equal(t, models.SwipesByFromUserIndex, indexName)
			items := make([]map[string]types.AttributeValue, 0, len(swipes))
			for _, swipe := range swipes {
				items = append(items, mustItem(t, swipe))
			}
			return items, nil
		},
	}
	ss := &SwipeService{Dynamo: dynamo}

	targets, err := ss.SwipedTargets(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"bob": true, "carol": true}, targets)
}
