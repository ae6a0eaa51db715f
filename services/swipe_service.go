package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ember_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// SwipeService is the append-only ledger of directional like/pass decisions,
// keyed by ordered user pair.
type SwipeService struct {
	Dynamo DynamoAPI
}

// RecordSwipe stores the decision from -> to, overwriting any earlier swipe
// for the same ordered pair. Returns whether an identical decision was
// already on record.
func (ss *SwipeService) RecordSwipe(ctx context.Context, fromUserID, toUserID, action string) (bool, error) {
	if action != models.SwipeActionLike && action != models.SwipeActionPass {
		return false, fmt.Errorf("unknown swipe action %q: %w", action, ErrInvalidInput)
	}
	if fromUserID == "" || toUserID == "" || fromUserID == toUserID {
		return false, fmt.Errorf("invalid swipe pair (%q, %q): %w", fromUserID, toUserID, ErrInvalidInput)
	}

	alreadyRecorded := false
	if existing, err := ss.GetSwipe(ctx, fromUserID, toUserID); err == nil && existing.Action == action {
		alreadyRecorded = true
	}

	swipe := models.Swipe{
		SwipeID:    models.SwipeID(fromUserID, toUserID),
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Action:     action,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if err := ss.Dynamo.PutItem(ctx, models.SwipesTable, swipe); err != nil {
		return false, fmt.Errorf("failed to record swipe: %w", err)
	}

	return alreadyRecorded, nil
}

// GetSwipe fetches the decision for an ordered pair, if any.
func (ss *SwipeService) GetSwipe(ctx context.Context, fromUserID, toUserID string) (*models.Swipe, error) {
	key := map[string]types.AttributeValue{
		"swipeId": &types.AttributeValueMemberS{Value: models.SwipeID(fromUserID, toUserID)},
	}
	item, err := ss.Dynamo.GetItem(ctx, models.SwipesTable, key)
	if err != nil {
		return nil, err
	}

	var swipe models.Swipe
	if err := attributevalue.UnmarshalMap(item, &swipe); err != nil {
		return nil, fmt.Errorf("failed to parse swipe: %w", err)
	}
	return &swipe, nil
}

// HasLiked reports whether from's current decision on to is a like.
func (ss *SwipeService) HasLiked(ctx context.Context, fromUserID, toUserID string) (bool, error) {
	swipe, err := ss.GetSwipe(ctx, fromUserID, toUserID)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return swipe.Action == models.SwipeActionLike, nil
}

// SwipedTargets returns the set of users the given user has already decided
// on, used to exclude them from discovery.
func (ss *SwipeService) SwipedTargets(ctx context.Context, fromUserID string) (map[string]bool, error) {
	keyCondition := "fromUserId = :from"
	expressionValues := map[string]types.AttributeValue{
		":from": &types.AttributeValueMemberS{Value: fromUserID},
	}

	items, err := ss.Dynamo.QueryItemsWithIndex(ctx, models.SwipesTable, models.SwipesByFromUserIndex, keyCondition, expressionValues, nil, 500)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch swiped targets: %w", err)
	}

	var swipes []models.Swipe
	if err := attributevalue.UnmarshalListOfMaps(items, &swipes); err != nil {
		return nil, fmt.Errorf("failed to parse swipes: %w", err)
	}

	targets := make(map[string]bool, len(swipes))
	for _, swipe := range swipes {
		targets[swipe.ToUserID] = true
	}
	return targets, nil
}
