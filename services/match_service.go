package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"ember_server/models"
	"ember_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DefaultMatchTTL is how long a match stays open for a first message.
const DefaultMatchTTL = 24 * time.Hour

// MatchService owns the match lifecycle: mutual-like detection, creation at
// the canonical key, and expiry bookkeeping.
type MatchService struct {
	Dynamo DynamoAPI
	Swipes *SwipeService
	Users  *UserService
	TTL    time.Duration
}

// SwipeResult is what the UI needs to react to a swipe.
type SwipeResult struct {
	AlreadyRecorded bool   `json:"alreadyRecorded"`
	Matched         bool   `json:"matched"`
	MatchID         string `json:"matchId,omitempty"`
	Icebreaker      string `json:"icebreaker,omitempty"`
}

// OnSwipe records the swipe and, on a mutual like, creates the match.
// Exactly one match is created per pair even when both users swipe
// simultaneously; the loser of the race receives the winner's match.
func (ms *MatchService) OnSwipe(ctx context.Context, fromUserID, toUserID, action string) (*SwipeResult, error) {
	alreadyRecorded, err := ms.Swipes.RecordSwipe(ctx, fromUserID, toUserID, action)
	if err != nil {
		return nil, err
	}

	result := &SwipeResult{AlreadyRecorded: alreadyRecorded}
	if action != models.SwipeActionLike {
		return result, nil
	}

	liked, err := ms.Swipes.HasLiked(ctx, toUserID, fromUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check reverse swipe: %w", err)
	}
	if !liked {
		return result, nil
	}

	match, err := ms.CreateMatch(ctx, fromUserID, toUserID)
	if err != nil {
		return nil, err
	}

	result.Matched = true
	result.MatchID = match.MatchID
	result.Icebreaker = match.Icebreaker
	return result, nil
}

// CreateMatch writes the match document at its canonical key with a
// conditional put. When the document already exists (concurrent double-swipe
// or a re-like after a pass), the existing match is returned unchanged.
func (ms *MatchService) CreateMatch(ctx context.Context, userA, userB string) (*models.Match, error) {
	users := []string{userA, userB}
	sort.Strings(users)

	now := time.Now().UTC()
	match := models.Match{
		MatchID:      models.CanonicalMatchID(userA, userB),
		Users:        users,
		CreatedAt:    now.Format(time.RFC3339),
		ExpiresAt:    now.Add(ms.ttl()).Format(time.RFC3339),
		MessageCount: 0,
		Active:       true,
		Icebreaker:   ms.icebreakerFor(ctx, users[0], users[1]),
	}

	err := ms.Dynamo.PutItemIfAbsent(ctx, models.MatchesTable, match, "matchId")
	if errors.Is(err, ErrConflict) {
		log.Printf("⚠️ Match %s already exists, returning existing entry", match.MatchID)
		return ms.GetMatch(ctx, match.MatchID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	log.Printf("🎉 Match created: %s", match.MatchID)
	return &match, nil
}

// GetMatch fetches a match by id.
func (ms *MatchService) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	key := map[string]types.AttributeValue{
		"matchId": &types.AttributeValueMemberS{Value: matchID},
	}
	item, err := ms.Dynamo.GetItem(ctx, models.MatchesTable, key)
	if err != nil {
		return nil, err
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(item, &match); err != nil {
		return nil, fmt.Errorf("failed to parse match: %w", err)
	}
	return &match, nil
}

// GetActiveMatches returns the user's active matches, newest first.
func (ms *MatchService) GetActiveMatches(ctx context.Context, userID string) ([]models.Match, error) {
	items, err := ms.Dynamo.ScanItems(ctx, models.MatchesTable, "active = :active",
		map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
		}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to scan matches: %w", err)
	}

	var all []models.Match
	if err := attributevalue.UnmarshalListOfMaps(items, &all); err != nil {
		return nil, fmt.Errorf("failed to parse matches: %w", err)
	}

	matches := make([]models.Match, 0, len(all))
	for _, match := range all {
		if match.HasUser(userID) {
			matches = append(matches, match)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt > matches[j].CreatedAt
	})
	return matches, nil
}

func (ms *MatchService) ttl() time.Duration {
	if ms.TTL > 0 {
		return ms.TTL
	}
	return DefaultMatchTTL
}

// icebreakerFor picks the opener from the pair's shared interests. Profiles
// are read in canonical order so both race participants compute the same
// question. Profile lookup failures fall back to the generic pool.
func (ms *MatchService) icebreakerFor(ctx context.Context, userA, userB string) string {
	profileA, err := ms.Users.GetUserProfile(ctx, userA)
	if err != nil {
		return utils.RandomIcebreaker()
	}
	profileB, err := ms.Users.GetUserProfile(ctx, userB)
	if err != nil {
		return utils.RandomIcebreaker()
	}
	return utils.PickIcebreaker(profileA.Interests, profileB.Interests)
}
