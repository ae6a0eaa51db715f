package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"ember_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// SweeperService deactivates matches that reached their expiry with zero
// messages exchanged. Matches with at least one message are never touched.
type SweeperService struct {
	Dynamo DynamoAPI
}

// Sweep runs one pass over the active matches. Re-running on the same data
// is a no-op: already-deactivated matches no longer pass the scan filter.
// Each flip only touches active/expiredAt and is guarded on messageCount
// still being zero, so a first message landing mid-sweep wins the race.
func (sw *SweeperService) Sweep(ctx context.Context) (int, error) {
	items, err := sw.Dynamo.ScanItems(ctx, models.MatchesTable, "active = :active",
		map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
		}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to scan active matches: %w", err)
	}

	var matches []models.Match
	if err := attributevalue.UnmarshalListOfMaps(items, &matches); err != nil {
		return 0, fmt.Errorf("failed to parse matches: %w", err)
	}

	now := time.Now().UTC()
	expired := 0
	for _, match := range matches {
		if match.MessageCount > 0 || !match.Expired(now) {
			continue
		}

		key := map[string]types.AttributeValue{
			"matchId": &types.AttributeValueMemberS{Value: match.MatchID},
		}
		err := sw.Dynamo.UpdateItemWithCondition(ctx, models.MatchesTable,
			"SET active = :inactive, expiredAt = :expiredAt",
			"messageCount = :zero",
			key,
			map[string]types.AttributeValue{
				":inactive":  &types.AttributeValueMemberBOOL{Value: false},
				":expiredAt": &types.AttributeValueMemberS{Value: now.Format(time.RFC3339)},
				":zero":      &types.AttributeValueMemberN{Value: "0"},
			}, nil)
		if errors.Is(err, ErrConflict) {
			log.Printf("💬 Match %s got its first message mid-sweep, leaving it active", match.MatchID)
			continue
		}
		if err != nil {
			log.Printf("❌ Failed to expire match %s: %v", match.MatchID, err)
			continue
		}
		expired++
	}

	if expired == 0 {
		log.Println("🧹 Sweep complete, nothing to expire")
		return 0, nil
	}

	log.Printf("🧹 Expired %d matches with no messages", expired)
	return expired, nil
}

// Run invokes Sweep on a fixed interval until the context is cancelled.
// A failed sweep is retried on the next tick, not within the run.
func (sw *SweeperService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := sw.Sweep(ctx); err != nil {
				log.Printf("❌ Sweep failed, will retry on next run: %v", err)
			}
		}
	}
}
