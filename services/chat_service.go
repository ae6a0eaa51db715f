package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"ember_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ChatService is the per-match message channel. Creating a message is the
// only path that moves messageCount and lastMessageAt on the parent match.
type ChatService struct {
	Dynamo  DynamoAPI
	Matches *MatchService
}

// SendMessage validates, stores the message, and updates the parent match's
// counters in one transaction. Sends against an expired match are rejected
// even before the sweeper flips it inactive.
func (cs *ChatService) SendMessage(ctx context.Context, matchID, senderID, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("message text is empty: %w", ErrInvalidInput)
	}
	if len([]rune(text)) > models.MaxMessageLength {
		return nil, fmt.Errorf("message text exceeds %d characters: %w", models.MaxMessageLength, ErrInvalidInput)
	}

	match, err := cs.Matches.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.HasUser(senderID) {
		return nil, fmt.Errorf("sender %s is not part of match %s: %w", senderID, matchID, ErrInvalidInput)
	}

	now := time.Now().UTC()
	if !match.Active || match.Expired(now) {
		return nil, fmt.Errorf("match %s is no longer open: %w", matchID, ErrExpired)
	}

	message := models.Message{
		MatchID:   matchID,
		CreatedAt: now.Format(time.RFC3339Nano),
		MessageID: uuid.NewString(),
		SenderID:  senderID,
		Text:      text,
		Read:      false,
	}
	item, err := attributevalue.MarshalMap(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	preview := text
	if runes := []rune(preview); len(runes) > models.MessagePreviewLength {
		preview = string(runes[:models.MessagePreviewLength])
	}

	// The append and the match bookkeeping commit together or not at all.
	transactItems := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName: aws.String(models.MessagesTable),
				Item:      item,
			},
		},
		{
			Update: &types.Update{
				TableName: aws.String(models.MatchesTable),
				Key: map[string]types.AttributeValue{
					"matchId": &types.AttributeValueMemberS{Value: matchID},
				},
				UpdateExpression: aws.String("SET lastMessageAt = :ts, lastMessage = :preview ADD messageCount :one"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":ts":      &types.AttributeValueMemberS{Value: message.CreatedAt},
					":preview": &types.AttributeValueMemberS{Value: preview},
					":one":     &types.AttributeValueMemberN{Value: "1"},
				},
			},
		},
	}
	if err := cs.Dynamo.TransactWriteItems(ctx, transactItems); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	log.Printf("📩 Message %s stored for match %s", message.MessageID, matchID)
	return &message, nil
}

// GetMessages fetches the latest messages for a match and returns them in
// chronological order, so the newest message sits at the end. Non-participants
// see a missing match, not someone else's conversation.
func (cs *ChatService) GetMessages(ctx context.Context, matchID, requesterID string, limit int) ([]models.Message, error) {
	if matchID == "" {
		return nil, fmt.Errorf("matchId is required: %w", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = 50
	}

	match, err := cs.Matches.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.HasUser(requesterID) {
		return nil, fmt.Errorf("match %s: %w", matchID, ErrNotFound)
	}

	keyCondition := "#matchId = :matchId"
	expressionValues := map[string]types.AttributeValue{
		":matchId": &types.AttributeValueMemberS{Value: matchID},
	}
	expressionNames := map[string]string{
		"#matchId": "matchId",
	}

	items, err := cs.Dynamo.QueryItemsWithOptions(ctx, models.MessagesTable, keyCondition, expressionValues, expressionNames, int32(limit), true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// MarkMessagesAsRead flags every message the reader received as read.
func (cs *ChatService) MarkMessagesAsRead(ctx context.Context, matchID, readerID string) error {
	match, err := cs.Matches.GetMatch(ctx, matchID)
	if err != nil {
		return err
	}
	if !match.HasUser(readerID) {
		return fmt.Errorf("match %s: %w", matchID, ErrNotFound)
	}

	keyCondition := "#matchId = :matchId"
	expressionValues := map[string]types.AttributeValue{
		":matchId": &types.AttributeValueMemberS{Value: matchID},
	}
	expressionNames := map[string]string{
		"#matchId": "matchId",
	}

	items, err := cs.Dynamo.QueryItems(ctx, models.MessagesTable, keyCondition, expressionValues, expressionNames, 200)
	if err != nil {
		return fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return fmt.Errorf("failed to parse messages: %w", err)
	}

	updated := 0
	for _, message := range messages {
		if message.SenderID == readerID || message.Read {
			continue
		}
		key := map[string]types.AttributeValue{
			"matchId":   &types.AttributeValueMemberS{Value: message.MatchID},
			"createdAt": &types.AttributeValueMemberS{Value: message.CreatedAt},
		}
		_, err := cs.Dynamo.UpdateItem(ctx, models.MessagesTable, "SET #read = :read", key,
			map[string]types.AttributeValue{
				":read": &types.AttributeValueMemberBOOL{Value: true},
			},
			map[string]string{
				"#read": "read",
			})
		if err != nil {
			log.Printf("❌ Failed to mark message %s as read: %v", message.MessageID, err)
			continue
		}
		updated++
	}

	log.Printf("✅ Marked %d messages as read for match %s", updated, matchID)
	return nil
}
