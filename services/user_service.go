package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ember_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type UserService struct {
	Dynamo DynamoAPI
	Swipes *SwipeService
}

// CreateUserProfile bootstraps a profile on first authentication. Repeated
// sign-ins are idempotent: an existing profile is returned untouched.
func (us *UserService) CreateUserProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	if profile.UserID == "" {
		return nil, fmt.Errorf("userId is required: %w", ErrInvalidInput)
	}
	profile.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	err := us.Dynamo.PutItemIfAbsent(ctx, models.UsersTable, profile, "userId")
	if errors.Is(err, ErrConflict) {
		return us.GetUserProfile(ctx, profile.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &profile, nil
}

// GetUserProfile retrieves a user profile by ID
func (us *UserService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	item, err := us.Dynamo.GetItem(ctx, models.UsersTable, key)
	if err != nil {
		return nil, err
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &profile, nil
}

// UpdateUserProfile applies a partial update and returns the new profile.
// Onboarding and verification flows write through here.
func (us *UserService) UpdateUserProfile(ctx context.Context, userID string, updates map[string]interface{}) (*models.UserProfile, error) {
	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update: %w", ErrInvalidInput)
	}

	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	setExpressions := make([]string, 0, len(updates))
	expressionValues := make(map[string]types.AttributeValue, len(updates))
	expressionNames := make(map[string]string, len(updates))
	for field, value := range updates {
		marshaled, err := attributevalue.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal field %q: %w", field, err)
		}
		expressionNames["#"+field] = field
		expressionValues[":"+field] = marshaled
		setExpressions = append(setExpressions, fmt.Sprintf("#%s = :%s", field, field))
	}
	updateExpression := "SET " + strings.Join(setExpressions, ", ")

	item, err := us.Dynamo.UpdateItem(ctx, models.UsersTable, updateExpression, key, expressionValues, expressionNames)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse updated profile: %w", err)
	}
	return &profile, nil
}

// DeleteUserProfile removes a user profile
func (us *UserService) DeleteUserProfile(ctx context.Context, userID string) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	return us.Dynamo.DeleteItem(ctx, models.UsersTable, key)
}

// GetDiscoverProfiles returns swipe candidates for the viewer: profiles of
// the gender they are interested in, onboarded and verified (or explicitly
// skipped), excluding the viewer and anyone they already decided on.
func (us *UserService) GetDiscoverProfiles(ctx context.Context, userID string, limit int) ([]models.UserProfile, error) {
	viewer, err := us.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if viewer.InterestedIn == "" {
		return nil, fmt.Errorf("profile has no discovery preference: %w", ErrInvalidInput)
	}

	swiped, err := us.Swipes.SwipedTargets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load swipe history: %w", err)
	}

	items, err := us.Dynamo.ScanItems(ctx, models.UsersTable,
		"#gender = :gender AND onboardingComplete = :complete",
		map[string]types.AttributeValue{
			":gender":   &types.AttributeValueMemberS{Value: viewer.InterestedIn},
			":complete": &types.AttributeValueMemberBOOL{Value: true},
		},
		map[string]string{
			"#gender": "gender",
		})
	if err != nil {
		return nil, fmt.Errorf("failed to scan profiles: %w", err)
	}

	var candidates []models.UserProfile
	if err := attributevalue.UnmarshalListOfMaps(items, &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse profiles: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}
	profiles := make([]models.UserProfile, 0, limit)
	for _, candidate := range candidates {
		if candidate.UserID == userID || swiped[candidate.UserID] {
			continue
		}
		if !candidate.Verified && !candidate.VerificationSkipped {
			continue
		}
		profiles = append(profiles, candidate)
		if len(profiles) == limit {
			break
		}
	}
	return profiles, nil
}
