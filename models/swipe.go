package models

// Swipe records one directional like/pass decision. At most one swipe exists
// per ordered pair; a later swipe overwrites the earlier one.
type Swipe struct {
	SwipeID    string `dynamodbav:"swipeId" json:"swipeId"` // Partition Key: fromUserId_toUserId
	FromUserID string `dynamodbav:"fromUserId" json:"fromUserId"`
	ToUserID   string `dynamodbav:"toUserId" json:"toUserId"`
	Action     string `dynamodbav:"action" json:"action"` // "like" or "pass"
	CreatedAt  string `dynamodbav:"createdAt" json:"createdAt"`
}

// SwipeID builds the ledger key for an ordered user pair.
func SwipeID(fromUserID, toUserID string) string {
	return fromUserID + "_" + toUserID
}

// SwipesTable is the DynamoDB table name for the swipe ledger
const SwipesTable = "Swipes"

// SwipesByFromUserIndex is the GSI keyed by fromUserId
const SwipesByFromUserIndex = "fromUserId-index"
