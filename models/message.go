package models

// Message belongs to exactly one match and is immutable once created, apart
// from the read flag.
type Message struct {
	MatchID   string `dynamodbav:"matchId" json:"matchId"`     // Partition Key
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"` // Sort Key
	MessageID string `dynamodbav:"messageId" json:"messageId"`
	SenderID  string `dynamodbav:"senderId" json:"senderId"`
	Text      string `dynamodbav:"text" json:"text"`
	Read      bool   `dynamodbav:"read" json:"read"`
}

// MessagesTable is the DynamoDB table name for chat messages
const MessagesTable = "Messages"
