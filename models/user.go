package models

// UserProfile defines the structure for user profiles
type UserProfile struct {
	UserID                 string   `dynamodbav:"userId" json:"userId"` // Partition Key
	Name                   string   `dynamodbav:"name,omitempty" json:"name,omitempty"`
	EmailID                string   `dynamodbav:"emailId,omitempty" json:"emailId,omitempty"`
	AvatarURL              string   `dynamodbav:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Age                    int      `dynamodbav:"age,omitempty" json:"age,omitempty"`
	Gender                 string   `dynamodbav:"gender,omitempty" json:"gender,omitempty"`
	InterestedIn           string   `dynamodbav:"interestedIn,omitempty" json:"interestedIn,omitempty"`
	Bio                    string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	Interests              []string `dynamodbav:"interests,omitempty" json:"interests,omitempty"`
	Location               string   `dynamodbav:"location,omitempty" json:"location,omitempty"`
	Photos                 []string `dynamodbav:"photos,omitempty" json:"photos,omitempty"`
	SelfieURL              string   `dynamodbav:"selfieUrl,omitempty" json:"selfieUrl,omitempty"`
	Verified               bool     `dynamodbav:"verified" json:"verified"`
	VerificationSkipped    bool     `dynamodbav:"verificationSkipped,omitempty" json:"verificationSkipped,omitempty"`
	VerificationConfidence float64  `dynamodbav:"verificationConfidence,omitempty" json:"verificationConfidence,omitempty"`
	OnboardingComplete     bool     `dynamodbav:"onboardingComplete" json:"onboardingComplete"`
	CreatedAt              string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// UsersTable is the DynamoDB table name for user profiles
const UsersTable = "Users"
