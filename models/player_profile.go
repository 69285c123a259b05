package models

// PlayerProfile defines the structure for player profiles
type PlayerProfile struct {
	UserID        string              `dynamodbav:"userId" json:"userId"`
	DiscordID     string              `dynamodbav:"discordId,omitempty" json:"discordId,omitempty"`
	Username      string              `dynamodbav:"username" json:"username"`
	Discriminator string              `dynamodbav:"discriminator,omitempty" json:"discriminator,omitempty"`
	Avatar        string              `dynamodbav:"avatar,omitempty" json:"avatar,omitempty"`
	Email         string              `dynamodbav:"email,omitempty" json:"email,omitempty"`
	Tagline       string              `dynamodbav:"tagline,omitempty" json:"tagline,omitempty"`
	Description   string              `dynamodbav:"description,omitempty" json:"description,omitempty"`
	Country       string              `dynamodbav:"country,omitempty" json:"country,omitempty"`
	Platform      string              `dynamodbav:"platform,omitempty" json:"platform,omitempty"`
	Playstyle     string              `dynamodbav:"playstyle,omitempty" json:"playstyle,omitempty"`
	Mic           bool                `dynamodbav:"mic" json:"mic"`
	Languages     []string            `dynamodbav:"languages,omitempty" json:"languages,omitempty"`
	Tags          map[string][]string `dynamodbav:"tags,omitempty" json:"tags,omitempty"`
	Contacts      []string            `dynamodbav:"contacts,omitempty" json:"contacts,omitempty"`
	Status        string              `dynamodbav:"status,omitempty" json:"status,omitempty"`
	LastSeen      string              `dynamodbav:"lastSeen,omitempty" json:"lastSeen,omitempty"`
	CreatedAt     string              `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt     string              `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ✅ Presence statuses
const (
	StatusOnline  = "online"
	StatusIdle    = "idle"
	StatusOffline = "offline"
)

// PlayerProfilesTable is the DynamoDB table name for player profiles
const PlayerProfilesTable = "PlayerProfiles"

// DiscordIDIndex is the GSI used to look up a profile by Discord id
const DiscordIDIndex = "discordId-index"
