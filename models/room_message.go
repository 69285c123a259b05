package models

// RoomMessage is a chat message relayed inside a matchmaking room,
// persisted for history lookups.
type RoomMessage struct {
	RoomID    string `dynamodbav:"roomId" json:"roomId"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
	MessageID string `dynamodbav:"messageId" json:"messageId"`
	SenderID  string `dynamodbav:"senderId" json:"senderId"`
	Username  string `dynamodbav:"username" json:"username"`
	Text      string `dynamodbav:"text" json:"text"`
}

// RoomMessagesTable is the DynamoDB table name for room chat history
const RoomMessagesTable = "RoomMessages"
