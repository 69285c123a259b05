package services

import (
	"context"
	"fmt"
	"time"

	"ttm_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ChatHistoryService persists relayed room chat for later lookup. The engine
// writes through it best-effort; delivery never waits on a write.
type ChatHistoryService struct {
	Dynamo *DynamoService
}

// SaveMessage stores a relayed room message
func (s *ChatHistoryService) SaveMessage(ctx context.Context, message models.RoomMessage) error {
	if message.MessageID == "" {
		message.MessageID = uuid.New().String()
	}
	if message.CreatedAt == "" {
		message.CreatedAt = time.Now().Format(time.RFC3339Nano)
	}

	if err := s.Dynamo.PutItem(ctx, models.RoomMessagesTable, message); err != nil {
		return fmt.Errorf("failed to store room message: %w", err)
	}
	return nil
}

// GetMessagesByRoomID fetches messages for a room, latest first
func (s *ChatHistoryService) GetMessagesByRoomID(ctx context.Context, roomID string, limit int) ([]models.RoomMessage, error) {
	keyCondition := "#roomId = :roomId"
	expressionValues := map[string]types.AttributeValue{
		":roomId": &types.AttributeValueMemberS{Value: roomID},
	}
	expressionNames := map[string]string{
		"#roomId": "roomId",
	}

	items, err := s.Dynamo.QueryItemsWithOptions(ctx, models.RoomMessagesTable, keyCondition, expressionValues, expressionNames, int32(limit), true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room messages: %w", err)
	}

	var messages []models.RoomMessage
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse room messages: %w", err)
	}

	return messages, nil
}
