package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"ttm_server/models"
	"ttm_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// PlayerProfileService persists player profiles
type PlayerProfileService struct {
	Dynamo *DynamoService
}

// AddPlayerProfile stores a new player profile
func (ps *PlayerProfileService) AddPlayerProfile(ctx context.Context, profile models.PlayerProfile) (*models.PlayerProfile, error) {
	now := time.Now().Format(time.RFC3339)
	profile.CreatedAt = now
	profile.UpdatedAt = now
	if profile.Status == "" {
		profile.Status = models.StatusOffline
	}

	if err := ps.Dynamo.PutItem(ctx, models.PlayerProfilesTable, profile); err != nil {
		return nil, fmt.Errorf("failed to store profile: %w", err)
	}
	return &profile, nil
}

// GetPlayerProfile retrieves a player profile by user id
func (ps *PlayerProfileService) GetPlayerProfile(ctx context.Context, userID string) (*models.PlayerProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ps.Dynamo.GetItem(ctx, models.PlayerProfilesTable, key)
	if err != nil {
		return nil, err
	}

	var profile models.PlayerProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &profile, nil
}

// GetPlayerProfileByDiscordID retrieves a player profile via the discordId GSI
func (ps *PlayerProfileService) GetPlayerProfileByDiscordID(ctx context.Context, discordID string) (*models.PlayerProfile, error) {
	keyCondition := "discordId = :discordId"
	expressionValues := map[string]types.AttributeValue{
		":discordId": &types.AttributeValueMemberS{Value: discordID},
	}

	items, err := ps.Dynamo.QueryItemsWithIndex(ctx, models.PlayerProfilesTable, models.DiscordIDIndex, keyCondition, expressionValues, nil, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile by discordId: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	var profile models.PlayerProfile
	if err := attributevalue.UnmarshalMap(items[0], &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &profile, nil
}

// UpdatePlayerProfile applies a partial update to an existing profile
func (ps *PlayerProfileService) UpdatePlayerProfile(ctx context.Context, userID string, updates map[string]interface{}) (*models.PlayerProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	updates["updatedAt"] = time.Now().Format(time.RFC3339)

	updateExpression := "SET"
	expressionAttributeValues := make(map[string]types.AttributeValue)
	expressionAttributeNames := make(map[string]string)

	for k, v := range updates {
		placeholder := ":" + k
		attributeName := "#" + k
		updateExpression += " " + attributeName + " = " + placeholder + ","

		value, err := attributevalue.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal update field '%s': %w", k, err)
		}
		expressionAttributeValues[placeholder] = value
		expressionAttributeNames[attributeName] = k
	}

	updateExpression = updateExpression[:len(updateExpression)-1]

	updatedItem, err := ps.Dynamo.UpdateItem(ctx, models.PlayerProfilesTable, updateExpression, key, expressionAttributeValues, expressionAttributeNames)
	if err != nil {
		return nil, err
	}

	var updatedProfile models.PlayerProfile
	if err := attributevalue.UnmarshalMap(updatedItem, &updatedProfile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated profile: %w", err)
	}

	return &updatedProfile, nil
}

// DeletePlayerProfile removes a player profile
func (ps *PlayerProfileService) DeletePlayerProfile(ctx context.Context, userID string) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	return ps.Dynamo.DeleteItem(ctx, models.PlayerProfilesTable, key)
}

// UpdatePlayerStatus records presence transitions driven by the socket
// gateway (online on connect, offline on disconnect).
func (ps *PlayerProfileService) UpdatePlayerStatus(ctx context.Context, userID string, status string) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	updateExpression := "SET #status = :status, lastSeen = :lastSeen"
	expressionValues := map[string]types.AttributeValue{
		":status":   &types.AttributeValueMemberS{Value: status},
		":lastSeen": &types.AttributeValueMemberS{Value: time.Now().Format(time.RFC3339)},
	}
	expressionNames := map[string]string{
		"#status": "status", // status is a DynamoDB reserved word
	}

	_, err := ps.Dynamo.UpdateItem(ctx, models.PlayerProfilesTable, updateExpression, key, expressionValues, expressionNames)
	if err != nil {
		return fmt.Errorf("failed to update status for '%s': %w", userID, err)
	}

	log.Printf("🟢 Status for %s set to %s", userID, status)
	return nil
}

// SearchPlayersByTag scans for profiles carrying a tag in any category,
// excluding the requester's own profile.
func (ps *PlayerProfileService) SearchPlayersByTag(ctx context.Context, tag string, requesterID string) ([]models.PlayerProfile, error) {
	excludeFields := map[string]string{}
	if requesterID != "" {
		excludeFields["userId"] = requesterID
	}

	var profiles []models.PlayerProfile
	err := ps.Dynamo.ScanWithFilter(ctx, models.PlayerProfilesTable, func(item map[string]types.AttributeValue) bool {
		return utils.HasTag(item, "tags", tag)
	}, excludeFields, &profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}

	log.Printf("🔍 Tag search '%s' matched %d profiles", tag, len(profiles))
	return profiles, nil
}

// AddContact appends a contact to a profile's contact list
func (ps *PlayerProfileService) AddContact(ctx context.Context, userID string, contactID string) (*models.PlayerProfile, error) {
	profile, err := ps.GetPlayerProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, existing := range profile.Contacts {
		if existing == contactID {
			return profile, nil
		}
	}
	profile.Contacts = append(profile.Contacts, contactID)

	return ps.UpdatePlayerProfile(ctx, userID, map[string]interface{}{"contacts": profile.Contacts})
}

// RemoveContact removes a contact from a profile's contact list
func (ps *PlayerProfileService) RemoveContact(ctx context.Context, userID string, contactID string) (*models.PlayerProfile, error) {
	profile, err := ps.GetPlayerProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	contacts := make([]string, 0, len(profile.Contacts))
	for _, existing := range profile.Contacts {
		if existing != contactID {
			contacts = append(contacts, existing)
		}
	}

	return ps.UpdatePlayerProfile(ctx, userID, map[string]interface{}{"contacts": contacts})
}

// GetContacts resolves a profile's contacts into full profiles
func (ps *PlayerProfileService) GetContacts(ctx context.Context, userID string) ([]models.PlayerProfile, error) {
	profile, err := ps.GetPlayerProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	contacts := make([]models.PlayerProfile, 0, len(profile.Contacts))
	for _, contactID := range profile.Contacts {
		contact, err := ps.GetPlayerProfile(ctx, contactID)
		if err != nil {
			log.Printf("⚠️ Skipping unresolvable contact %s: %v", contactID, err)
			continue
		}
		contacts = append(contacts, *contact)
	}

	return contacts, nil
}
