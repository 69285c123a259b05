package utils

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ExtractString safely extracts a string from a DynamoDB attribute map
func ExtractString(item map[string]types.AttributeValue, field string) string {
	if attr, ok := item[field]; ok {
		if v, ok := attr.(*types.AttributeValueMemberS); ok {
			return v.Value
		}
	}
	return ""
}

// HasTag reports whether a categorized tag map attribute (category → list of
// tag strings) contains the given tag in any category.
func HasTag(item map[string]types.AttributeValue, field string, tag string) bool {
	attr, ok := item[field]
	if !ok {
		return false
	}
	categories, ok := attr.(*types.AttributeValueMemberM)
	if !ok {
		return false
	}
	for _, list := range categories.Value {
		tags, ok := list.(*types.AttributeValueMemberL)
		if !ok {
			continue
		}
		for _, value := range tags.Value {
			if s, ok := value.(*types.AttributeValueMemberS); ok && s.Value == tag {
				return true
			}
		}
	}
	return false
}
