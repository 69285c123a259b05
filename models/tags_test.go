package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryOf(t *testing.T) {
	category, ok := CategoryOf("Valorant")
	assert.True(t, ok)
	assert.Equal(t, TagCategoryGame, category)

	category, ok = CategoryOf("Fer")
	assert.True(t, ok)
	assert.Equal(t, TagCategoryLevel, category)

	category, ok = CategoryOf("Tryhard")
	assert.True(t, ok)
	assert.Equal(t, TagCategoryStyle, category)

	_, ok = CategoryOf("NotATag")
	assert.False(t, ok)
}

func TestVocabularyCoversAllCategories(t *testing.T) {
	expected := []string{
		TagCategoryGame,
		TagCategoryLevel,
		TagCategoryStyle,
		TagCategoryConstraints,
		TagCategoryAvailability,
	}
	assert.Len(t, TagVocabulary, len(expected))
	for _, category := range expected {
		assert.NotEmpty(t, TagVocabulary[category], "category %s has no tags", category)
	}
}

func TestNormalizeTags(t *testing.T) {
	normalized := NormalizeTags([]string{"Valorant", "", "Fer", "Valorant", "Fer"})
	assert.Equal(t, []string{"Valorant", "Fer"}, normalized)

	assert.Empty(t, NormalizeTags(nil))
	assert.Empty(t, NormalizeTags([]string{"", ""}))
}

func TestRoomOther(t *testing.T) {
	room := Room{RoomID: "mm_test", Members: [2]string{"a", "b"}}

	partner, ok := room.Other("a")
	assert.True(t, ok)
	assert.Equal(t, "b", partner)

	partner, ok = room.Other("b")
	assert.True(t, ok)
	assert.Equal(t, "a", partner)

	_, ok = room.Other("c")
	assert.False(t, ok)
}
