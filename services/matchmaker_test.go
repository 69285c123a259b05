package services

import (
	"testing"
	"time"

	"ttm_server/models"

	"github.com/stretchr/testify/assert"
)

func waitingEntry(connectionID string, joinedAt time.Time, tags ...string) *models.QueueEntry {
	return &models.QueueEntry{
		ConnectionID: connectionID,
		Tags:         tags,
		JoinedAt:     joinedAt,
	}
}

func TestTagSetsEqual(t *testing.T) {
	assert.True(t, tagSetsEqual([]string{"Valorant", "Fer"}, []string{"Fer", "Valorant"}))
	assert.True(t, tagSetsEqual(nil, nil))
	assert.False(t, tagSetsEqual([]string{"Valorant", "Fer"}, []string{"Valorant", "Fer", "FR"}))
	assert.False(t, tagSetsEqual([]string{"Valorant"}, []string{"LoL"}))
}

func TestRelaxTagsKeepsGameAndLevelOnly(t *testing.T) {
	relaxed := relaxTags([]string{"Valorant", "Tryhard", "Fer", "SansMicro", "Soirée", "NotATag"})
	assert.Equal(t, []string{"Valorant", "Fer"}, relaxed)

	assert.Empty(t, relaxTags([]string{"Tryhard", "FR"}))
}

func TestIntersectTagsKeepsFirstListOrder(t *testing.T) {
	common := intersectTags([]string{"Valorant", "Fer", "LoL"}, []string{"LoL", "Valorant"})
	assert.Equal(t, []string{"Valorant", "LoL"}, common)

	assert.Empty(t, intersectTags([]string{"Valorant"}, []string{"LoL"}))
}

func TestFindExactMatchOrderIndependent(t *testing.T) {
	now := time.Now()
	entries := []*models.QueueEntry{
		waitingEntry("a", now, "Valorant", "Fer"),
		waitingEntry("b", now, "Fer", "Valorant"),
	}

	result := findExactMatch(entries)
	assert.NotNil(t, result)
	assert.Equal(t, "a", result.A.ConnectionID)
	assert.Equal(t, "b", result.B.ConnectionID)
	assert.ElementsMatch(t, []string{"Valorant", "Fer"}, result.MatchedTags)
}

func TestFindExactMatchRejectsSuperset(t *testing.T) {
	now := time.Now()
	entries := []*models.QueueEntry{
		waitingEntry("a", now, "Valorant", "Fer"),
		waitingEntry("b", now, "Valorant", "Fer", "FR"),
	}
	assert.Nil(t, findExactMatch(entries))
}

func TestFindExactMatchFirstPairInInsertionOrderWins(t *testing.T) {
	now := time.Now()
	entries := []*models.QueueEntry{
		waitingEntry("a", now, "Valorant"),
		waitingEntry("b", now, "LoL"),
		waitingEntry("c", now, "Valorant"),
		waitingEntry("d", now, "LoL"),
	}

	result := findExactMatch(entries)
	assert.NotNil(t, result)
	assert.Equal(t, "a", result.A.ConnectionID)
	assert.Equal(t, "c", result.B.ConnectionID)
}

func TestFindBroadenedMatchRequiresInitiatorWait(t *testing.T) {
	now := time.Now()
	entries := []*models.QueueEntry{
		waitingEntry("a", now.Add(-10*time.Second), "Valorant", "Tryhard"),
		waitingEntry("b", now.Add(-5*time.Second), "Valorant", "Fun"),
	}
	assert.Nil(t, findBroadenedMatch(entries, now, 30*time.Second))
}

func TestFindBroadenedMatchSharedGameTag(t *testing.T) {
	now := time.Now()
	entries := []*models.QueueEntry{
		waitingEntry("a", now.Add(-31*time.Second), "Valorant", "Tryhard"),
		waitingEntry("b", now.Add(-2*time.Second), "Valorant", "Fun", "SansMicro"),
	}

	result := findBroadenedMatch(entries, now, 30*time.Second)
	assert.NotNil(t, result)
	assert.Equal(t, "a", result.A.ConnectionID)
	assert.Equal(t, "b", result.B.ConnectionID)
	assert.Equal(t, []string{"Valorant"}, result.MatchedTags)
}

func TestFindBroadenedMatchPartnerNeedNotBeEligible(t *testing.T) {
	// Only the initiator's waiting time is checked; a freshly joined partner
	// with a shared relaxed tag matches immediately.
	now := time.Now()
	entries := []*models.QueueEntry{
		waitingEntry("fresh", now, "Fer", "LoL"),
		waitingEntry("waited", now.Add(-45*time.Second), "LoL", "Tryhard"),
	}

	result := findBroadenedMatch(entries, now, 30*time.Second)
	assert.NotNil(t, result)
	assert.Equal(t, "waited", result.A.ConnectionID)
	assert.Equal(t, "fresh", result.B.ConnectionID)
	assert.Equal(t, []string{"LoL"}, result.MatchedTags)
}

func TestFindBroadenedMatchNoSharedRelaxedTags(t *testing.T) {
	now := time.Now()
	entries := []*models.QueueEntry{
		waitingEntry("a", now.Add(-40*time.Second), "Valorant", "Tryhard"),
		waitingEntry("b", now.Add(-40*time.Second), "LoL", "Tryhard"),
	}
	// Style tags never survive relaxation, so Tryhard alone cannot pair them.
	assert.Nil(t, findBroadenedMatch(entries, now, 30*time.Second))
}

func TestBroadeningEligible(t *testing.T) {
	now := time.Now()
	notified := waitingEntry("done", now.Add(-60*time.Second), "Valorant")
	notified.BroadenedNotified = true

	entries := []*models.QueueEntry{
		waitingEntry("young", now.Add(-5*time.Second), "Valorant"),
		waitingEntry("ripe", now.Add(-31*time.Second), "LoL"),
		notified,
	}

	eligible := broadeningEligible(entries, now, 30*time.Second)
	assert.Len(t, eligible, 1)
	assert.Equal(t, "ripe", eligible[0].ConnectionID)
}
