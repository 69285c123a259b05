package services

import (
	"testing"
	"time"

	"ttm_server/models"

	"github.com/stretchr/testify/assert"
)

func entry(connectionID string, tags ...string) *models.QueueEntry {
	return &models.QueueEntry{
		ConnectionID: connectionID,
		Tags:         tags,
		JoinedAt:     time.Now(),
	}
}

func TestQueueInsertAndSize(t *testing.T) {
	q := NewQueueService()
	assert.Equal(t, 0, q.Size())

	q.Insert(entry("a", "Valorant"))
	q.Insert(entry("b", "LoL"))
	assert.Equal(t, 2, q.Size())
}

func TestQueueInsertReplacesSameConnection(t *testing.T) {
	q := NewQueueService()
	q.Insert(entry("a", "Valorant"))
	q.Insert(entry("b", "LoL"))
	q.Insert(entry("a", "Minecraft"))

	assert.Equal(t, 2, q.Size())

	snapshot := q.Snapshot()
	// The re-join moved "a" to the back with its new tags.
	assert.Equal(t, "b", snapshot[0].ConnectionID)
	assert.Equal(t, "a", snapshot[1].ConnectionID)
	assert.Equal(t, []string{"Minecraft"}, snapshot[1].Tags)
}

func TestQueueUniquenessInvariant(t *testing.T) {
	q := NewQueueService()
	for i := 0; i < 5; i++ {
		q.Insert(entry("a", "Valorant"))
	}

	seen := map[string]int{}
	for _, e := range q.Snapshot() {
		seen[e.ConnectionID]++
	}
	assert.Equal(t, 1, seen["a"])
}

func TestQueueRemoveByConnection(t *testing.T) {
	q := NewQueueService()
	q.Insert(entry("a", "Valorant"))

	assert.True(t, q.RemoveByConnection("a"))
	assert.Equal(t, 0, q.Size())

	// Idempotent: removing an absent connection is a no-op.
	assert.False(t, q.RemoveByConnection("a"))
	assert.False(t, q.RemoveByConnection("ghost"))
}

func TestQueueSnapshotPreservesInsertionOrder(t *testing.T) {
	q := NewQueueService()
	q.Insert(entry("a"))
	q.Insert(entry("b"))
	q.Insert(entry("c"))

	snapshot := q.Snapshot()
	ids := []string{snapshot[0].ConnectionID, snapshot[1].ConnectionID, snapshot[2].ConnectionID}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestQueueSnapshotIsACopy(t *testing.T) {
	q := NewQueueService()
	q.Insert(entry("a"))

	snapshot := q.Snapshot()
	q.RemoveByConnection("a")

	assert.Len(t, snapshot, 1)
	assert.Equal(t, 0, q.Size())
}
