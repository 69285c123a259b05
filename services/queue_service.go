package services

import (
	"ttm_server/models"
)

// QueueService holds the ordered collection of waiting players. It is not
// internally locked: all access is serialized by the MatchmakingService
// mutex so that joins, cancels and ticks never interleave.
type QueueService struct {
	entries []*models.QueueEntry
}

// NewQueueService creates an empty queue
func NewQueueService() *QueueService {
	return &QueueService{}
}

// Insert adds an entry to the back of the queue. Any existing entry for the
// same connection is replaced: the old entry is removed first, so a re-join
// restarts the waiting time.
func (q *QueueService) Insert(entry *models.QueueEntry) {
	q.RemoveByConnection(entry.ConnectionID)
	q.entries = append(q.entries, entry)
}

// RemoveByConnection removes the entry for a connection. It is a no-op if
// the connection is not queued, and reports whether an entry was removed.
func (q *QueueService) RemoveByConnection(connectionID string) bool {
	for i, entry := range q.entries {
		if entry.ConnectionID == connectionID {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot returns the current entries in insertion order. The slice is a
// copy; the entries are shared.
func (q *QueueService) Snapshot() []*models.QueueEntry {
	snapshot := make([]*models.QueueEntry, len(q.entries))
	copy(snapshot, q.entries)
	return snapshot
}

// Size returns the number of waiting players
func (q *QueueService) Size() int {
	return len(q.entries)
}
