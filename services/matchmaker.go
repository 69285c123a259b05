package services

import (
	"sort"
	"time"

	"ttm_server/models"
)

// matchResult identifies a matched pair inside a queue snapshot and the tag
// set reported to both parties.
type matchResult struct {
	A           *models.QueueEntry
	B           *models.QueueEntry
	MatchedTags []string
}

// findExactMatch scans all unordered pairs in snapshot order and returns the
// first pair whose tag sets are equal as sets. The matched tags are the
// initiator's tag set.
func findExactMatch(entries []*models.QueueEntry) *matchResult {
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if tagSetsEqual(entries[i].Tags, entries[j].Tags) {
				return &matchResult{
					A:           entries[i],
					B:           entries[j],
					MatchedTags: append([]string(nil), entries[i].Tags...),
				}
			}
		}
	}
	return nil
}

// findBroadenedMatch runs the relaxed pass: entries waiting at least
// broadenDelay initiate with only their game and level tags, and match the
// first other entry sharing at least one relaxed tag. Only the initiator's
// waiting time is checked.
func findBroadenedMatch(entries []*models.QueueEntry, now time.Time, broadenDelay time.Duration) *matchResult {
	for i, a := range entries {
		if now.Sub(a.JoinedAt) < broadenDelay {
			continue
		}
		relaxedA := relaxTags(a.Tags)
		if len(relaxedA) == 0 {
			continue
		}
		for j, b := range entries {
			if i == j {
				continue
			}
			common := intersectTags(relaxedA, relaxTags(b.Tags))
			if len(common) > 0 {
				return &matchResult{A: a, B: b, MatchedTags: common}
			}
		}
	}
	return nil
}

// broadeningEligible returns the entries that have crossed the broadening
// threshold but have not yet been notified about it.
func broadeningEligible(entries []*models.QueueEntry, now time.Time, broadenDelay time.Duration) []*models.QueueEntry {
	var eligible []*models.QueueEntry
	for _, entry := range entries {
		if !entry.BroadenedNotified && now.Sub(entry.JoinedAt) >= broadenDelay {
			eligible = append(eligible, entry)
		}
	}
	return eligible
}

// relaxTags keeps only the game and level tags, dropping style, constraints
// and availability preferences.
func relaxTags(tags []string) []string {
	var relaxed []string
	for _, tag := range tags {
		category, ok := models.CategoryOf(tag)
		if !ok {
			continue
		}
		if category == models.TagCategoryGame || category == models.TagCategoryLevel {
			relaxed = append(relaxed, tag)
		}
	}
	return relaxed
}

// tagSetsEqual compares two tag lists as sets, order-independent. Inputs are
// assumed deduplicated (queue entries are normalized on join).
func tagSetsEqual(tagsA, tagsB []string) bool {
	if len(tagsA) != len(tagsB) {
		return false
	}
	sortedA := append([]string(nil), tagsA...)
	sortedB := append([]string(nil), tagsB...)
	sort.Strings(sortedA)
	sort.Strings(sortedB)
	for i := range sortedA {
		if sortedA[i] != sortedB[i] {
			return false
		}
	}
	return true
}

// intersectTags returns the tags present in both lists, in the order of the
// first list.
func intersectTags(tagsA, tagsB []string) []string {
	inB := make(map[string]bool, len(tagsB))
	for _, tag := range tagsB {
		inB[tag] = true
	}
	var common []string
	for _, tag := range tagsA {
		if inB[tag] {
			common = append(common, tag)
		}
	}
	return common
}
