package content

import (
	"sort"
	"strings"
)

// DefaultRelatedLimit is the number of related posts returned when the caller
// does not ask for a specific count.
const DefaultRelatedLimit = 3

// Related ranks pool entries by the number of tags they share with target
// (case-insensitive exact match) and returns at most limit of them, best
// first. The target itself and candidates sharing no tag are excluded.
// Ties keep pool order.
func Related(target Summary, pool []Summary, limit int) []Summary {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	if len(target.Tags) == 0 {
		return nil
	}

	targetTags := make(map[string]struct{}, len(target.Tags))
	for _, tag := range target.Tags {
		targetTags[strings.ToLower(tag)] = struct{}{}
	}

	type scored struct {
		summary Summary
		score   int
	}
	candidates := make([]scored, 0, len(pool))
	for _, candidate := range pool {
		if candidate.Slug == target.Slug {
			continue
		}
		score := 0
		for _, tag := range candidate.Tags {
			if _, ok := targetTags[strings.ToLower(tag)]; ok {
				score++
			}
		}
		if score > 0 {
			candidates = append(candidates, scored{summary: candidate, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]Summary, len(candidates))
	for i, c := range candidates {
		out[i] = c.summary
	}
	return out
}
