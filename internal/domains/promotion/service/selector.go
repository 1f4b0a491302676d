package service

import (
	"bytes"
	"time"

	"storefront-backend/internal/domains/promotion/model"
)

// SelectAutoPromotion picks the automatic promotion to apply to a line.
//
// Candidates are filtered to those that are active, whose validity window
// contains now (inclusive at both ends), and whose targets match the line's
// product, category or brand. Among matches the numerically highest priority
// wins; ties are broken by the smallest id so the result is deterministic.
func SelectAutoPromotion(candidates []*model.Promotion, line model.LineTargets, now time.Time) *model.Promotion {
	var best *model.Promotion

	for _, p := range candidates {
		if p.Kind != model.KindAutomatic {
			continue
		}
		if !p.IsValidAt(now) {
			continue
		}
		if !p.MatchesLine(line) {
			continue
		}

		if best == nil || betterCandidate(p, best) {
			best = p
		}
	}

	return best
}

func betterCandidate(p, best *model.Promotion) bool {
	if p.Priority != best.Priority {
		return p.Priority > best.Priority
	}
	return bytes.Compare(p.ID[:], best.ID[:]) < 0
}
