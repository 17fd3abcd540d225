package quest

import (
	"strings"

	"github.com/cwilder/lifequest/internal/domain"
)

// FilterDailyByCategory returns the daily quests matching category. The
// sentinel domain.CategoryAll (or an empty category) matches everything.
// Pure query, no mutation.
func FilterDailyByCategory(quests []domain.DailyQuest, category string) []domain.DailyQuest {
	if matchesAll(category) {
		return quests
	}
	filtered := make([]domain.DailyQuest, 0, len(quests))
	for _, q := range quests {
		if strings.EqualFold(q.Category, category) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// FilterMainByCategory returns the main quests matching category.
func FilterMainByCategory(quests []domain.MainQuest, category string) []domain.MainQuest {
	if matchesAll(category) {
		return quests
	}
	filtered := make([]domain.MainQuest, 0, len(quests))
	for _, q := range quests {
		if strings.EqualFold(q.Category, category) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

func matchesAll(category string) bool {
	return category == "" || strings.EqualFold(category, domain.CategoryAll)
}
