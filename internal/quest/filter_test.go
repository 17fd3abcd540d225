package quest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwilder/lifequest/internal/domain"
	"github.com/cwilder/lifequest/internal/quest"
)

func TestFilterDailyByCategory(t *testing.T) {
	quests := testDailyQuests()

	assert.Len(t, quest.FilterDailyByCategory(quests, domain.CategoryAll), 3)
	assert.Len(t, quest.FilterDailyByCategory(quests, ""), 3)

	mental := quest.FilterDailyByCategory(quests, domain.CategoryMental)
	if assert.Len(t, mental, 1) {
		assert.Equal(t, 1, mental[0].ID)
	}

	// Category match is case-insensitive.
	assert.Len(t, quest.FilterDailyByCategory(quests, "Physical"), 1)

	assert.Empty(t, quest.FilterDailyByCategory(quests, domain.CategoryCreativity))
}

func TestFilterMainByCategory(t *testing.T) {
	quests := testMainQuests()

	assert.Len(t, quest.FilterMainByCategory(quests, domain.CategoryAll), 2)

	career := quest.FilterMainByCategory(quests, domain.CategoryCareer)
	if assert.Len(t, career, 1) {
		assert.Equal(t, "career-1", career[0].ID)
	}
}
