package domain

import (
	"math"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Step is a single ordered step of a main quest. Steps are monotonic:
// once completed they never revert except through a full main-quest reset.
type Step struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// MainQuestStepCount is the number of steps every main quest definition
// carries. The content loader enforces it; runtime code works with whatever
// length the slice has.
const MainQuestStepCount = 20

// MainQuest is a long-running, non-recurring goal broken into ordered steps.
// XPReward is solely the one-time completion bonus; it is unrelated to the
// fixed per-step award.
type MainQuest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	XPReward    int64  `json:"xp_reward"`
	Category    string `json:"category"`
	Steps       []Step `json:"steps"`
}

// CompletedSteps returns the number of completed steps.
func (q *MainQuest) CompletedSteps() int {
	count := 0
	for _, s := range q.Steps {
		if s.Completed {
			count++
		}
	}
	return count
}

// Progress returns the rounded completion percentage. Steps are authoritative;
// progress is always recomputed, never stored.
func (q *MainQuest) Progress() int {
	if len(q.Steps) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(q.CompletedSteps()) / float64(len(q.Steps))))
}

// IsComplete reports whether every step of the quest is completed.
func (q *MainQuest) IsComplete() bool {
	return len(q.Steps) > 0 && q.CompletedSteps() == len(q.Steps)
}

// Step returns the step with the given id, or nil if absent.
func (q *MainQuest) Step(stepID string) *Step {
	for i := range q.Steps {
		if q.Steps[i].ID == stepID {
			return &q.Steps[i]
		}
	}
	return nil
}

// DailyQuest is a recurring single-completion task, re-armed once per
// cutover cycle by the daily reset check.
type DailyQuest struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	XPReward  int64  `json:"xp_reward"`
	Completed bool   `json:"completed"`
	Category  string `json:"category"`
}

// Quest categories. CategoryAll is the filter sentinel matching everything.
const (
	CategoryAll        = "all"
	CategoryMental     = "mental"
	CategoryPhysical   = "physical"
	CategoryCareer     = "career"
	CategorySocial     = "social"
	CategoryCreativity = "creativity"
)

// ValidCategories lists every assignable quest category (excludes the sentinel).
var ValidCategories = []string{
	CategoryMental,
	CategoryPhysical,
	CategoryCareer,
	CategorySocial,
	CategoryCreativity,
}

var categoryTitler = cases.Title(language.English)

// CategoryLabel returns the display form of a category ("physical" becomes
// "Physical"). Categories are stored lowercase; labels are derived, never
// persisted.
func CategoryLabel(category string) string {
	return categoryTitler.String(category)
}
