package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMainQuest_Progress(t *testing.T) {
	q := MainQuest{Steps: make([]Step, 20)}
	for i := range q.Steps {
		q.Steps[i] = Step{ID: "s", Text: "step"}
	}

	assert.Equal(t, 0, q.Progress())

	q.Steps[0].Completed = true
	assert.Equal(t, 5, q.Progress())

	// Rounding, not truncation: 7/20 is exactly 35, 1/3 rounds to 33.
	three := MainQuest{Steps: []Step{{Completed: true}, {}, {}}}
	assert.Equal(t, 33, three.Progress())

	two := MainQuest{Steps: []Step{{Completed: true}, {Completed: true}, {}}}
	assert.Equal(t, 67, two.Progress())
}

func TestMainQuest_IsComplete(t *testing.T) {
	empty := MainQuest{}
	assert.False(t, empty.IsComplete(), "a quest with no steps is never complete")
	assert.Equal(t, 0, empty.Progress())

	q := MainQuest{Steps: []Step{{Completed: true}, {Completed: true}}}
	assert.True(t, q.IsComplete())
}

func TestMainQuest_Step(t *testing.T) {
	q := MainQuest{Steps: []Step{{ID: "a"}, {ID: "b"}}}

	step := q.Step("b")
	assert.NotNil(t, step)

	// The pointer aliases the quest's own slice.
	step.Completed = true
	assert.True(t, q.Steps[1].Completed)

	assert.Nil(t, q.Step("ghost"))
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Physical", CategoryLabel(CategoryPhysical))
	assert.Equal(t, "Creativity", CategoryLabel(CategoryCreativity))
}
