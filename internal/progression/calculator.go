package progression

import (
	"fmt"
)

// MaxLevel is the cap of the progression curve. XP beyond the table's total
// cost has no further effect on level.
const MaxLevel = 100

// Calculator derives level, progress and reward information from a cumulative
// XP total. All methods are pure; the cost table is fixed at construction.
//
// costs[i] is the XP required to advance from level i+1 to level i+2.
type Calculator struct {
	costs []int64
}

// NewCalculator builds a calculator from a level cost table. The table must
// contain exactly MaxLevel positive entries.
func NewCalculator(costs []int64) (*Calculator, error) {
	if len(costs) != MaxLevel {
		return nil, fmt.Errorf("level table must have %d entries, got %d", MaxLevel, len(costs))
	}
	for i, c := range costs {
		if c <= 0 {
			return nil, fmt.Errorf("level table entry %d must be positive, got %d", i, c)
		}
	}
	owned := make([]int64, len(costs))
	copy(owned, costs)
	return &Calculator{costs: owned}, nil
}

// NewDefaultCalculator builds a calculator over the fixed production curve.
func NewDefaultCalculator() *Calculator {
	c, err := NewCalculator(DefaultLevelTable())
	if err != nil {
		// The default table is a compile-time constant; this cannot happen.
		panic(err)
	}
	return c
}

// Level returns the level for the given XP total, in [1, MaxLevel].
// Negative XP is treated as 0.
func (c *Calculator) Level(xp int64) int {
	if xp < 0 {
		xp = 0
	}
	cumulative := int64(0)
	for i, cost := range c.costs {
		cumulative += cost
		if cumulative > xp {
			return i + 1
		}
	}
	return MaxLevel
}

// cumulativeCostThrough returns the total XP consumed reaching the given
// level, i.e. the sum of costs[0..level-2].
func (c *Calculator) cumulativeCostThrough(level int) int64 {
	cumulative := int64(0)
	for i := 0; i < level-1 && i < len(c.costs); i++ {
		cumulative += c.costs[i]
	}
	return cumulative
}

// XPIntoCurrentLevel returns how much XP has been earned within the current level.
func (c *Calculator) XPIntoCurrentLevel(xp int64) int64 {
	if xp < 0 {
		xp = 0
	}
	level := c.Level(xp)
	if level >= MaxLevel {
		return xp - c.cumulativeCostThrough(MaxLevel)
	}
	return xp - c.cumulativeCostThrough(level)
}

// XPNeededForCurrentLevel returns the full cost of the current level.
// Returns 0 at the level cap.
func (c *Calculator) XPNeededForCurrentLevel(xp int64) int64 {
	level := c.Level(xp)
	if level >= MaxLevel {
		return 0
	}
	return c.costs[level-1]
}

// XPToNextLevel returns the remaining XP to the next level, 0 at the cap.
func (c *Calculator) XPToNextLevel(xp int64) int64 {
	level := c.Level(xp)
	if level >= MaxLevel {
		return 0
	}
	remaining := c.costs[level-1] - c.XPIntoCurrentLevel(xp)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// LevelProgressPercent returns the completion percentage of the current
// level, clamped to [0, 100]. At the level cap it is always 100.
func (c *Calculator) LevelProgressPercent(xp int64) float64 {
	level := c.Level(xp)
	if level >= MaxLevel {
		return 100
	}
	pct := 100 * float64(c.XPIntoCurrentLevel(xp)) / float64(c.costs[level-1])
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// Summary bundles the derived progression tuple for display.
type Summary struct {
	Level           int     `json:"level"`
	ProgressPercent float64 `json:"progress_percent"`
	XPIntoLevel     int64   `json:"xp_into_level"`
	XPNeededForLvl  int64   `json:"xp_needed_for_level"`
	XPToNextLevel   int64   `json:"xp_to_next_level"`
	Reward          string  `json:"reward"`
}

// Summarize derives the full display tuple for the given XP total.
func (c *Calculator) Summarize(xp int64) Summary {
	level := c.Level(xp)
	return Summary{
		Level:           level,
		ProgressPercent: c.LevelProgressPercent(xp),
		XPIntoLevel:     c.XPIntoCurrentLevel(xp),
		XPNeededForLvl:  c.XPNeededForCurrentLevel(xp),
		XPToNextLevel:   c.XPToNextLevel(xp),
		Reward:          RewardForLevel(level),
	}
}
