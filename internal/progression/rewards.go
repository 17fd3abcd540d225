package progression

// milestoneRewards maps milestone levels to their cosmetic reward. Rewards are
// defined densely for the first ten levels, every fifth level up to 50, then
// every tenth level up to the cap.
var milestoneRewards = map[int]string{
	1:   "Wooden Frame",
	2:   "Grey Title Banner",
	3:   "Bronze Frame",
	4:   "Apprentice Badge",
	5:   "Green Title Banner",
	6:   "Silver Frame",
	7:   "Journeyman Badge",
	8:   "Blue Title Banner",
	9:   "Gold Frame",
	10:  "Adept Badge",
	15:  "Purple Title Banner",
	20:  "Platinum Frame",
	25:  "Expert Badge",
	30:  "Crimson Title Banner",
	35:  "Obsidian Frame",
	40:  "Veteran Badge",
	45:  "Radiant Title Banner",
	50:  "Diamond Frame",
	60:  "Master Badge",
	70:  "Celestial Frame",
	80:  "Grandmaster Badge",
	90:  "Mythic Title Banner",
	100: "Eternal Frame",
}

// RewardForLevel returns the reward for the nearest milestone at or below the
// given level. Rewards represent cumulative achievement: a player keeps the
// most recent milestone's reward until the next one is reached, so the lookup
// is intentionally nearest-below, not nearest. Levels below 1 clamp to 1.
func RewardForLevel(level int) string {
	if level < 1 {
		level = 1
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	for l := level; l >= 1; l-- {
		if reward, ok := milestoneRewards[l]; ok {
			return reward
		}
	}
	// Level 1 is always a milestone; the scan cannot fall through.
	return milestoneRewards[1]
}

// MilestoneLevels returns the set of levels that define rewards, in no
// particular order. Exposed for the UI's reward track display.
func MilestoneLevels() []int {
	levels := make([]int, 0, len(milestoneRewards))
	for l := range milestoneRewards {
		levels = append(levels, l)
	}
	return levels
}
