package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwilder/lifequest/internal/config"
	"github.com/cwilder/lifequest/internal/domain"
)

// Pack is the loaded quest content: the definition tables the engine runs
// against. Content carries no completion state; every Completed flag is
// forced false on load and only the persisted aggregate can set it.
type Pack struct {
	DailyQuests []domain.DailyQuest
	MainQuests  []domain.MainQuest
}

type dailyQuestsFile struct {
	Quests []domain.DailyQuest `json:"quests"`
}

type mainQuestsFile struct {
	Quests []domain.MainQuest `json:"quests"`
}

// Load reads and validates both quest tables from dir. A malformed table
// means a broken deployment and aborts startup.
func Load(dir string) (*Pack, error) {
	dailies, err := loadDailyQuests(filepath.Join(dir, config.DailyQuestsFileName))
	if err != nil {
		return nil, fmt.Errorf("load daily quests: %w", err)
	}

	mains, err := loadMainQuests(filepath.Join(dir, config.MainQuestsFileName))
	if err != nil {
		return nil, fmt.Errorf("load main quests: %w", err)
	}

	return &Pack{DailyQuests: dailies, MainQuests: mains}, nil
}

func loadDailyQuests(path string) ([]domain.DailyQuest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file dailyQuestsFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	if len(file.Quests) == 0 {
		return nil, fmt.Errorf("%s: no quests defined", path)
	}

	seen := make(map[int]struct{}, len(file.Quests))
	for i := range file.Quests {
		q := &file.Quests[i]
		if q.ID <= 0 {
			return nil, fmt.Errorf("daily quest %q: id must be positive", q.Title)
		}
		if _, dup := seen[q.ID]; dup {
			return nil, fmt.Errorf("daily quest id %d: duplicate", q.ID)
		}
		seen[q.ID] = struct{}{}
		if strings.TrimSpace(q.Title) == "" {
			return nil, fmt.Errorf("daily quest id %d: empty title", q.ID)
		}
		if q.XPReward <= 0 {
			return nil, fmt.Errorf("daily quest id %d: reward must be positive", q.ID)
		}
		if err := validCategory(q.Category); err != nil {
			return nil, fmt.Errorf("daily quest id %d: %w", q.ID, err)
		}
		q.Completed = false
	}
	return file.Quests, nil
}

func loadMainQuests(path string) ([]domain.MainQuest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file mainQuestsFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	if len(file.Quests) == 0 {
		return nil, fmt.Errorf("%s: no quests defined", path)
	}

	seen := make(map[string]struct{}, len(file.Quests))
	for i := range file.Quests {
		q := &file.Quests[i]
		if strings.TrimSpace(q.ID) == "" {
			return nil, fmt.Errorf("main quest %q: empty id", q.Title)
		}
		if _, dup := seen[q.ID]; dup {
			return nil, fmt.Errorf("main quest %q: duplicate id", q.ID)
		}
		seen[q.ID] = struct{}{}
		if strings.TrimSpace(q.Title) == "" {
			return nil, fmt.Errorf("main quest %q: empty title", q.ID)
		}
		if q.XPReward <= 0 {
			return nil, fmt.Errorf("main quest %q: reward must be positive", q.ID)
		}
		if err := validCategory(q.Category); err != nil {
			return nil, fmt.Errorf("main quest %q: %w", q.ID, err)
		}
		if len(q.Steps) != domain.MainQuestStepCount {
			return nil, fmt.Errorf("main quest %q: expected %d steps, got %d", q.ID, domain.MainQuestStepCount, len(q.Steps))
		}
		stepSeen := make(map[string]struct{}, len(q.Steps))
		for j := range q.Steps {
			step := &q.Steps[j]
			if strings.TrimSpace(step.ID) == "" {
				return nil, fmt.Errorf("main quest %q: step %d has empty id", q.ID, j)
			}
			if _, dup := stepSeen[step.ID]; dup {
				return nil, fmt.Errorf("main quest %q: duplicate step id %q", q.ID, step.ID)
			}
			stepSeen[step.ID] = struct{}{}
			step.Completed = false
		}
	}
	return file.Quests, nil
}

func validCategory(category string) error {
	for _, valid := range domain.ValidCategories {
		if category == valid {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", domain.ErrInvalidCategory, category)
}
