package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cwilder/lifequest/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	ID      string      `json:"id"`
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Typed event payloads for type safety

// XPAwardedPayloadV1 is the typed payload for XP award events. Source tells
// daily-quest awards, per-step awards and completion bonuses apart so a
// consumer can assert exactly one bonus per quest lifetime.
type XPAwardedPayloadV1 struct {
	Amount    int64  `json:"amount"`
	Source    string `json:"source"`
	QuestID   string `json:"quest_id,omitempty"`
	StepID    string `json:"step_id,omitempty"`
	DailyID   int    `json:"daily_id,omitempty"`
	NewTotal  int64  `json:"new_total"`
	Timestamp int64  `json:"timestamp"`
}

// DailyQuestCompletedPayloadV1 is the typed payload for daily quest completions
type DailyQuestCompletedPayloadV1 struct {
	QuestID   int    `json:"quest_id"`
	Title     string `json:"title"`
	XPReward  int64  `json:"xp_reward"`
	Timestamp int64  `json:"timestamp"`
}

// StepCompletedPayloadV1 is the typed payload for main quest step completions
type StepCompletedPayloadV1 struct {
	QuestID   string `json:"quest_id"`
	StepID    string `json:"step_id"`
	Progress  int    `json:"progress"`
	Timestamp int64  `json:"timestamp"`
}

// QuestCompletedPayloadV1 is the typed payload for first-time main quest completions
type QuestCompletedPayloadV1 struct {
	QuestID   string `json:"quest_id"`
	Title     string `json:"title"`
	Bonus     int64  `json:"bonus"`
	Timestamp int64  `json:"timestamp"`
}

// DailyResetCompletePayloadV1 is the typed payload for daily reset complete events
type DailyResetCompletePayloadV1 struct {
	ResetDate     string `json:"reset_date"`
	QuestsRearmed int    `json:"quests_rearmed"`
	Timestamp     int64  `json:"timestamp"`
}

// Type-safe event constructors

func newEvent(t Type, payload interface{}) Event {
	return Event{
		ID:      uuid.NewString(),
		Version: EventSchemaVersion,
		Type:    t,
		Payload: payload,
	}
}

// NewXPAwardedEvent creates a new XP awarded event
func NewXPAwardedEvent(amount int64, source string, newTotal int64) Event {
	return newEvent(Type(domain.EventTypeXPAwarded), XPAwardedPayloadV1{
		Amount:    amount,
		Source:    source,
		NewTotal:  newTotal,
		Timestamp: time.Now().Unix(),
	})
}

// NewStepXPAwardedEvent creates an XP awarded event attributed to a step completion
func NewStepXPAwardedEvent(amount int64, questID, stepID string, newTotal int64) Event {
	return newEvent(Type(domain.EventTypeXPAwarded), XPAwardedPayloadV1{
		Amount:    amount,
		Source:    domain.XPSourceStep,
		QuestID:   questID,
		StepID:    stepID,
		NewTotal:  newTotal,
		Timestamp: time.Now().Unix(),
	})
}

// NewBonusXPAwardedEvent creates an XP awarded event attributed to a quest completion bonus
func NewBonusXPAwardedEvent(amount int64, questID string, newTotal int64) Event {
	return newEvent(Type(domain.EventTypeXPAwarded), XPAwardedPayloadV1{
		Amount:    amount,
		Source:    domain.XPSourceCompletionBonus,
		QuestID:   questID,
		NewTotal:  newTotal,
		Timestamp: time.Now().Unix(),
	})
}

// NewDailyXPAwardedEvent creates an XP awarded event attributed to a daily quest
func NewDailyXPAwardedEvent(amount int64, dailyID int, newTotal int64) Event {
	return newEvent(Type(domain.EventTypeXPAwarded), XPAwardedPayloadV1{
		Amount:    amount,
		Source:    domain.XPSourceDailyQuest,
		DailyID:   dailyID,
		NewTotal:  newTotal,
		Timestamp: time.Now().Unix(),
	})
}

// NewDailyQuestCompletedEvent creates a new daily quest completed event
func NewDailyQuestCompletedEvent(questID int, title string, xpReward int64) Event {
	return newEvent(Type(domain.EventTypeDailyQuestCompleted), DailyQuestCompletedPayloadV1{
		QuestID:   questID,
		Title:     title,
		XPReward:  xpReward,
		Timestamp: time.Now().Unix(),
	})
}

// NewStepCompletedEvent creates a new step completed event
func NewStepCompletedEvent(questID, stepID string, progress int) Event {
	return newEvent(Type(domain.EventTypeStepCompleted), StepCompletedPayloadV1{
		QuestID:   questID,
		StepID:    stepID,
		Progress:  progress,
		Timestamp: time.Now().Unix(),
	})
}

// NewQuestCompletedEvent creates a new quest completed event
func NewQuestCompletedEvent(questID, title string, bonus int64) Event {
	return newEvent(Type(domain.EventTypeQuestCompleted), QuestCompletedPayloadV1{
		QuestID:   questID,
		Title:     title,
		Bonus:     bonus,
		Timestamp: time.Now().Unix(),
	})
}

// NewDailyResetCompleteEvent creates a new daily reset complete event
func NewDailyResetCompleteEvent(resetDate string, questsRearmed int) Event {
	return newEvent(Type(domain.EventTypeDailyResetComplete), DailyResetCompletePayloadV1{
		ResetDate:     resetDate,
		QuestsRearmed: questsRearmed,
		Timestamp:     time.Now().Unix(),
	})
}

// MainQuestsResetPayloadV1 is the typed payload for full main quest resets
type MainQuestsResetPayloadV1 struct {
	QuestsReset int   `json:"quests_reset"`
	Timestamp   int64 `json:"timestamp"`
}

// NewMainQuestsResetEvent creates a new main quests reset event
func NewMainQuestsResetEvent(questsReset int) Event {
	return newEvent(Type(domain.EventTypeMainQuestsReset), MainQuestsResetPayloadV1{
		QuestsReset: questsReset,
		Timestamp:   time.Now().Unix(),
	})
}

// ProfileUpdatedPayloadV1 is the typed payload for profile updates
type ProfileUpdatedPayloadV1 struct {
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	Timestamp int64  `json:"timestamp"`
}

// NewProfileUpdatedEvent creates a new profile updated event
func NewProfileUpdatedEvent(name, avatar string) Event {
	return newEvent(Type(domain.EventTypeProfileUpdated), ProfileUpdatedPayloadV1{
		Name:      name,
		Avatar:    avatar,
		Timestamp: time.Now().Unix(),
	})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously;
// a failing handler does not stop the others.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
