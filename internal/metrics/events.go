package metrics

import (
	"context"

	"github.com/cwilder/lifequest/internal/domain"
	"github.com/cwilder/lifequest/internal/event"
	"github.com/cwilder/lifequest/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.Type(domain.EventTypeXPAwarded),
		event.Type(domain.EventTypeDailyQuestCompleted),
		event.Type(domain.EventTypeStepCompleted),
		event.Type(domain.EventTypeQuestCompleted),
		event.Type(domain.EventTypeDailyResetComplete),
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.Type(domain.EventTypeXPAwarded):
		payload, ok := evt.Payload.(event.XPAwardedPayloadV1)
		if !ok {
			log.Debug(LogMsgEventPayloadUnknown, "type", evt.Type)
			return nil
		}
		XPAwarded.WithLabelValues(payload.Source).Add(float64(payload.Amount))

	case event.Type(domain.EventTypeDailyQuestCompleted):
		DailyQuestsCompleted.Inc()

	case event.Type(domain.EventTypeStepCompleted):
		StepsCompleted.Inc()

	case event.Type(domain.EventTypeQuestCompleted):
		QuestsCompleted.Inc()

	case event.Type(domain.EventTypeDailyResetComplete):
		DailyResets.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
