// Package metrics turns session events into OpenTelemetry instruments. The
// orchestrator never calls it directly; it subscribes to the event bus.
package metrics

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/KirkDiggler/rpg-session-api/internal/entities"
)

const meterName = "github.com/KirkDiggler/rpg-session-api"

// Metrics holds the session instruments
type Metrics struct {
	// Events counts every session event by type
	Events metric.Int64Counter

	// Transitions counts lifecycle operations by operation and target status
	Transitions metric.Int64Counter

	// LiveSessions tracks sessions that are ongoing or paused
	LiveSessions metric.Int64UpDownCounter

	Turns        metric.Int64Counter
	Attacks      metric.Int64Counter
	Damage       metric.Int64Counter
	Defeats      metric.Int64Counter
	SavingThrows metric.Int64Counter
	DiceRolls    metric.Int64Counter
}

// NewMetrics creates the instruments on the given provider
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Events, err = m.Int64Counter("rpg_session.events",
		metric.WithDescription("Session events published, by event type."),
	); err != nil {
		return nil, err
	}
	if met.Transitions, err = m.Int64Counter("rpg_session.transitions",
		metric.WithDescription("Lifecycle transitions by operation and resulting status."),
	); err != nil {
		return nil, err
	}
	if met.LiveSessions, err = m.Int64UpDownCounter("rpg_session.live_sessions",
		metric.WithDescription("Sessions currently ongoing or paused."),
	); err != nil {
		return nil, err
	}
	if met.Turns, err = m.Int64Counter("rpg_session.turns",
		metric.WithDescription("Turns ended or postponed, by action."),
	); err != nil {
		return nil, err
	}
	if met.Attacks, err = m.Int64Counter("rpg_session.attacks",
		metric.WithDescription("Attacks resolved, by outcome."),
	); err != nil {
		return nil, err
	}
	if met.Damage, err = m.Int64Counter("rpg_session.damage",
		metric.WithDescription("Hit points of damage applied by attacks."),
		metric.WithUnit("{hp}"),
	); err != nil {
		return nil, err
	}
	if met.Defeats, err = m.Int64Counter("rpg_session.defeats",
		metric.WithDescription("Entities brought to 0 hp, by entity type."),
	); err != nil {
		return nil, err
	}
	if met.SavingThrows, err = m.Int64Counter("rpg_session.saving_throws",
		metric.WithDescription("Saving throws rolled, by outcome."),
	); err != nil {
		return nil, err
	}
	if met.DiceRolls, err = m.Int64Counter("rpg_session.dice_rolls",
		metric.WithDescription("Dice specs rolled inside sessions."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

var subscribed = []string{
	entities.EventSessionCreated,
	entities.EventSessionStatusChanged,
	entities.EventSessionDeleted,
	entities.EventTurnEnded,
	entities.EventTurnPostponed,
	entities.EventEntityAdded,
	entities.EventEntityRemoved,
	entities.EventEntityUpdated,
	entities.EventEntityDefeated,
	entities.EventAttackResolved,
	entities.EventSavingThrowRolled,
	entities.EventEffectApplied,
	entities.EventReactionChanged,
	entities.EventDiceRolled,
}

// Subscribe registers the metric handlers on bus and returns the
// subscription IDs
func (m *Metrics) Subscribe(bus events.EventBus) []string {
	ids := make([]string, 0, len(subscribed))
	for _, eventType := range subscribed {
		ids = append(ids, bus.SubscribeFunc(eventType, 100, m.handle))
	}
	return ids
}

func (m *Metrics) handle(ctx context.Context, event events.Event) error {
	eventType := event.Type()
	m.Events.Add(ctx, 1, metric.WithAttributes(attribute.String("type", eventType)))

	switch eventType {
	case entities.EventSessionStatusChanged:
		op := stringValue(event, entities.EventKeyOperation)
		from := stringValue(event, entities.EventKeyFromStatus)
		to := stringValue(event, entities.EventKeyToStatus)
		m.Transitions.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", op),
			attribute.String("status", to),
		))
		m.trackLive(ctx, from, to)

	case entities.EventSessionDeleted:
		m.trackLive(ctx, stringValue(event, entities.EventKeyFromStatus), "")

	case entities.EventTurnEnded:
		m.Turns.Add(ctx, 1, metric.WithAttributes(attribute.String("action", "end")))

	case entities.EventTurnPostponed:
		m.Turns.Add(ctx, 1, metric.WithAttributes(attribute.String("action", "postpone")))

	case entities.EventAttackResolved:
		outcome := "miss"
		if boolValue(event, entities.EventKeyHit) {
			outcome = "hit"
		}
		m.Attacks.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
		if damage := int32Value(event, entities.EventKeyDamage); damage > 0 {
			m.Damage.Add(ctx, int64(damage))
		}

	case entities.EventEntityDefeated:
		kind := "unknown"
		if target := event.Target(); target != nil {
			kind = target.GetType()
		}
		m.Defeats.Add(ctx, 1, metric.WithAttributes(attribute.String("entity_type", kind)))

	case entities.EventSavingThrowRolled:
		outcome := "fail"
		if boolValue(event, entities.EventKeySuccess) {
			outcome = "success"
		}
		m.SavingThrows.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))

	case entities.EventDiceRolled:
		m.DiceRolls.Add(ctx, 1)
	}

	return nil
}

func isLive(status string) bool {
	return status == string(entities.SessionStatusOngoing) || status == string(entities.SessionStatusPaused)
}

func (m *Metrics) trackLive(ctx context.Context, from, to string) {
	switch {
	case !isLive(from) && isLive(to):
		m.LiveSessions.Add(ctx, 1)
	case isLive(from) && !isLive(to):
		m.LiveSessions.Add(ctx, -1)
	}
}

func stringValue(event events.Event, key string) string {
	v, ok := event.Context().Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func boolValue(event events.Event, key string) bool {
	v, ok := event.Context().Get(key)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

func int32Value(event events.Event, key string) int32 {
	v, ok := event.Context().Get(key)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int32:
		return n
	case int:
		return int32(n)
	case int64:
		return int32(n)
	}
	return 0
}
