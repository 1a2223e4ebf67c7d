package directive

import (
	"log/slog"

	"github.com/mercato-app/homefeed/app/bus"
	"github.com/mercato-app/homefeed/app/store"
)

// AnalyticsLogger is the slice of the analytics boundary the applier
// needs for custom events.
type AnalyticsLogger interface {
	CustomEvent(name string)
}

// Applier carries effects out against the priority store, the signal
// bus and the analytics boundary. Store failures are logged and do not
// stop the remaining effects.
type Applier struct {
	priorities store.PriorityStore
	signals    *bus.Bus
	analytics  AnalyticsLogger
}

func NewApplier(priorities store.PriorityStore, signals *bus.Bus, analytics AnalyticsLogger) *Applier {
	return &Applier{
		priorities: priorities,
		signals:    signals,
		analytics:  analytics,
	}
}

func (a *Applier) Run(effects []Effect) {
	for _, effect := range effects {
		switch effect.Kind {
		case EffectClearPriority:
			if err := a.priorities.Clear(); err != nil {
				slog.Error("Failed to clear priority hint", "error", err)
			}
		case EffectStorePriority:
			if err := a.priorities.Set(effect.Value); err != nil {
				slog.Error("Failed to store priority hint", "value", effect.Value, "error", err)
			}
		case EffectNotifyDefaultExperience:
			a.signals.Publish(bus.SignalDefaultExperience)
		case EffectNotifyContentCardExperience:
			a.signals.Publish(bus.SignalContentCardExperience)
		case EffectNotifyReorder:
			a.signals.Publish(bus.SignalReorder)
		case EffectLogEvent:
			a.analytics.CustomEvent(effect.Value)
		default:
			slog.Error("Unknown effect", "kind", effect.Kind)
		}
	}
}
