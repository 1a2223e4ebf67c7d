package directive

import (
	"testing"

	"github.com/mercato-app/homefeed/app/bus"
	"github.com/mercato-app/homefeed/app/store"
)

type recordingAnalytics struct {
	events []string
}

func (r *recordingAnalytics) CustomEvent(name string) {
	r.events = append(r.events, name)
}

func TestApplier_StoreEffects(t *testing.T) {
	priorities := store.NewMemoryStore()
	applier := NewApplier(priorities, bus.New(), &recordingAnalytics{})

	applier.Run([]Effect{{Kind: EffectStorePriority, Value: "featured, sale"}})

	val, _ := priorities.Get()
	if val != "featured, sale" {
		t.Errorf("Expected stored hint, got %q", val)
	}

	applier.Run([]Effect{{Kind: EffectClearPriority}})

	val, _ = priorities.Get()
	if val != "" {
		t.Errorf("Expected cleared hint, got %q", val)
	}
}

func TestApplier_SignalEffects(t *testing.T) {
	signals := bus.New()
	var received []bus.Signal
	for _, s := range []bus.Signal{bus.SignalDefaultExperience, bus.SignalContentCardExperience, bus.SignalReorder} {
		signal := s
		signals.Subscribe(signal, func() { received = append(received, signal) })
	}

	applier := NewApplier(store.NewMemoryStore(), signals, &recordingAnalytics{})

	applier.Run([]Effect{
		{Kind: EffectNotifyDefaultExperience},
		{Kind: EffectNotifyReorder},
		{Kind: EffectNotifyContentCardExperience},
	})

	expected := []bus.Signal{bus.SignalDefaultExperience, bus.SignalReorder, bus.SignalContentCardExperience}
	if len(received) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, received)
	}
	for i := range expected {
		if received[i] != expected[i] {
			t.Errorf("Signal %d: expected %s, got %s", i, expected[i], received[i])
		}
	}
}

func TestApplier_LogEventEffect(t *testing.T) {
	analytics := &recordingAnalytics{}
	applier := NewApplier(store.NewMemoryStore(), bus.New(), analytics)

	applier.Run([]Effect{{Kind: EffectLogEvent, Value: "push_opened"}})

	if len(analytics.events) != 1 || analytics.events[0] != "push_opened" {
		t.Errorf("Expected custom event logged, got %v", analytics.events)
	}
}
