package directive

// Push payload fields recognized by the handler. All three are
// optional and independent; absence is not an error.
const (
	FieldRefreshHome  = "refresh_home"
	FieldTilePriority = "home_tile_priority"
	FieldEventName    = "event_name"
)

// refresh_home values that trigger an experience switch. Any other
// non-absent value has no effect.
const (
	refreshDefault     = "Default"
	refreshContentCard = "Content Card"
)

type EffectKind string

const (
	EffectClearPriority               EffectKind = "clear_priority"
	EffectNotifyDefaultExperience     EffectKind = "notify_default_experience"
	EffectNotifyContentCardExperience EffectKind = "notify_content_card_experience"
	EffectStorePriority               EffectKind = "store_priority"
	EffectNotifyReorder               EffectKind = "notify_reorder"
	EffectLogEvent                    EffectKind = "log_event"
)

// Effect is one action a push payload asks for. Value is set for
// EffectStorePriority (the hint) and EffectLogEvent (the event name).
type Effect struct {
	Kind  EffectKind `json:"kind"`
	Value string     `json:"value,omitempty"`
}

// Handler interprets remote-push-delivered directives.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Run maps a push payload to the effects it requests. Only string
// field values are honored; a non-string value is treated as absent.
//
// A priority write normally also requests a reorder, but not when
// refresh_home was present: the experience-switch notification already
// implies a refresh, and a second signal would be redundant.
func (h *Handler) Run(payload map[string]any) []Effect {
	var effects []Effect

	refresh, hasRefresh := stringField(payload, FieldRefreshHome)
	switch {
	case !hasRefresh:
	case refresh == refreshDefault:
		effects = append(effects,
			Effect{Kind: EffectClearPriority},
			Effect{Kind: EffectNotifyDefaultExperience})
	case refresh == refreshContentCard:
		effects = append(effects, Effect{Kind: EffectNotifyContentCardExperience})
	}

	if priority, ok := stringField(payload, FieldTilePriority); ok {
		effects = append(effects, Effect{Kind: EffectStorePriority, Value: priority})
		if !hasRefresh {
			effects = append(effects, Effect{Kind: EffectNotifyReorder})
		}
	}

	if name, ok := stringField(payload, FieldEventName); ok {
		effects = append(effects, Effect{Kind: EffectLogEvent, Value: name})
	}

	return effects
}

func stringField(payload map[string]any, key string) (string, bool) {
	value, ok := payload[key].(string)
	return value, ok
}
