package domain

// EventKind classifies what the host delivered to the face.
type EventKind int

const (
	EventOther EventKind = iota
	EventActivate
	EventTick
	EventLightDown
	EventLightUp        // advance
	EventLightLongPress // back
	EventAlarmUp        // cycle option / increment digit
	EventAlarmLongPress // start hold-to-repeat
	EventAlarmLongUp    // stop hold-to-repeat
	EventModeUp
	EventTimeout
)

// String returns a human-readable event kind.
func (k EventKind) String() string {
	switch k {
	case EventActivate:
		return "activate"
	case EventTick:
		return "tick"
	case EventLightDown:
		return "light_down"
	case EventLightUp:
		return "light_up"
	case EventLightLongPress:
		return "light_long_press"
	case EventAlarmUp:
		return "alarm_up"
	case EventAlarmLongPress:
		return "alarm_long_press"
	case EventAlarmLongUp:
		return "alarm_long_up"
	case EventModeUp:
		return "mode_up"
	case EventTimeout:
		return "timeout"
	default:
		return "other"
	}
}

// IsButton reports whether the event comes from a user pressing something.
func (k EventKind) IsButton() bool {
	switch k {
	case EventLightDown, EventLightUp, EventLightLongPress,
		EventAlarmUp, EventAlarmLongPress, EventAlarmLongUp, EventModeUp:
		return true
	}
	return false
}

// Event is a single host event.
type Event struct {
	Kind      EventKind
	Subsecond uint8 // tick counter within the current second
}

var eventNames = map[string]EventKind{
	"activate":         EventActivate,
	"tick":             EventTick,
	"light_down":       EventLightDown,
	"light_up":         EventLightUp,
	"light_long_press": EventLightLongPress,
	"alarm_up":         EventAlarmUp,
	"alarm_long_press": EventAlarmLongPress,
	"alarm_long_up":    EventAlarmLongUp,
	"mode_up":          EventModeUp,
	"timeout":          EventTimeout,
	"other":            EventOther,
}

// EventFromString converts a snake_case event name to an EventKind.
// Returns EventOther for unrecognized names.
func EventFromString(name string) EventKind {
	if k, ok := eventNames[name]; ok {
		return k
	}
	return EventOther
}
