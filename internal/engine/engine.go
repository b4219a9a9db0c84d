// Package engine implements the conversion face: the page state machine
// driven by host events, and the decisions about what to display and play.
package engine

import (
	"time"

	"github.com/hammamikhairi/sailconv/internal/catalog"
	"github.com/hammamikhairi/sailconv/internal/domain"
	"github.com/hammamikhairi/sailconv/internal/logger"
	"github.com/hammamikhairi/sailconv/internal/storage"
)

// DefaultTickFrequency is the tick rate requested on activation. Four ticks
// a second gives a two-hertz blink and hold-repeat.
const DefaultTickFrequency = 4

// Option configures the face.
type Option func(*Face)

// WithCatalog replaces the unit tables.
func WithCatalog(c *catalog.Catalog) Option {
	return func(f *Face) {
		f.catalog = c
	}
}

// WithTickFrequency sets the tick rate requested from the host on activation.
func WithTickFrequency(hz int) Option {
	return func(f *Face) {
		f.tickHz = hz
	}
}

// WithActivationJingle turns the melody played on activation on or off.
func WithActivationJingle(on bool) Option {
	return func(f *Face) {
		f.jingle = on
	}
}

// WithSlots sets the store that owns per-slot state.
func WithSlots(s *storage.SlotStore) Option {
	return func(f *Face) {
		f.slots = s
	}
}

// Face is the conversion face. It holds no per-instance state of its own:
// every operation works on the *domain.State it is given.
type Face struct {
	display domain.Display
	buzzer  domain.Buzzer
	host    domain.Host
	log     *logger.Logger
	catalog *catalog.Catalog
	slots   *storage.SlotStore
	tickHz  int
	jingle  bool
}

// New creates a face with the given collaborators and options.
func New(display domain.Display, buzzer domain.Buzzer, host domain.Host, log *logger.Logger, opts ...Option) *Face {
	f := &Face{
		display: display,
		buzzer:  buzzer,
		host:    host,
		log:     log,
		catalog: catalog.Default(),
		tickHz:  DefaultTickFrequency,
		jingle:  true,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.slots == nil {
		f.slots = storage.NewSlotStore(log)
	}
	return f
}

// Catalog returns the unit tables the face converts with.
func (f *Face) Catalog() *catalog.Catalog { return f.catalog }

// Setup returns the state for a face slot, allocated and zeroed on first use.
func (f *Face) Setup(slot uint8) *domain.State {
	return f.slots.Setup(slot).State
}

// Activate resets the state and asks the host for the face's tick rate.
func (f *Face) Activate(st *domain.State) {
	f.host.RequestTickFrequency(f.tickHz)
	st.Reset()
	f.log.Debug("activated (tick=%dHz)", f.tickHz)
}

// Resign is called when the face leaves the screen. Nothing to clean up.
func (f *Face) Resign(st *domain.State) {
	f.log.Debug("resigned on page %s", st.Page)
}

// HandleEvent processes one host event. It returns false only when the
// host's default handler declined an event the face does not consume.
func (f *Face) HandleEvent(ev domain.Event, st *domain.State) bool {
	switch ev.Kind {
	case domain.EventActivate:
		if f.jingle {
			f.buzzer.PlaySequence(activationJingle)
		}
		f.render(st, ev.Subsecond)

	case domain.EventTick:
		if st.Page == domain.PageInput {
			f.render(st, ev.Subsecond)
			if st.Held && ev.Subsecond%2 == 1 {
				st.Input.Increment()
			}
		}

	case domain.EventAlarmUp:
		f.Cycle(st)
		if st.Page != domain.PageResult {
			f.render(st, ev.Subsecond)
		}
		st.Held = false

	case domain.EventLightDown:
		// Acted on at release.

	case domain.EventLightUp:
		f.Advance(st, ev.Subsecond)
		st.Held = false

	case domain.EventLightLongPress:
		if f.Back(st) {
			f.render(st, ev.Subsecond)
			f.beep(domain.NoteC8)
			st.Held = false
		}

	case domain.EventAlarmLongPress:
		if st.Page == domain.PageInput {
			st.Held = true
		}

	case domain.EventAlarmLongUp:
		st.Held = false

	case domain.EventTimeout:
		f.host.MoveToFace(0)

	default:
		return f.host.DefaultHandler(ev)
	}

	return true
}

// beep plays a short button tone if the host allows button sounds.
func (f *Face) beep(note domain.Note) {
	if f.host.ButtonShouldSound() {
		f.buzzer.PlayNote(note, 50*time.Millisecond)
	}
}
