// Package host implements the watch firmware the face runs inside: the
// event loop, tick cadence, inactivity timeout, face switching and the
// home screen shown when the face hands control back.
package host

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hammamikhairi/sailconv/internal/domain"
	"github.com/hammamikhairi/sailconv/internal/logger"
)

// Face indexes.
const (
	FaceHome = iota
	FaceConverter
	faceCount
)

// homeTickFrequency is the tick rate of the home screen clock.
const homeTickFrequency = 1

// Face is what the movement drives. engine.Face satisfies it.
type Face interface {
	Activate(st *domain.State)
	Resign(st *domain.State)
	HandleEvent(ev domain.Event, st *domain.State) bool
}

// Option configures the movement.
type Option func(*Movement)

// WithTimeout sets how long the converter may sit idle before it is sent a
// timeout event. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(m *Movement) {
		m.timeout = d
	}
}

// WithButtonSound sets whether faces should beep on button presses.
func WithButtonSound(on bool) Option {
	return func(m *Movement) {
		m.sound = on
	}
}

// WithStartFace sets the face shown at boot.
func WithStartFace(index int) Option {
	return func(m *Movement) {
		m.start = index
	}
}

// WithClock replaces the time source of the home screen.
func WithClock(now func() time.Time) Option {
	return func(m *Movement) {
		m.now = now
	}
}

// WithQueueSize sets how many posted events may wait for the loop.
func WithQueueSize(n int) Option {
	return func(m *Movement) {
		m.events = make(chan domain.Event, n)
	}
}

// Compile-time interface check.
var _ domain.Host = (*Movement)(nil)

// Movement runs the event loop. Faces are only ever called from one
// goroutine at a time: the loop started by Start, or the caller of Dispatch.
type Movement struct {
	display domain.Display
	log     *logger.Logger
	timeout time.Duration
	sound   bool
	start   int
	now     func() time.Time
	events  chan domain.Event

	tickHz atomic.Int32

	// Guarded by mu; face callbacks run with mu held.
	mu      sync.Mutex
	face    Face
	state   *domain.State
	current int
	pending int // face requested by MoveToFace, -1 for none
	subsec  uint8
	booted  bool

	runMu   sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a movement drawing its home screen on display.
func New(display domain.Display, log *logger.Logger, opts ...Option) *Movement {
	m := &Movement{
		display: display,
		log:     log,
		timeout: time.Minute,
		sound:   true,
		start:   FaceConverter,
		now:     time.Now,
		events:  make(chan domain.Event, 32),
		pending: -1,
	}
	m.tickHz.Store(homeTickFrequency)
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Install sets the converter face and the state it works on. Must be called
// before Boot or Start.
func (m *Movement) Install(face Face, st *domain.State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.face = face
	m.state = st
}

// ── domain.Host ──────────────────────────────────────────────────

// RequestTickFrequency changes the tick rate. Takes effect after the
// current event.
func (m *Movement) RequestTickFrequency(hz int) {
	if hz < 1 {
		hz = 1
	}
	if hz > 128 {
		hz = 128
	}
	m.tickHz.Store(int32(hz))
}

// MoveToFace switches faces once the current event has been handled.
// Only valid from inside a face callback.
func (m *Movement) MoveToFace(index int) {
	if index < 0 || index >= faceCount {
		m.log.Warn("move to unknown face %d ignored", index)
		return
	}
	m.pending = index
}

// DefaultHandler handles the buttons faces leave alone. Mode moves to the
// next face. Only valid from inside a face callback.
func (m *Movement) DefaultHandler(ev domain.Event) bool {
	switch ev.Kind {
	case domain.EventModeUp:
		m.pending = (m.current + 1) % faceCount
		return true
	case domain.EventLightDown:
		return true
	}
	return false
}

// ButtonShouldSound reports whether button tones are enabled.
func (m *Movement) ButtonShouldSound() bool { return m.sound }

// ── Event entry points ───────────────────────────────────────────

// TickFrequency returns the current tick rate in hertz.
func (m *Movement) TickFrequency() int { return int(m.tickHz.Load()) }

// Current returns the index of the face on screen.
func (m *Movement) Current() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Boot shows the start face. Called by Start; the script runner calls it
// directly. Booting twice is a no-op.
func (m *Movement) Boot() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.booted {
		return
	}
	m.booted = true
	m.current = FaceHome
	m.enter(m.start)
	m.settle()
}

// Post queues an event for the loop. Never blocks; drops the event when
// the queue is full.
func (m *Movement) Post(ev domain.Event) {
	select {
	case m.events <- ev:
	default:
		m.log.Warn("event queue full, dropped %s", ev.Kind)
	}
}

// Dispatch delivers one event synchronously and applies any face switch it
// caused. Non-tick events are stamped with the current subsecond.
func (m *Movement) Dispatch(ev domain.Event) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ev.Kind != domain.EventTick {
		ev.Subsecond = m.subsec
	}
	handled := m.deliver(ev)
	m.settle()
	return handled
}

// Tick advances the subsecond counter and delivers a tick.
func (m *Movement) Tick() {
	m.mu.Lock()
	hz := uint8(m.TickFrequency())
	m.subsec = (m.subsec + 1) % hz
	ev := domain.Event{Kind: domain.EventTick, Subsecond: m.subsec}
	m.mu.Unlock()
	m.Dispatch(ev)
}

// deliver routes ev to the face on screen. Requires mu.
func (m *Movement) deliver(ev domain.Event) bool {
	if m.current == FaceConverter && m.face != nil {
		m.log.Debug("event %s (subsec=%d) on page %s", ev.Kind, ev.Subsecond, m.state.Page)
		return m.face.HandleEvent(ev, m.state)
	}
	return m.home(ev)
}

// settle applies face switches requested during the last event. Requires mu.
func (m *Movement) settle() {
	for m.pending >= 0 {
		next := m.pending
		m.pending = -1
		if next == m.current {
			continue
		}
		m.leave()
		m.enter(next)
	}
}

func (m *Movement) leave() {
	if m.current == FaceConverter && m.face != nil {
		m.face.Resign(m.state)
	}
}

func (m *Movement) enter(index int) {
	m.current = index
	m.subsec = 0
	m.log.Info("face %d on screen", index)
	if index == FaceConverter && m.face != nil {
		m.face.Activate(m.state)
		m.face.HandleEvent(domain.Event{Kind: domain.EventActivate}, m.state)
		return
	}
	m.RequestTickFrequency(homeTickFrequency)
	m.drawHome()
}

// home is the built-in clock face.
func (m *Movement) home(ev domain.Event) bool {
	switch ev.Kind {
	case domain.EventTick, domain.EventActivate:
		m.drawHome()
		return true
	}
	return m.DefaultHandler(ev)
}

func (m *Movement) drawHome() {
	m.display.Clear()
	m.display.TextWithFallback(domain.PositionTop, "SAIL", "SA")
	m.display.Text(domain.PositionBottom, m.now().Format("150405"))
}

// ── Loop ─────────────────────────────────────────────────────────

// Start boots the watch and runs the event loop in the background.
// Non-blocking.
func (m *Movement) Start(ctx context.Context) {
	m.runMu.Lock()
	defer m.runMu.Unlock()

	if m.running {
		m.log.Warn("movement already running")
		return
	}

	childCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.running = true
	m.done = make(chan struct{})

	m.Boot()
	go m.loop(childCtx, m.done)

	m.log.Info("movement started (timeout=%s, sound=%t)", m.timeout, m.sound)
}

// Stop shuts the loop down and waits for it to exit.
func (m *Movement) Stop() {
	m.runMu.Lock()
	defer m.runMu.Unlock()

	if !m.running {
		return
	}

	m.cancel()
	<-m.done
	m.running = false
	m.log.Info("movement stopped")
}

func (m *Movement) loop(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	hz := m.TickFrequency()
	ticker := time.NewTicker(time.Second / time.Duration(hz))
	defer ticker.Stop()

	var idle *time.Timer
	var idleC <-chan time.Time
	armIdle := func() {
		if m.timeout <= 0 {
			return
		}
		if idle == nil {
			idle = time.NewTimer(m.timeout)
		} else {
			idle.Stop()
			idle.Reset(m.timeout)
		}
		idleC = idle.C
	}
	armIdle()
	defer func() {
		if idle != nil {
			idle.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-m.events:
			m.Dispatch(ev)
			if ev.Kind.IsButton() {
				armIdle()
			}
		case <-ticker.C:
			m.Tick()
		case <-idleC:
			idleC = nil
			if m.Current() == FaceConverter {
				m.Dispatch(domain.Event{Kind: domain.EventTimeout})
			}
		}

		if next := m.TickFrequency(); next != hz {
			hz = next
			ticker.Reset(time.Second / time.Duration(hz))
			m.log.Debug("tick frequency now %dHz", hz)
		}
	}
}
