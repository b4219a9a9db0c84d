package host

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/hammamikhairi/sailconv/internal/display"
	"github.com/hammamikhairi/sailconv/internal/domain"
	"github.com/hammamikhairi/sailconv/internal/engine"
	"github.com/hammamikhairi/sailconv/internal/logger"
	"github.com/hammamikhairi/sailconv/internal/tone"
)

var noon = time.Date(2026, 10, 18, 12, 34, 56, 0, time.UTC)

// rig wires a real face to a movement on an in-memory LCD.
type rig struct {
	lcd   *display.LCD
	mv    *Movement
	state *domain.State
}

func newRig(t *testing.T, opts ...Option) *rig {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	lcd := display.NewLCD(display.KindCustom)
	opts = append([]Option{WithClock(func() time.Time { return noon })}, opts...)
	mv := New(lcd, log, opts...)
	face := engine.New(lcd, tone.NewSilent(log), mv, log, engine.WithActivationJingle(false))
	st := face.Setup(1)
	mv.Install(face, st)
	return &rig{lcd: lcd, mv: mv, state: st}
}

func (r *rig) top() string { return strings.TrimSpace(r.lcd.Snapshot().Top) }

func (r *rig) press(kinds ...domain.EventKind) {
	for _, k := range kinds {
		r.mv.Dispatch(domain.Event{Kind: k})
	}
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestBootShowsConverter(t *testing.T) {
	r := newRig(t)
	r.mv.Boot()

	if r.mv.Current() != FaceConverter {
		t.Fatalf("expected converter on screen, got face %d", r.mv.Current())
	}
	if got := r.lcd.Snapshot().String(); got != "Unit  |speed" {
		t.Fatalf("unexpected frame %q", got)
	}
	if r.mv.TickFrequency() != engine.DefaultTickFrequency {
		t.Fatalf("tick frequency = %d", r.mv.TickFrequency())
	}

	r.mv.Boot()
	if r.mv.Current() != FaceConverter {
		t.Fatal("second boot changed face")
	}
}

func TestTimeoutGoesHomeKeepingState(t *testing.T) {
	r := newRig(t)
	r.mv.Boot()
	r.press(domain.EventLightUp)
	if r.state.Page != domain.PageSource {
		t.Fatalf("expected source page, got %s", r.state.Page)
	}

	r.press(domain.EventTimeout)
	if r.mv.Current() != FaceHome {
		t.Fatal("timeout did not move to home face")
	}
	if r.state.Page != domain.PageSource {
		t.Fatalf("timeout changed page to %s", r.state.Page)
	}
	if got := r.lcd.Snapshot().String(); got != "SAIL  |123456" {
		t.Fatalf("unexpected home frame %q", got)
	}
	if r.mv.TickFrequency() != homeTickFrequency {
		t.Fatalf("home tick frequency = %d", r.mv.TickFrequency())
	}
}

func TestModeCyclesFaces(t *testing.T) {
	r := newRig(t)
	r.mv.Boot()
	r.press(domain.EventLightUp, domain.EventLightUp)

	r.press(domain.EventModeUp)
	if r.mv.Current() != FaceHome {
		t.Fatal("mode did not leave the converter")
	}

	// Home ignores face buttons.
	r.press(domain.EventAlarmUp, domain.EventLightUp)
	if r.top() != "SAIL" {
		t.Fatalf("home face redrawn as %q", r.top())
	}

	r.press(domain.EventModeUp)
	if r.mv.Current() != FaceConverter {
		t.Fatal("mode did not return to the converter")
	}
	if r.state.Page != domain.PageCategory {
		t.Fatalf("re-activation left page %s", r.state.Page)
	}
}

func TestTickSubsecondWraps(t *testing.T) {
	r := newRig(t)
	r.mv.Boot()
	r.press(domain.EventLightUp, domain.EventLightUp, domain.EventLightUp)
	if r.state.Page != domain.PageInput {
		t.Fatalf("expected input page, got %s", r.state.Page)
	}

	// Tick 1 is odd: the cell under the cursor blinks off.
	r.mv.Tick()
	if got := r.lcd.Snapshot().Bottom; got != "   000" {
		t.Fatalf("odd tick bottom = %q", got)
	}
	r.mv.Tick()
	if got := r.lcd.Snapshot().Bottom; got != "  0000" {
		t.Fatalf("even tick bottom = %q", got)
	}
	r.mv.Tick()
	r.mv.Tick()
	if r.mv.subsec != 0 {
		t.Fatalf("subsecond did not wrap: %d", r.mv.subsec)
	}
}

func TestMoveToUnknownFaceIgnored(t *testing.T) {
	r := newRig(t)
	r.mv.Boot()
	r.mv.mu.Lock()
	r.mv.MoveToFace(7)
	r.mv.settle()
	r.mv.mu.Unlock()
	if r.mv.Current() != FaceConverter {
		t.Fatal("unknown face index moved the watch")
	}
}

func TestPostDropsWhenFull(t *testing.T) {
	r := newRig(t, WithQueueSize(1))
	r.mv.Post(domain.Event{Kind: domain.EventAlarmUp})
	r.mv.Post(domain.Event{Kind: domain.EventAlarmUp})
	if len(r.mv.events) != 1 {
		t.Fatalf("expected 1 queued event, got %d", len(r.mv.events))
	}
}

func TestLoopDeliversPostedEvents(t *testing.T) {
	r := newRig(t, WithTimeout(0))
	r.mv.Start(context.Background())
	defer r.mv.Stop()

	r.mv.Post(domain.Event{Kind: domain.EventLightDown})
	r.mv.Post(domain.Event{Kind: domain.EventLightUp})
	waitFor(t, "source page", func() bool { return r.top() == "Frm" })
}

func TestLoopTimeout(t *testing.T) {
	r := newRig(t, WithTimeout(50*time.Millisecond))
	r.mv.Start(context.Background())
	defer r.mv.Stop()

	waitFor(t, "home face", func() bool { return r.mv.Current() == FaceHome })

	// Mode brings the converter back.
	r.mv.Post(domain.Event{Kind: domain.EventModeUp})
	waitFor(t, "converter", func() bool { return r.mv.Current() == FaceConverter })
}

func TestStopIsIdempotent(t *testing.T) {
	r := newRig(t)
	ctx, cancel := context.WithCancel(context.Background())
	r.mv.Start(ctx)
	r.mv.Start(ctx)
	cancel()
	r.mv.Stop()
	r.mv.Stop()
}
