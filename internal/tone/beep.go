package tone

import (
	"sync/atomic"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/hammamikhairi/sailconv/internal/domain"
	"github.com/hammamikhairi/sailconv/internal/logger"
)

// Compile-time interface check.
var _ domain.Buzzer = (*Beeper)(nil)

// beepFunc matches beeep.Beep: frequency in hertz, duration in milliseconds.
type beepFunc func(freq float64, ms int) error

// Beeper plays tones with the operating system's beep. Used where no audio
// device can be opened for the synthesizer.
type Beeper struct {
	log  *logger.Logger
	beep beepFunc
	gen  atomic.Uint64 // bumped by every new tone; older loops stop early
}

// NewBeeper creates a system-beep buzzer.
func NewBeeper(log *logger.Logger) *Beeper {
	return &Beeper{log: log, beep: beeep.Beep}
}

// PlayNote beeps once in the background.
func (b *Beeper) PlayNote(note domain.Note, d time.Duration) {
	b.start([]segment{noteSegment(note, d)})
}

// PlaySequence beeps a melody in the background.
func (b *Beeper) PlaySequence(seq domain.Sequence) {
	b.start(sequenceSegments(seq))
}

func (b *Beeper) start(segs []segment) {
	gen := b.gen.Add(1)
	go b.run(gen, segs)
}

// run plays segs until done or until a newer tone takes over.
func (b *Beeper) run(gen uint64, segs []segment) {
	for _, s := range segs {
		if b.gen.Load() != gen {
			return
		}
		if s.hz == 0 {
			time.Sleep(s.d)
			continue
		}
		if err := b.beep(s.hz, int(s.d/time.Millisecond)); err != nil {
			b.log.Warn("beeper: %v", err)
			return
		}
	}
}
