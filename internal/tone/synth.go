package tone

import (
	"bytes"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/hammamikhairi/sailconv/internal/domain"
	"github.com/hammamikhairi/sailconv/internal/logger"
)

// Compile-time interface check.
var _ domain.Buzzer = (*Synth)(nil)

// Synth plays buzzer tones through the system audio device via oto.
// A new tone cuts off the one still playing, like a single piezo would.
type Synth struct {
	ctx    *oto.Context
	log    *logger.Logger
	volume float64
	cache  *pcmCache
	mu     sync.Mutex
	active *oto.Player // currently playing, nil when idle
}

// NewSynth initializes the audio context. Returns an error if the audio
// device is unavailable.
func NewSynth(volume float64, log *logger.Logger) (*Synth, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan

	log.Debug("synth initialized (rate=%d, channels=%d, volume=%.2f)", SampleRate, ChannelCount, volume)
	return &Synth{ctx: ctx, log: log, volume: volume, cache: newPCMCache()}, nil
}

// PlayNote sounds a single note. Returns immediately.
func (s *Synth) PlayNote(note domain.Note, d time.Duration) {
	s.play(noteSegment(note, d))
}

// PlaySequence sounds a melody. Returns immediately.
func (s *Synth) PlaySequence(seq domain.Sequence) {
	s.play(sequenceSegments(seq)...)
}

func (s *Synth) play(segs ...segment) {
	pcm := s.cache.render(s.volume, segs...)
	if len(pcm) == 0 {
		return
	}

	player := s.ctx.NewPlayer(bytes.NewReader(pcm))

	s.mu.Lock()
	prev := s.active
	s.active = player
	s.mu.Unlock()

	if prev != nil {
		prev.Pause()
		if err := prev.Close(); err != nil {
			s.log.Warn("synth: closing previous player: %v", err)
		}
	}

	player.Play()
	s.log.Debug("synth: playing %d bytes of PCM", len(pcm))
}

// Stop silences the buzzer. Safe to call when nothing is playing.
func (s *Synth) Stop() {
	s.mu.Lock()
	active := s.active
	s.active = nil
	s.mu.Unlock()

	if active != nil {
		active.Pause()
		active.Close()
		hits, misses := s.cache.stats()
		s.log.Debug("synth: stopped (cache hits=%d, misses=%d)", hits, misses)
	}
}
