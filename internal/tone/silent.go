package tone

import (
	"time"

	"github.com/hammamikhairi/sailconv/internal/domain"
	"github.com/hammamikhairi/sailconv/internal/logger"
)

// Compile-time interface check.
var _ domain.Buzzer = (*Silent)(nil)

// Silent is a buzzer that plays nothing. Used when sound is disabled.
type Silent struct {
	log *logger.Logger
}

// NewSilent creates a silent buzzer.
func NewSilent(log *logger.Logger) *Silent {
	return &Silent{log: log}
}

// PlayNote does nothing.
func (s *Silent) PlayNote(note domain.Note, d time.Duration) {
	s.log.Debug("silent: would play %.0fHz for %s", note.Frequency(), d)
}

// PlaySequence does nothing.
func (s *Silent) PlaySequence(seq domain.Sequence) {
	s.log.Debug("silent: would play %d notes (%s)", len(seq), seq.Duration())
}
