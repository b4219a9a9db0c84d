package tone

import (
	"fmt"

	"github.com/hammamikhairi/sailconv/internal/domain"
	"github.com/hammamikhairi/sailconv/internal/logger"
)

// Buzzer backends.
const (
	BackendOto  = "oto"
	BackendBeep = "beep"
	BackendNone = "none"
)

// Open returns the buzzer for a backend name. If the audio device cannot be
// opened for the oto backend, it falls back to the system beep.
func Open(backend string, volume float64, log *logger.Logger) (domain.Buzzer, error) {
	switch backend {
	case BackendOto, "":
		synth, err := NewSynth(volume, log)
		if err != nil {
			log.Error("audio device init failed, using system beep: %v", err)
			return NewBeeper(log), nil
		}
		return synth, nil
	case BackendBeep:
		return NewBeeper(log), nil
	case BackendNone:
		return NewSilent(log), nil
	}
	return nil, fmt.Errorf("unknown buzzer backend %q", backend)
}
