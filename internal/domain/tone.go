package domain

import "time"

// Note is a buzzer pitch. NoteRest is silence.
type Note int

const (
	NoteRest Note = iota
	NoteG4
	NoteA4
	NoteB4
	NoteC5
	NoteD5
	NoteE5
	NoteF5
	NoteG5
	NoteG6
	NoteC7
	NoteC8
)

var noteHz = [...]float64{
	NoteRest: 0,
	NoteG4:   391.995,
	NoteA4:   440.000,
	NoteB4:   493.883,
	NoteC5:   523.251,
	NoteD5:   587.330,
	NoteE5:   659.255,
	NoteF5:   698.456,
	NoteG5:   783.991,
	NoteG6:   1567.98,
	NoteC7:   2093.00,
	NoteC8:   4186.01,
}

// Frequency returns the pitch in hertz, 0 for rests and unknown notes.
func (n Note) Frequency() float64 {
	if n < 0 || int(n) >= len(noteHz) {
		return 0
	}
	return noteHz[n]
}

// SequenceTick is the duration unit of a Step.
const SequenceTick = time.Second / 64

// Step is one note of a sequence, held for Ticks sequence ticks.
type Step struct {
	Note  Note
	Ticks int
}

// Duration returns how long the step sounds.
func (s Step) Duration() time.Duration {
	return time.Duration(s.Ticks) * SequenceTick
}

// Sequence is a melody played by the buzzer.
type Sequence []Step

// Duration returns the total length of the sequence.
func (s Sequence) Duration() time.Duration {
	var d time.Duration
	for _, st := range s {
		d += st.Duration()
	}
	return d
}
