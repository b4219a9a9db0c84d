package domain

import "time"

// Position selects a text area of the display.
type Position int

const (
	PositionTop Position = iota
	PositionTopLeft
	PositionBottom
)

// Indicator is a status segment on the display.
type Indicator int

const (
	IndicatorBell Indicator = iota
	IndicatorSignal
)

// Display draws the face. Implementations decide how the text maps to
// segments or pixels; the face only decides what to show.
type Display interface {
	Clear()
	Text(pos Position, text string)
	// TextWithFallback shows text, or fallback when text does not fit.
	TextWithFallback(pos Position, text, fallback string)
	// Char writes a single character into a display cell.
	Char(ch byte, cell int)
	SetIndicator(ind Indicator)
}

// Buzzer plays audio feedback. Playback must not block the caller.
type Buzzer interface {
	PlayNote(note Note, d time.Duration)
	PlaySequence(seq Sequence)
}

// Host is the firmware the face runs inside.
type Host interface {
	RequestTickFrequency(hz int)
	MoveToFace(index int)
	// DefaultHandler processes events the face does not consume.
	DefaultHandler(ev Event) bool
	ButtonShouldSound() bool
}
