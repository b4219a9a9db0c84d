// Package tone turns buzzer notes and sequences into sound.
package tone

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/hammamikhairi/sailconv/internal/domain"
)

// Audio format of the synthesized buzzer.
const (
	SampleRate   = 22050
	ChannelCount = 1
	BitDepth     = 16
)

// segment is a pitch held for a duration; zero hertz is silence.
type segment struct {
	hz float64
	d  time.Duration
}

func noteSegment(n domain.Note, d time.Duration) segment {
	return segment{hz: n.Frequency(), d: d}
}

func sequenceSegments(seq domain.Sequence) []segment {
	segs := make([]segment, 0, len(seq))
	for _, st := range seq {
		segs = append(segs, noteSegment(st.Note, st.Duration()))
	}
	return segs
}

// renderPCM synthesizes signed 16-bit little-endian mono samples of a square
// wave, which is what a piezo buzzer sounds like.
func renderPCM(volume float64, segs ...segment) []byte {
	volume = math.Max(0, math.Min(1, volume))
	amp := int16(volume * math.MaxInt16)

	var total int
	for _, s := range segs {
		total += samplesFor(s.d)
	}
	out := make([]byte, 0, total*BitDepth/8)

	var buf [2]byte
	for _, s := range segs {
		n := samplesFor(s.d)
		for i := 0; i < n; i++ {
			var v int16
			if s.hz > 0 {
				phase := math.Mod(float64(i)*s.hz/SampleRate, 1)
				if phase < 0.5 {
					v = amp
				} else {
					v = -amp
				}
			}
			binary.LittleEndian.PutUint16(buf[:], uint16(v))
			out = append(out, buf[:]...)
		}
	}
	return out
}

func samplesFor(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(d.Seconds() * SampleRate)
}
