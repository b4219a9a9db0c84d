package display

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"

	"github.com/hammamikhairi/sailconv/internal/domain"
)

// Kind is the LCD glass fitted to the watch.
type Kind int

const (
	// KindCustom has a five-character top line.
	KindCustom Kind = iota
	// KindClassic only shows letters in the two top-left cells.
	KindClassic
)

// String returns the config name of the kind.
func (k Kind) String() string {
	if k == KindClassic {
		return "classic"
	}
	return "custom"
}

// ParseKind converts a config name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "custom":
		return KindCustom, nil
	case "classic":
		return KindClassic, nil
	}
	return KindCustom, fmt.Errorf("unknown lcd type %q", s)
}

// Cell layout: 0-1 top left, 2-3 top right, 4-9 bottom line. The custom
// glass has one more top cell after the top right pair.
const (
	topCells    = 5
	bottomCells = 6
	cellCount   = 4 + bottomCells
)

// Compile-time interface check.
var _ domain.Display = (*LCD)(nil)

// LCD is an in-memory segment display. The face writes to it from the host
// goroutine; renderers read it through Snapshot.
type LCD struct {
	mu      sync.Mutex
	kind    Kind
	top     [topCells]byte
	bottom  [bottomCells]byte
	bell    bool
	signal  bool
	version uint64
}

// NewLCD creates a blank display.
func NewLCD(kind Kind) *LCD {
	l := &LCD{kind: kind}
	l.clear()
	return l
}

// Kind returns the glass type.
func (l *LCD) Kind() Kind { return l.kind }

// Clear blanks every cell and indicator.
func (l *LCD) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clear()
	l.version++
}

func (l *LCD) clear() {
	for i := range l.top {
		l.top[i] = ' '
	}
	for i := range l.bottom {
		l.bottom[i] = ' '
	}
	l.bell = false
	l.signal = false
}

// width returns how many characters pos can show on this glass.
func (l *LCD) width(pos domain.Position) int {
	switch pos {
	case domain.PositionTop:
		if l.kind == KindClassic {
			return 2
		}
		return topCells
	case domain.PositionTopLeft:
		if l.kind == KindClassic {
			return 2
		}
		return 3
	default:
		return bottomCells
	}
}

// Fits reports whether text can be shown at pos without truncation.
func (l *LCD) Fits(pos domain.Position, text string) bool {
	return runewidth.StringWidth(text) <= l.width(pos)
}

// Text writes text at pos, truncated to the area.
func (l *LCD) Text(pos domain.Position, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.write(pos, text)
}

// TextWithFallback writes text, or fallback when text is too wide for pos.
func (l *LCD) TextWithFallback(pos domain.Position, text, fallback string) {
	if !l.Fits(pos, text) {
		text = fallback
	}
	l.Text(pos, text)
}

func (l *LCD) write(pos domain.Position, text string) {
	text = runewidth.Truncate(text, l.width(pos), "")
	dst := l.bottom[:]
	if pos != domain.PositionBottom {
		dst = l.top[:]
	}
	for i := 0; i < len(text) && i < len(dst); i++ {
		dst[i] = segment(text[i])
	}
	l.version++
}

// Char writes a single character into cell (0-9). Out of range cells are
// ignored.
func (l *LCD) Char(ch byte, cell int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch {
	case cell < 0 || cell >= cellCount:
		return
	case cell < 4:
		l.top[cell] = segment(ch)
	default:
		l.bottom[cell-4] = segment(ch)
	}
	l.version++
}

// SetIndicator lights an indicator segment until the next Clear.
func (l *LCD) SetIndicator(ind domain.Indicator) {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch ind {
	case domain.IndicatorBell:
		l.bell = true
	case domain.IndicatorSignal:
		l.signal = true
	}
	l.version++
}

// segment maps characters the glass cannot draw to a blank.
func segment(ch byte) byte {
	if ch < ' ' || ch > '~' {
		return ' '
	}
	return ch
}

// Frame is a copy of the display contents.
type Frame struct {
	Top     string
	Bottom  string
	Bell    bool
	Signal  bool
	Version uint64
}

// Snapshot returns the current contents.
func (l *LCD) Snapshot() Frame {
	l.mu.Lock()
	defer l.mu.Unlock()
	top := l.top[:]
	if l.kind == KindClassic {
		top = top[:4]
	}
	return Frame{
		Top:     string(top),
		Bottom:  string(l.bottom[:]),
		Bell:    l.bell,
		Signal:  l.signal,
		Version: l.version,
	}
}

// String renders the frame on one line, e.g. "Unit  | speed".
func (f Frame) String() string {
	var b strings.Builder
	b.WriteString(f.Top)
	b.WriteString(" |")
	b.WriteString(f.Bottom)
	if f.Bell {
		b.WriteString(" [bell]")
	}
	if f.Signal {
		b.WriteString(" [signal]")
	}
	return strings.TrimRight(b.String(), " ")
}
