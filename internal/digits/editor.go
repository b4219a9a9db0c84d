// Package digits implements the fixed-width decimal editor used for value entry.
//
// The value is held as an explicit array of base-10 digits, most significant
// first. An editor of width w edits the w least significant places; the
// remaining places stay zero.
package digits

// MaxWidth is the number of decimal places the editor can hold.
const MaxWidth = 4

// Editor is a fixed-width unsigned decimal value with a single cursor.
// The zero value is a 4-digit editor holding 0 with the cursor on the
// leftmost digit.
type Editor struct {
	places [MaxWidth]uint8
	width  int // 0 means MaxWidth
	cursor int
}

// New returns an empty editor of the given width, clamped to 1..MaxWidth.
func New(width int) Editor {
	var e Editor
	e.SetWidth(width)
	return e
}

// SetWidth changes the number of editable places. Digits that fall outside
// the new window are cleared and the cursor is moved back to the start.
func (e *Editor) SetWidth(width int) {
	if width <= 0 || width > MaxWidth {
		width = MaxWidth
	}
	e.width = width
	for i := 0; i < MaxWidth-width; i++ {
		e.places[i] = 0
	}
	e.cursor = 0
}

// Width returns the number of editable places.
func (e Editor) Width() int {
	if e.width == 0 {
		return MaxWidth
	}
	return e.width
}

// Cursor returns the cursor position, 0 being the leftmost editable digit.
func (e Editor) Cursor() int { return e.cursor }

// AtLast reports whether the cursor sits on the last editable digit.
func (e Editor) AtLast() bool { return e.cursor >= e.Width()-1 }

// index maps the cursor position to an index into places.
func (e Editor) index(pos int) int { return MaxWidth - e.Width() + pos }

// Digit returns the digit at the given cursor position.
func (e Editor) Digit(pos int) uint8 {
	if pos < 0 || pos >= e.Width() {
		return 0
	}
	return e.places[e.index(pos)]
}

// Value returns the number held by the editor.
func (e Editor) Value() uint32 {
	var v uint32
	for _, d := range e.places {
		v = v*10 + uint32(d)
	}
	return v
}

// Increment adds one to the digit under the cursor, wrapping 9 to 0.
// Neighbouring digits are never carried into.
func (e *Editor) Increment() {
	i := e.index(e.cursor)
	if e.places[i] == 9 {
		e.places[i] = 0
		return
	}
	e.places[i]++
}

// Advance moves the cursor one place to the right. It returns false, leaving
// the cursor where it is, when the cursor is already on the last digit.
func (e *Editor) Advance() bool {
	if e.AtLast() {
		return false
	}
	e.cursor++
	return true
}

// ResetCursor moves the cursor back to the leftmost digit, keeping the value.
func (e *Editor) ResetCursor() { e.cursor = 0 }

// Reset clears the value and the cursor. The width is kept.
func (e *Editor) Reset() {
	e.places = [MaxWidth]uint8{}
	e.cursor = 0
}

// String returns the editable digits, zero padded to the editor width.
func (e Editor) String() string {
	w := e.Width()
	b := make([]byte, w)
	for pos := 0; pos < w; pos++ {
		b[pos] = '0' + e.places[e.index(pos)]
	}
	return string(b)
}
