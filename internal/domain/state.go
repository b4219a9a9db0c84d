package domain

import "github.com/hammamikhairi/sailconv/internal/digits"

// Page is one of the five screens of the face, in forward order.
type Page int

const (
	PageCategory Page = iota
	PageSource
	PageTarget
	PageInput
	PageResult
)

// PageCount is the number of pages.
const PageCount = 5

// String returns a human-readable page name.
func (p Page) String() string {
	switch p {
	case PageCategory:
		return "category"
	case PageSource:
		return "source"
	case PageTarget:
		return "target"
	case PageInput:
		return "input"
	case PageResult:
		return "result"
	default:
		return "unknown"
	}
}

// Valid reports whether p is one of the five pages.
func (p Page) Valid() bool { return p >= PageCategory && p < PageCount }

// State is the single mutable record of a face instance. It is owned by
// exactly one caller at a time and passed explicitly to every operation.
type State struct {
	Page     Page
	Category int
	Source   int
	Target   int
	Input    digits.Editor
	Held     bool // increment button held on the input page
}

// Reset zeroes every field.
func (s *State) Reset() {
	*s = State{}
}
