package engine

import "github.com/hammamikhairi/sailconv/internal/domain"

// Advance handles the forward button. On the input page it moves the digit
// cursor, and past the last digit it shows the result. Elsewhere it moves
// one page forward, wrapping from the result back to a fresh start.
func (f *Face) Advance(st *domain.State, subsec uint8) {
	if st.Page == domain.PageInput {
		if !st.Input.Advance() {
			st.Page = domain.PageResult
			f.log.Debug("input %d complete", st.Input.Value())
		}
		f.render(st, subsec)
		return
	}

	switch st.Page {
	case domain.PageResult:
		st.Reset()
	case domain.PageSource:
		if st.Source == st.Target {
			st.Target = f.wrap(st.Target, st.Category)
		}
		st.Page++
	case domain.PageTarget:
		st.Input.SetWidth(f.catalog.Unit(st.Category, st.Source).InputWidth())
		st.Page++
	default:
		st.Page++
	}

	if st.Page != domain.PageCategory {
		f.beep(domain.NoteC7)
	}
	f.log.Debug("forward to %s", st.Page)
	f.render(st, subsec)
}

// Back moves one page backward, resetting what the page being left owns.
// It reports false on the first page, where there is nowhere to go.
func (f *Face) Back(st *domain.State) bool {
	switch st.Page {
	case domain.PageCategory:
		return false
	case domain.PageSource:
		st.Source = 0
	case domain.PageTarget:
		st.Target = 0
	case domain.PageInput:
		st.Input.Reset()
	case domain.PageResult:
		st.Input.ResetCursor()
	}
	st.Page--
	f.log.Debug("back to %s", st.Page)
	return true
}

// Cycle handles the option button: next category, next unit, or next
// digit value depending on the page. Nothing happens on the result page.
func (f *Face) Cycle(st *domain.State) {
	switch st.Page {
	case domain.PageCategory:
		st.Category = (st.Category + 1) % f.catalog.Count()
	case domain.PageSource:
		st.Source = f.wrap(st.Source, st.Category)
	case domain.PageTarget:
		st.Target = f.wrap(st.Target, st.Category)
		if st.Target == st.Source {
			st.Target = f.wrap(st.Target, st.Category)
		}
	case domain.PageInput:
		st.Input.Increment()
	}
}

// wrap returns the unit index after i within category, wrapping to 0.
func (f *Face) wrap(i, category int) int {
	return (i + 1) % f.catalog.UnitCount(category)
}
