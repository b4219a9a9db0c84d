package engine

import (
	"fmt"

	"github.com/hammamikhairi/sailconv/internal/convert"
	"github.com/hammamikhairi/sailconv/internal/domain"
)

// Display geometry: ten cells, the bottom line being cells 4 to 9.
const (
	cellCount     = 10
	bottomWidth   = 6
	resultPattern = "%6.3d" // at least three digits shown
)

// render redraws the display for the current page. subsec drives the
// cursor blink on the input page.
func (f *Face) render(st *domain.State, subsec uint8) {
	f.display.Clear()

	switch st.Page {
	case domain.PageCategory:
		f.display.TextWithFallback(domain.PositionTop, "Unit", "Un")
		f.display.Text(domain.PositionBottom, f.catalog.CategoryName(st.Category))

	case domain.PageSource:
		f.display.Text(domain.PositionBottom, f.catalog.Unit(st.Category, st.Source).Name)
		f.display.TextWithFallback(domain.PositionTop, "Frm", "Fr")

	case domain.PageTarget:
		f.display.Text(domain.PositionBottom, f.catalog.Unit(st.Category, st.Target).Name)
		f.display.TextWithFallback(domain.PositionTopLeft, " to", "to")

	case domain.PageInput:
		f.display.Text(domain.PositionBottom, InputText(st))
		if subsec%2 == 1 {
			f.display.Char(' ', CursorCell(st))
		}
		f.display.TextWithFallback(domain.PositionTop, "Input", "In")

	case domain.PageResult:
		f.showResult(st)
		f.display.TextWithFallback(domain.PositionTop, "Res =", " =")
	}
}

// showResult converts the entered value and shows it, or the error state.
func (f *Face) showResult(st *domain.State) {
	out, err := convert.Between(f.catalog, st.Category, st.Source, st.Target, st.Input.Value())
	if err != nil {
		f.log.Info("conversion failed: %v", err)
		f.display.SetIndicator(domain.IndicatorBell)
		f.display.TextWithFallback(domain.PositionBottom, " Error", " Err")
		if f.host.ButtonShouldSound() {
			f.buzzer.PlaySequence(failureJingle)
		}
		return
	}

	f.log.Info("%s: %d%s = %d%s", f.catalog.CategoryName(st.Category),
		st.Input.Value(), f.catalog.Unit(st.Category, st.Source).Label,
		out, f.catalog.Unit(st.Category, st.Target).Label)
	f.display.Text(domain.PositionBottom, ResultText(out))
	if f.host.ButtonShouldSound() {
		f.buzzer.PlaySequence(successJingle)
	}
}

// InputText is the bottom line on the input page: the entered digits,
// right-aligned on the six-cell line.
func InputText(st *domain.State) string {
	return fmt.Sprintf("%*s", bottomWidth, st.Input.String())
}

// CursorCell is the display cell of the digit under the cursor.
func CursorCell(st *domain.State) int {
	return cellCount - st.Input.Width() + st.Input.Cursor()
}

// ResultText is the bottom line on the result page.
func ResultText(v uint32) string {
	return fmt.Sprintf(resultPattern, v)
}
