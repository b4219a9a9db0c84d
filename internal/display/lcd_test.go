package display

import (
	"strings"
	"testing"

	"github.com/hammamikhairi/sailconv/internal/domain"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"", KindCustom, false},
		{"custom", KindCustom, false},
		{" Classic", KindClassic, false},
		{"oled", KindCustom, true},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseKind(%q) err = %v", tt.in, err)
		}
		if err == nil && got != tt.want {
			t.Fatalf("ParseKind(%q) = %s", tt.in, got)
		}
	}
}

func TestFallbackByGlass(t *testing.T) {
	tests := []struct {
		kind     Kind
		pos      domain.Position
		text     string
		fallback string
		wantTop  string
	}{
		{KindCustom, domain.PositionTop, "Unit", "Un", "Unit "},
		{KindClassic, domain.PositionTop, "Unit", "Un", "Un  "},
		{KindCustom, domain.PositionTop, "Res =", " =", "Res ="},
		{KindClassic, domain.PositionTop, "Res =", " =", " =  "},
		{KindCustom, domain.PositionTopLeft, " to", "to", " to  "},
		{KindClassic, domain.PositionTopLeft, " to", "to", "to  "},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.text, func(t *testing.T) {
			lcd := NewLCD(tt.kind)
			lcd.TextWithFallback(tt.pos, tt.text, tt.fallback)
			if got := lcd.Snapshot().Top; got != tt.wantTop {
				t.Fatalf("top = %q, want %q", got, tt.wantTop)
			}
		})
	}
}

func TestBottomAndCells(t *testing.T) {
	lcd := NewLCD(KindCustom)
	lcd.Text(domain.PositionBottom, "  0036")
	lcd.Char(' ', 9)
	lcd.Char('x', 42)

	f := lcd.Snapshot()
	if f.Bottom != "  003 " {
		t.Fatalf("bottom = %q", f.Bottom)
	}

	lcd.Text(domain.PositionBottom, "overflowing")
	if got := lcd.Snapshot().Bottom; got != "overfl" {
		t.Fatalf("bottom not truncated: %q", got)
	}
}

func TestClearResetsIndicators(t *testing.T) {
	lcd := NewLCD(KindCustom)
	lcd.SetIndicator(domain.IndicatorBell)
	lcd.Text(domain.PositionBottom, " Error")
	if f := lcd.Snapshot(); !f.Bell || f.String() != "      | Error [bell]" {
		t.Fatalf("unexpected frame %q", f)
	}

	before := lcd.Snapshot().Version
	lcd.Clear()
	f := lcd.Snapshot()
	if f.Bell || f.Bottom != "      " || f.Version <= before {
		t.Fatalf("clear left %+v", f)
	}
}

func TestRenderBannerCentres(t *testing.T) {
	out := RenderBanner(120)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) < 2 {
		t.Fatalf("banner too short: %q", out)
	}
	if !strings.HasPrefix(lines[0], "          ") {
		t.Fatalf("banner not padded: %q", lines[0])
	}
}
