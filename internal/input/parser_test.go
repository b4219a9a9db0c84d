package input

import (
	"testing"

	"github.com/hammamikhairi/sailconv/internal/domain"
	"github.com/hammamikhairi/sailconv/internal/logger"
)

func TestKeywordParser(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewKeywordParser(log)

	press := func(kinds ...domain.EventKind) []domain.EventKind { return kinds }

	tests := []struct {
		input      string
		wantAction Action
		wantEvents []domain.EventKind
		wantCount  int
	}{
		// Blank and comments
		{"", ActionNone, nil, 0},
		{"   # just a note", ActionNone, nil, 0},

		// Buttons
		{"light", ActionPress, press(domain.EventLightDown, domain.EventLightUp), 1},
		{"N", ActionPress, press(domain.EventLightDown, domain.EventLightUp), 1},
		{"back", ActionPress, press(domain.EventLightLongPress), 1},
		{"alarm 3", ActionPress, press(domain.EventAlarmUp), 3},
		{"+", ActionPress, press(domain.EventAlarmUp), 1},
		{"hold", ActionPress, press(domain.EventAlarmLongPress), 1},
		{"release # let go", ActionPress, press(domain.EventAlarmLongUp), 1},
		{"mode", ActionPress, press(domain.EventModeUp), 1},
		{"timeout", ActionPress, press(domain.EventTimeout), 1},

		// Runner actions
		{"tick 8", ActionTick, nil, 8},
		{"show", ActionShow, nil, 1},
		{"q", ActionQuit, nil, 1},

		// Raw event names
		{"light_long_press", ActionPress, press(domain.EventLightLongPress), 1},
		{"alarm_long_up 2", ActionPress, press(domain.EventAlarmLongUp), 2},
		{"tick", ActionTick, nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, err := parser.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if cmd.Action != tt.wantAction {
				t.Errorf("action = %s, want %s", cmd.Action, tt.wantAction)
			}
			if cmd.Count != tt.wantCount {
				t.Errorf("count = %d, want %d", cmd.Count, tt.wantCount)
			}
			if len(cmd.Events) != len(tt.wantEvents) {
				t.Fatalf("events = %v, want %v", cmd.Events, tt.wantEvents)
			}
			for i := range tt.wantEvents {
				if cmd.Events[i] != tt.wantEvents[i] {
					t.Fatalf("events = %v, want %v", cmd.Events, tt.wantEvents)
				}
			}
		})
	}
}

func TestDigitsExpansion(t *testing.T) {
	parser := NewKeywordParser(logger.New(logger.LevelOff, nil))

	cmd, err := parser.Parse("digits 20")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []domain.EventKind{
		domain.EventAlarmUp, domain.EventAlarmUp, domain.EventLightDown, domain.EventLightUp,
		domain.EventLightDown, domain.EventLightUp,
	}
	if len(cmd.Events) != len(want) {
		t.Fatalf("events = %v, want %v", cmd.Events, want)
	}
	for i := range want {
		if cmd.Events[i] != want[i] {
			t.Fatalf("events = %v, want %v", cmd.Events, want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	parser := NewKeywordParser(logger.New(logger.LevelOff, nil))

	for _, in := range []string{"jump", "alarm zero", "alarm 0", "alarm 1 2", "digits", "digits 4x"} {
		if _, err := parser.Parse(in); err == nil {
			t.Errorf("Parse(%q): expected error", in)
		}
	}
}
