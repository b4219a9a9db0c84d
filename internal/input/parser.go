// Package input turns typed button commands into watch events. It drives the
// script runner and anything else that wants to press buttons by name.
package input

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hammamikhairi/sailconv/internal/domain"
	"github.com/hammamikhairi/sailconv/internal/logger"
)

// Action is what a command asks the runner to do.
type Action int

const (
	ActionNone  Action = iota // blank line or comment
	ActionPress               // deliver Events, Count times
	ActionTick                // advance the clock Count ticks
	ActionShow                // print the display
	ActionQuit
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionTick:
		return "tick"
	case ActionShow:
		return "show"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Command is one parsed line.
type Command struct {
	Action Action
	Events []domain.EventKind
	Count  int
}

type rule struct {
	regex  *regexp.Regexp
	action Action
	events []domain.EventKind
}

// KeywordParser maps button words to events.
type KeywordParser struct {
	log   *logger.Logger
	rules []rule
}

// NewKeywordParser creates the command parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.rules = []rule{
		{regexp.MustCompile(`(?i)^(light|l|next|n|ok)$`), ActionPress, []domain.EventKind{domain.EventLightDown, domain.EventLightUp}},
		{regexp.MustCompile(`(?i)^(back|b|long-light|ll)$`), ActionPress, []domain.EventKind{domain.EventLightLongPress}},
		{regexp.MustCompile(`(?i)^(alarm|a|up|\+)$`), ActionPress, []domain.EventKind{domain.EventAlarmUp}},
		{regexp.MustCompile(`(?i)^(hold|h)$`), ActionPress, []domain.EventKind{domain.EventAlarmLongPress}},
		{regexp.MustCompile(`(?i)^(release|r)$`), ActionPress, []domain.EventKind{domain.EventAlarmLongUp}},
		{regexp.MustCompile(`(?i)^(mode|m)$`), ActionPress, []domain.EventKind{domain.EventModeUp}},
		{regexp.MustCompile(`(?i)^(timeout|idle)$`), ActionPress, []domain.EventKind{domain.EventTimeout}},
		{regexp.MustCompile(`(?i)^(tick|t|wait)$`), ActionTick, nil},
		{regexp.MustCompile(`(?i)^(show|print|p|lcd)$`), ActionShow, nil},
		{regexp.MustCompile(`(?i)^(quit|exit|q)$`), ActionQuit, nil},
	}
	return p
}

// Parse converts one line into a command. A trailing number repeats the
// command ("alarm 3", "tick 8"). "digits 0036" expands to the alarm and
// light presses that enter those digits from zero. Raw event names such as
// "light_long_press" are accepted too.
func (p *KeywordParser) Parse(line string) (Command, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Action: ActionNone}, nil
	}

	word := fields[0]
	if strings.EqualFold(word, "digits") {
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("digits: expected one argument, got %d", len(fields)-1)
		}
		return digitPresses(fields[1])
	}

	count := 1
	if len(fields) > 2 {
		return Command{}, fmt.Errorf("%s: too many arguments", word)
	}
	if len(fields) == 2 {
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return Command{}, fmt.Errorf("%s: bad repeat count %q", word, fields[1])
		}
		count = n
	}

	for _, r := range p.rules {
		if r.regex.MatchString(word) {
			p.log.Debug("parsed %q as %s x%d", word, r.action, count)
			return Command{Action: r.action, Events: r.events, Count: count}, nil
		}
	}

	if kind := domain.EventFromString(strings.ToLower(word)); kind != domain.EventOther || strings.EqualFold(word, "other") {
		if kind == domain.EventTick {
			return Command{Action: ActionTick, Count: count}, nil
		}
		return Command{Action: ActionPress, Events: []domain.EventKind{kind}, Count: count}, nil
	}

	return Command{}, fmt.Errorf("unknown command %q", word)
}

// digitPresses builds the presses that enter s digit by digit, assuming
// every place starts at zero.
func digitPresses(s string) (Command, error) {
	var events []domain.EventKind
	for _, c := range s {
		if c < '0' || c > '9' {
			return Command{}, fmt.Errorf("digits: %q is not a digit", c)
		}
		for i := 0; i < int(c-'0'); i++ {
			events = append(events, domain.EventAlarmUp)
		}
		events = append(events, domain.EventLightDown, domain.EventLightUp)
	}
	return Command{Action: ActionPress, Events: events, Count: 1}, nil
}
