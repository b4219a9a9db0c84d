// Package display renders the watch face: an in-memory LCD the face draws
// on, and a Bubble Tea program that shows it in the terminal and turns key
// presses into button events.
package display

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/sailconv/internal/domain"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	caseStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Padding(0, 2)

	glassStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#a3b18a")).
			Foreground(lipgloss.Color("#1f2937")).
			Bold(true)

	indicatorOnStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fca5a5"))

	indicatorOffStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#3f3f46"))

	// BannerStyle is used for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))
)

// frameInterval is how often the terminal re-reads the LCD.
const frameInterval = time.Second / 16

// Poster accepts button events for the face.
type Poster interface {
	Post(ev domain.Event)
}

type keyMap struct {
	Light     key.Binding
	LightLong key.Binding
	Alarm     key.Binding
	AlarmHold key.Binding
	Mode      key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Light, k.LightLong, k.Alarm, k.AlarmHold, k.Mode, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Light, k.LightLong}, {k.Alarm, k.AlarmHold}, {k.Mode, k.Quit}}
}

var keys = keyMap{
	Light: key.NewBinding(
		key.WithKeys("l", "enter", "right"),
		key.WithHelp("l/→", "next"),
	),
	LightLong: key.NewBinding(
		key.WithKeys("L", "backspace", "left"),
		key.WithHelp("L/←", "back"),
	),
	Alarm: key.NewBinding(
		key.WithKeys("a", " ", "up"),
		key.WithHelp("a/↑", "change"),
	),
	AlarmHold: key.NewBinding(
		key.WithKeys("A", "h"),
		key.WithHelp("A", "hold"),
	),
	Mode: key.NewBinding(
		key.WithKeys("m", "tab"),
		key.WithHelp("m", "mode"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

// Watch is the terminal front of the watch.
type Watch struct {
	lcd   *LCD
	post  Poster
	title string
}

// NewWatch creates a terminal watch showing lcd and posting to p.
func NewWatch(lcd *LCD, p Poster, title string) *Watch {
	return &Watch{lcd: lcd, post: p, title: title}
}

// Run starts the Bubble Tea event loop. Blocks until the user quits or ctx
// is cancelled.
func (w *Watch) Run(ctx context.Context) error {
	m := newModel(w.lcd, w.post, w.title)
	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	lcd     *LCD
	post    Poster
	title   string
	frame   Frame
	holding bool
	last    string // last button, shown under the face
	help    help.Model
}

type frameMsg time.Time

func newModel(lcd *LCD, p Poster, title string) model {
	return model{
		lcd:   lcd,
		post:  p,
		title: title,
		frame: lcd.Snapshot(),
		help:  help.New(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(frameCmd(), tea.SetWindowTitle(m.title))
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Light):
			m.press("light", domain.EventLightDown, domain.EventLightUp)
		case key.Matches(msg, keys.LightLong):
			m.press("light (long)", domain.EventLightLongPress)
		case key.Matches(msg, keys.Alarm):
			m.press("alarm", domain.EventAlarmUp)
		case key.Matches(msg, keys.AlarmHold):
			if m.holding {
				m.press("alarm released", domain.EventAlarmLongUp)
			} else {
				m.press("alarm held", domain.EventAlarmLongPress)
			}
			m.holding = !m.holding
		case key.Matches(msg, keys.Mode):
			m.press("mode", domain.EventModeUp)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		m.frame = m.lcd.Snapshot()
		return m, frameCmd()
	}
	return m, nil
}

func (m *model) press(label string, kinds ...domain.EventKind) {
	for _, k := range kinds {
		m.post.Post(domain.Event{Kind: k})
	}
	m.last = label
}

func (m model) View() string {
	var b strings.Builder

	bell := indicatorOffStyle.Render("bell")
	if m.frame.Bell {
		bell = indicatorOnStyle.Render("bell")
	}
	signal := indicatorOffStyle.Render("sig")
	if m.frame.Signal {
		signal = indicatorOnStyle.Render("sig")
	}

	face := lipgloss.JoinVertical(lipgloss.Left,
		glassStyle.Render(" "+m.frame.Top+" ")+"  "+bell+" "+signal,
		glassStyle.Render(" "+m.frame.Bottom+" "),
	)
	b.WriteString(caseStyle.Render(face))
	b.WriteByte('\n')

	if m.last != "" {
		b.WriteString(hintStyle.Render("  " + m.last))
	}
	if m.holding {
		b.WriteString(hintStyle.Render("  (holding)"))
	}
	b.WriteByte('\n')
	b.WriteString(m.help.View(keys))
	return b.String()
}
