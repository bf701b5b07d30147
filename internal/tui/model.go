package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stackjustify/touchkit"
)

// Terminal cells are mapped to logical pixels so the recognizer's pixel
// threshold keeps its meaning: a 50px swipe is a little over six columns.
const (
	cellWidth    = 8.0
	cellHeight   = 16.0
	headerRows   = 2
	tickInterval = 100 * time.Millisecond
	defaultSize  = 24
)

var sampleLines = []string{
	"Hamburgefonstiv",
	"The quick brown fox jumps over the lazy dog",
	"Sphinx of black quartz, judge my vow",
	"Pack my box with five dozen liquor jugs",
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// statusLine is the Feedback sink for the footer.
type statusLine struct {
	text string
}

func (s *statusLine) ShowFeedback(text string) { s.text = text }
func (s *statusLine) ClearFeedback()           { s.text = "" }

// errorLine receives LineList.ErrorLog output, so a failed swipe-copy shows
// up under the status line.
type errorLine struct {
	m *Model
}

func (e errorLine) Write(p []byte) (int, error) {
	e.m.err = errors.New(strings.TrimSpace(string(p)))
	return len(p), nil
}

// Model is the Bubble Tea model for the terminal specimen view. Dragging a
// line with the mouse behaves like a touch swipe.
type Model struct {
	lines    *touchkit.LineList
	rec      *touchkit.Recognizer
	status   *statusLine
	watcher  *touchkit.ViewportWatcher
	menu     touchkit.Menu
	sections *touchkit.Accordion
	keys     KeyMap

	width, height int
	pressedRow    int // row index under the pointer at press time, -1 if none
	nextSample    int
	err           error
}

// NewModel creates the view with a few sample lines. clip receives copied
// text.
func NewModel(cfg touchkit.Config, clip touchkit.Clipboard) *Model {
	status := &statusLine{}
	rec := touchkit.NewRecognizer(cfg)
	rec.SetFeedback(status)

	lines := touchkit.NewLineList(touchkit.Vec2{X: 0, Y: headerRows * cellHeight}, 80*cellWidth, cellHeight)
	lines.Clipboard = clip

	m := &Model{
		lines:      lines,
		rec:        rec,
		status:     status,
		watcher:    touchkit.NewViewportWatcher(cfg),
		sections:   touchkit.NewAccordion(true, touchkit.DefaultSections()...),
		keys:       DefaultKeyMap(),
		pressedRow: -1,
	}
	lines.ErrorLog = errorLine{m: m}
	for i := 0; i < 3; i++ {
		m.addLine()
	}
	return m
}

// Recognizer exposes the gesture recognizer, mainly for debug wiring.
func (m *Model) Recognizer() *touchkit.Recognizer {
	return m.rec
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.watcher.Resize(int(float64(msg.Width)*cellWidth), int(float64(msg.Height)*cellHeight))
		m.lines.Width = float64(msg.Width) * cellWidth
		m.lines.Layout()
		return m, nil

	case tickMsg:
		m.rec.Update(float32(tickInterval.Seconds()))
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.AddLine):
		m.addLine()
	case key.Matches(msg, m.keys.CopyAll):
		m.err = m.lines.CopyAll()
	case key.Matches(msg, m.keys.Clear):
		m.rec.Reset()
		m.lines.Clear()
	case key.Matches(msg, m.keys.Menu):
		m.menu.Toggle()
	default:
		// Digits toggle control panel sections while the menu is open.
		if m.menu.IsOpen() && len(msg.Runes) == 1 {
			if i := int(msg.Runes[0] - '1'); i >= 0 && i < len(m.sections.Sections()) {
				m.sections.Toggle(m.sections.Sections()[i].ID)
			}
		}
	}
	return m, nil
}

// toPoint maps a terminal cell to the logical pixel at its center.
func toPoint(msg tea.MouseMsg) touchkit.TouchPoint {
	return touchkit.TouchPoint{
		Pointer: touchkit.MousePointer,
		X:       (float64(msg.X) + 0.5) * cellWidth,
		Y:       (float64(msg.Y) + 0.5) * cellHeight,
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	pt := toPoint(msg)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.pressedRow = -1
		m.err = nil
		if line, ok := m.lines.LineAt(pt.X, pt.Y); ok {
			for i, l := range m.lines.Lines() {
				if l == line {
					m.pressedRow = i
				}
			}
		}
		m.rec.TouchStart(pt, m.lines)
	case tea.MouseActionMotion:
		m.rec.TouchMove(pt)
		if !m.rec.Active(touchkit.MousePointer) {
			m.pressedRow = -1
		}
	case tea.MouseActionRelease:
		m.rec.TouchEnd(touchkit.MousePointer)
		m.pressedRow = -1
	}
}

func (m *Model) addLine() {
	text := sampleLines[m.nextSample%len(sampleLines)]
	m.nextSample++
	m.lines.Add(text, "", defaultSize)
}

func (m *Model) View() string {
	var b strings.Builder

	vp := m.watcher.Current()
	b.WriteString(titleStyle.Render("Stack & Justify"))
	b.WriteString(hintStyle.Render(fmt.Sprintf("  %s  %s  swipe ← delete · → copy", m.menu.Glyph(), vp.Class)))
	b.WriteString("\n\n")

	for i, line := range m.lines.Lines() {
		style := lineStyle
		if i == m.pressedRow {
			style = activeLineStyle
		}
		b.WriteString(style.Render(line.Text))
		b.WriteString("\n")
	}
	if m.lines.Len() == 0 {
		b.WriteString(hintStyle.Render(" no lines, press a to add one"))
		b.WriteString("\n")
	}

	if m.menu.IsOpen() {
		var menu strings.Builder
		for i, s := range m.sections.Sections() {
			if i > 0 {
				menu.WriteString("\n")
			}
			fmt.Fprintf(&menu, "%d %s %s", i+1, s.Glyph(), s.Title)
		}
		b.WriteString("\n")
		b.WriteString(menuStyle.Render(menu.String()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status.text != "" {
		b.WriteString(toastStyle.Render(m.status.text))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	help := make([]string, 0, len(m.keys.ShortHelp()))
	for _, k := range m.keys.ShortHelp() {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString(hintStyle.Render(strings.Join(help, " · ")))
	return b.String()
}
