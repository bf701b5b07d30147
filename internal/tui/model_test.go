package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stackjustify/touchkit"
)

func newTestModel() (*Model, *touchkit.MemoryClipboard) {
	clip := &touchkit.MemoryClipboard{}
	m := NewModel(touchkit.DefaultConfig(), clip)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, clip
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func drag(m *Model, fromX, toX, row int) {
	m.Update(mouse(tea.MouseActionPress, fromX, row))
	step := 1
	if toX < fromX {
		step = -1
	}
	for x := fromX + step; x != toX+step; x += step {
		m.Update(mouse(tea.MouseActionMotion, x, row))
	}
	m.Update(mouse(tea.MouseActionRelease, toX, row))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_SwipeLeftDeletes(t *testing.T) {
	m, _ := newTestModel()
	first := m.lines.At(0).Text

	drag(m, 40, 20, headerRows)

	if m.lines.Len() != 2 {
		t.Fatalf("Len = %d, want 2", m.lines.Len())
	}
	if m.lines.At(0).Text == first {
		t.Error("first line was not removed")
	}
	if m.status.text != "Line Deleted" {
		t.Errorf("status = %q, want Line Deleted", m.status.text)
	}
	if !strings.Contains(m.View(), "Line Deleted") {
		t.Error("view does not show the confirmation")
	}
}

func TestModel_SwipeRightCopies(t *testing.T) {
	m, clip := newTestModel()
	second := m.lines.At(1).Text

	drag(m, 10, 30, headerRows+1)

	if clip.Text != second {
		t.Errorf("clipboard = %q, want %q", clip.Text, second)
	}
	if m.lines.Len() != 3 {
		t.Errorf("Len = %d, copy should not remove", m.lines.Len())
	}
	if m.status.text != "Text Copied" {
		t.Errorf("status = %q", m.status.text)
	}
}

type failingClipboard struct{}

func (failingClipboard) WriteText(string) error { return errors.New("clipboard unavailable") }

func TestModel_SwipeCopyReportsClipboardError(t *testing.T) {
	m := NewModel(touchkit.DefaultConfig(), failingClipboard{})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	drag(m, 10, 30, headerRows)

	if m.err == nil || !strings.Contains(m.err.Error(), "clipboard unavailable") {
		t.Fatalf("err = %v, want the clipboard failure", m.err)
	}
	if !strings.Contains(m.View(), "clipboard unavailable") {
		t.Error("view does not show the clipboard failure")
	}

	// The next press starts clean.
	m.Update(mouse(tea.MouseActionPress, 10, headerRows))
	if m.err != nil {
		t.Errorf("err = %v after new press, want nil", m.err)
	}
}

func TestModel_ShortDragDoesNothing(t *testing.T) {
	m, clip := newTestModel()
	// Four columns is 32 logical pixels, under the 50px threshold.
	drag(m, 20, 16, headerRows)
	if m.lines.Len() != 3 || clip.Writes != 0 || m.status.text != "" {
		t.Errorf("Len=%d writes=%d status=%q", m.lines.Len(), clip.Writes, m.status.text)
	}
}

func TestModel_DragOutsideLines(t *testing.T) {
	m, clip := newTestModel()
	drag(m, 40, 10, 0)
	if m.lines.Len() != 3 || clip.Writes != 0 {
		t.Errorf("header drag acted: Len=%d writes=%d", m.lines.Len(), clip.Writes)
	}
}

func TestModel_StatusClearsAfterTicks(t *testing.T) {
	m, _ := newTestModel()
	drag(m, 40, 20, headerRows)

	for i := 0; i < 9; i++ {
		if _, cmd := m.Update(tickMsg{}); cmd == nil {
			t.Fatal("tick should reschedule itself")
		}
	}
	if m.status.text == "" {
		t.Fatal("status cleared early")
	}
	m.Update(tickMsg{})
	if m.status.text != "" {
		t.Errorf("status = %q after 1s, want empty", m.status.text)
	}
}

func TestModel_Keys(t *testing.T) {
	m, clip := newTestModel()

	m.Update(runes("a"))
	if m.lines.Len() != 4 {
		t.Errorf("Len = %d after add, want 4", m.lines.Len())
	}

	m.Update(runes("y"))
	if got := strings.Count(clip.Text, "\n"); got != 3 {
		t.Errorf("copy all joined %d newlines, want 3", got)
	}

	m.Update(runes("c"))
	if m.lines.Len() != 0 {
		t.Errorf("Len = %d after clear", m.lines.Len())
	}
	if !strings.Contains(m.View(), "no lines") {
		t.Error("empty view missing hint")
	}

	if _, cmd := m.Update(runes("q")); cmd == nil {
		t.Error("quit should return a command")
	}
}

func TestModel_Menu(t *testing.T) {
	m, _ := newTestModel()
	if strings.Contains(m.View(), "Font Settings") {
		t.Fatal("menu rendered while closed")
	}

	m.Update(runes("m"))
	if !m.menu.IsOpen() || !strings.Contains(m.View(), "Font Settings") {
		t.Fatal("menu did not open")
	}

	m.Update(runes("2"))
	if m.sections.OpenSection() != touchkit.SectionSize {
		t.Errorf("open section = %q, want size", m.sections.OpenSection())
	}
	m.Update(runes("9"))
	if m.sections.OpenSection() != touchkit.SectionSize {
		t.Error("out of range digit changed sections")
	}

	m.Update(runes("m"))
	if m.menu.IsOpen() {
		t.Error("menu did not close")
	}
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := newTestModel()
	if got := m.watcher.Current().Class; got != touchkit.DeviceMobile {
		t.Errorf("80 columns = %v, want mobile", got)
	}
	m.Update(tea.WindowSizeMsg{Width: 200, Height: 50})
	if got := m.watcher.Current().Class; got != touchkit.DeviceDesktop {
		t.Errorf("200 columns = %v, want desktop", got)
	}
	if m.lines.Width != 200*cellWidth {
		t.Errorf("lines width = %v", m.lines.Width)
	}
}
