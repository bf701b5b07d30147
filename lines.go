package touchkit

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// HitRect is a line row's axis-aligned hit area.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle. Edges count as
// inside.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// TextLine is one specimen line.
type TextLine struct {
	ID     uuid.UUID
	Text   string
	FontID string
	Size   float64

	bounds HitRect
}

// Bounds returns the line's hit area from the last layout.
func (l *TextLine) Bounds() HitRect {
	return l.bounds
}

// LineList is an ordered list of specimen lines stacked vertically. It
// implements Resolver so a Recognizer can swipe its rows.
type LineList struct {
	// Origin, Width and RowHeight define the layout. Call Layout after
	// changing them.
	Origin    Vec2
	Width     float64
	RowHeight float64

	// Clipboard receives Copy and CopyAll output. Nil disables copying.
	Clipboard Clipboard
	// OnChange, when set, fires after any mutation.
	OnChange func()
	// ErrorLog receives clipboard failures. Swipe actions have no error
	// path, so failures are reported here and otherwise ignored.
	ErrorLog io.Writer

	lines []*TextLine
}

// NewLineList creates an empty list with the given layout.
func NewLineList(origin Vec2, width, rowHeight float64) *LineList {
	return &LineList{Origin: origin, Width: width, RowHeight: rowHeight}
}

// Len returns the number of lines.
func (l *LineList) Len() int {
	return len(l.lines)
}

// Lines returns the lines in display order. The returned slice MUST NOT be mutated.
func (l *LineList) Lines() []*TextLine {
	return l.lines
}

// At returns the line at index i, or nil if out of range.
func (l *LineList) At(i int) *TextLine {
	if i < 0 || i >= len(l.lines) {
		return nil
	}
	return l.lines[i]
}

// Add appends a line and returns it.
func (l *LineList) Add(text, fontID string, size float64) *TextLine {
	line := &TextLine{ID: uuid.New(), Text: text, FontID: fontID, Size: size}
	l.lines = append(l.lines, line)
	l.Layout()
	l.changed()
	return line
}

// Remove deletes the line with the given id. Reports whether it existed.
func (l *LineList) Remove(id uuid.UUID) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	copy(l.lines[i:], l.lines[i+1:])
	l.lines[len(l.lines)-1] = nil
	l.lines = l.lines[:len(l.lines)-1]
	l.Layout()
	l.changed()
	return true
}

// Clear removes every line.
func (l *LineList) Clear() {
	if len(l.lines) == 0 {
		return
	}
	for i := range l.lines {
		l.lines[i] = nil
	}
	l.lines = l.lines[:0]
	l.changed()
}

// CopyLine writes the text of line id to the clipboard.
func (l *LineList) CopyLine(id uuid.UUID) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("touchkit: copy: no line %s", id)
	}
	return l.write(l.lines[i].Text)
}

// CopyAll writes every line's text, newline separated, to the clipboard.
func (l *LineList) CopyAll() error {
	texts := make([]string, len(l.lines))
	for i, line := range l.lines {
		texts[i] = line.Text
	}
	return l.write(strings.Join(texts, "\n"))
}

func (l *LineList) write(text string) error {
	if l.Clipboard == nil {
		return nil
	}
	if err := l.Clipboard.WriteText(text); err != nil {
		return fmt.Errorf("touchkit: clipboard write: %w", err)
	}
	return nil
}

// Layout recomputes each line's hit area: full width, one row per line.
func (l *LineList) Layout() {
	for i, line := range l.lines {
		line.bounds = HitRect{
			X:      l.Origin.X,
			Y:      l.Origin.Y + float64(i)*l.RowHeight,
			Width:  l.Width,
			Height: l.RowHeight,
		}
	}
}

// LineAt returns the line whose row contains (x, y).
func (l *LineList) LineAt(x, y float64) (*TextLine, bool) {
	// Rows share edges; walk backward so the lower row wins on a shared edge,
	// matching top-to-bottom paint order.
	for i := len(l.lines) - 1; i >= 0; i-- {
		if l.lines[i].bounds.Contains(x, y) {
			return l.lines[i], true
		}
	}
	return nil, false
}

// ResolveLine implements Resolver. The returned Line removes or copies the
// row the touch began on, even if rows shift before the swipe completes.
func (l *LineList) ResolveLine(pt TouchPoint) (Line, bool) {
	line, ok := l.LineAt(pt.X, pt.Y)
	if !ok {
		return nil, false
	}
	return lineActions{list: l, id: line.ID}, true
}

func (l *LineList) index(id uuid.UUID) int {
	for i, line := range l.lines {
		if line.ID == id {
			return i
		}
	}
	return -1
}

func (l *LineList) changed() {
	if l.OnChange != nil {
		l.OnChange()
	}
}

// lineActions binds swipe actions to one line by id.
type lineActions struct {
	list *LineList
	id   uuid.UUID
}

func (a lineActions) Delete() {
	a.list.Remove(a.id)
}

func (a lineActions) Copy() {
	if err := a.list.CopyLine(a.id); err != nil && a.list.ErrorLog != nil {
		_, _ = fmt.Fprintf(a.list.ErrorLog, "[touchkit] %v\n", err)
	}
}
