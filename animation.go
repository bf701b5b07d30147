package touchkit

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	toastFadeIn  = 0.15 // seconds
	snapBackTime = 0.2  // seconds
)

// Toast is a Feedback implementation that keeps the current message and a
// fade-in alpha for the host to draw. The Recognizer decides when the toast
// is cleared; Toast only animates its appearance.
//
// There is no global animation manager: call Update each frame.
type Toast struct {
	Text  string
	Alpha float64

	visible bool
	fade    *gween.Tween
}

// NewToast creates a hidden toast.
func NewToast() *Toast {
	return &Toast{}
}

// ShowFeedback replaces the current message and restarts the fade-in.
func (t *Toast) ShowFeedback(text string) {
	t.Text = text
	t.visible = true
	t.Alpha = 0
	t.fade = gween.New(0, 1, toastFadeIn, ease.OutQuad)
}

// ClearFeedback hides the toast immediately.
func (t *Toast) ClearFeedback() {
	t.Text = ""
	t.visible = false
	t.Alpha = 0
	t.fade = nil
}

// Visible reports whether a message is showing.
func (t *Toast) Visible() bool {
	return t.visible
}

// Update advances the fade-in by dt seconds.
func (t *Toast) Update(dt float32) {
	if t.fade == nil {
		return
	}
	val, finished := t.fade.Update(dt)
	t.Alpha = float64(val)
	if finished {
		t.fade = nil
	}
}

// SnapBack eases a line's horizontal offset back to zero after a touch ends
// without dispatching.
type SnapBack struct {
	X    float64
	Done bool

	tween *gween.Tween
}

// NewSnapBack starts a snap-back from offset x.
func NewSnapBack(x float64) *SnapBack {
	if x == 0 {
		return &SnapBack{Done: true}
	}
	return &SnapBack{
		X:     x,
		tween: gween.New(float32(x), 0, snapBackTime, ease.OutCubic),
	}
}

// Update advances the snap-back by dt seconds.
func (s *SnapBack) Update(dt float32) {
	if s.Done {
		return
	}
	val, finished := s.tween.Update(dt)
	s.X = float64(val)
	if finished {
		s.X = 0
		s.Done = true
	}
}
