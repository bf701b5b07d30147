package touchkit

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"
)

// --- Per-pointer state ---

type gestureSession struct {
	open       bool
	dispatched bool
	originX    float64
	originY    float64
	lastX      float64
	lastY      float64
	line       Line
}

// Recognizer turns pointer samples over a list of lines into swipe actions.
// A swipe fires at most once per continuous touch: leftward dispatches
// Line.Delete, rightward dispatches Line.Copy.
//
// All methods must be called from the same goroutine (the host's input or
// game loop). Nothing blocks and nothing returns an error; input that does
// not resolve to a line or a gesture is ignored.
type Recognizer struct {
	cfg      Config
	feedback Feedback
	sink     EventSink

	sessions [maxPointers]gestureSession
	primary  PointerID // pointer owning the session in single-pointer mode, -1 if none

	feedbackLeft time.Duration

	debug    bool
	debugOut io.Writer
}

// NewRecognizer creates a recognizer using cfg. Use DefaultConfig for the
// stock 50px threshold and 1s feedback duration.
func NewRecognizer(cfg Config) *Recognizer {
	return &Recognizer{
		cfg:      cfg,
		primary:  -1,
		debugOut: os.Stderr,
	}
}

// Config returns the recognizer's configuration.
func (r *Recognizer) Config() Config {
	return r.cfg
}

// SetFeedback sets the sink for "Line Deleted" / "Text Copied" messages.
// Nil disables feedback.
func (r *Recognizer) SetFeedback(f Feedback) {
	r.feedback = f
}

// SetEventSink sets the optional event bridge.
func (r *Recognizer) SetEventSink(sink EventSink) {
	r.sink = sink
}

// SetDebugMode enables or disables debug logging of session lifecycle.
func (r *Recognizer) SetDebugMode(enabled bool) {
	r.debug = enabled
}

// SetDebugOutput redirects debug logging. Defaults to os.Stderr.
func (r *Recognizer) SetDebugOutput(w io.Writer) {
	r.debugOut = w
}

func (r *Recognizer) debugf(format string, args ...any) {
	if !r.debug || r.debugOut == nil {
		return
	}
	_, _ = fmt.Fprintf(r.debugOut, "[touchkit] "+format+"\n", args...)
}

func validPointer(id PointerID) bool {
	return id >= 0 && id < maxPointers
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// TouchStart begins a session for pt.Pointer if resolver finds a line under
// the touch. A start on a pointer that already has a session closes the old
// one first. In single-pointer mode a start is ignored while another pointer
// owns a session.
func (r *Recognizer) TouchStart(pt TouchPoint, resolver Resolver) {
	if !validPointer(pt.Pointer) || !finite(pt.X, pt.Y) {
		return
	}
	s := &r.sessions[pt.Pointer]
	if s.open {
		r.debugf("pointer %d: start without end, closing previous session", pt.Pointer)
		r.close(pt.Pointer)
	}

	if !r.cfg.MultiPointer && r.primary >= 0 && r.primary != pt.Pointer {
		r.debugf("pointer %d: ignored, pointer %d owns the gesture", pt.Pointer, r.primary)
		return
	}

	if resolver == nil {
		return
	}
	line, ok := resolver.ResolveLine(pt)
	if !ok || line == nil {
		return
	}

	*s = gestureSession{
		open:    true,
		originX: pt.X,
		originY: pt.Y,
		lastX:   pt.X,
		lastY:   pt.Y,
		line:    line,
	}
	if !r.cfg.MultiPointer {
		r.primary = pt.Pointer
	}
	r.debugf("pointer %d: session opened at (%.1f, %.1f)", pt.Pointer, pt.X, pt.Y)
}

// TouchMove feeds a new sample for pt.Pointer. When horizontal displacement
// strictly dominates vertical displacement and exceeds the threshold, the
// session dispatches once.
func (r *Recognizer) TouchMove(pt TouchPoint) {
	if !validPointer(pt.Pointer) || !finite(pt.X, pt.Y) {
		return
	}
	s := &r.sessions[pt.Pointer]
	if !s.open || s.dispatched {
		return
	}
	s.lastX = pt.X
	s.lastY = pt.Y

	dx := s.originX - pt.X
	dy := s.originY - pt.Y
	action := classify(dx, dy, r.cfg.SwipeThreshold)
	if action == ActionNone {
		return
	}

	// Mark first so a callback that feeds more input cannot fire twice.
	// The event is captured before the callback, which may close or reopen
	// the session.
	s.dispatched = true
	event := SwipeEvent{
		Pointer: pt.Pointer,
		Action:  action,
		OriginX: s.originX,
		OriginY: s.originY,
		DeltaX:  dx,
		DeltaY:  dy,
		Line:    s.line,
	}
	r.debugf("pointer %d: %s (dx=%.1f dy=%.1f)", pt.Pointer, action, dx, dy)

	switch action {
	case ActionDelete:
		event.Line.Delete()
		r.showFeedback(r.cfg.Messages.Deleted)
	case ActionCopy:
		event.Line.Copy()
		r.showFeedback(r.cfg.Messages.Copied)
	}

	if r.sink != nil {
		r.sink.EmitSwipe(event)
	}
}

// classify maps a displacement (origin minus current) to an action.
// A tie between |dx| and |dy| is treated as scrolling, and a non-finite
// displacement never classifies.
func classify(dx, dy, threshold float64) Action {
	if !finite(dx, dy, threshold) {
		return ActionNone
	}
	adx := math.Abs(dx)
	if adx <= math.Abs(dy) || adx <= threshold {
		return ActionNone
	}
	if dx > 0 {
		return ActionDelete
	}
	return ActionCopy
}

// TouchEnd closes the session for pointer, dispatched or not.
func (r *Recognizer) TouchEnd(pointer PointerID) {
	if !validPointer(pointer) {
		return
	}
	r.close(pointer)
}

// Cancel abandons the session for pointer without dispatching. Hosts call
// this when the touch is taken over by something else (system gesture,
// orientation change).
func (r *Recognizer) Cancel(pointer PointerID) {
	if !validPointer(pointer) {
		return
	}
	if r.sessions[pointer].open {
		r.debugf("pointer %d: cancelled", pointer)
	}
	r.close(pointer)
}

// Reset abandons every open session. Pending feedback is left alone.
func (r *Recognizer) Reset() {
	for i := range r.sessions {
		r.close(PointerID(i))
	}
}

func (r *Recognizer) close(pointer PointerID) {
	s := &r.sessions[pointer]
	if s.open {
		r.debugf("pointer %d: session closed (dispatched=%v)", pointer, s.dispatched)
	}
	*s = gestureSession{}
	if r.primary == pointer {
		r.primary = -1
	}
}

// Active reports whether pointer has an open session that has not yet
// dispatched.
func (r *Recognizer) Active(pointer PointerID) bool {
	if !validPointer(pointer) {
		return false
	}
	s := &r.sessions[pointer]
	return s.open && !s.dispatched
}

// Offset returns how far pointer has moved from where its session began
// (current minus origin). Hosts use it to slide the line under the finger.
// Returns a zero vector when the pointer has no active session.
func (r *Recognizer) Offset(pointer PointerID) Vec2 {
	if !r.Active(pointer) {
		return Vec2{}
	}
	s := &r.sessions[pointer]
	return Vec2{X: s.lastX - s.originX, Y: s.lastY - s.originY}
}

// --- Feedback timing ---

func (r *Recognizer) showFeedback(text string) {
	if r.feedback == nil {
		return
	}
	r.feedback.ShowFeedback(text)
	r.feedbackLeft = r.cfg.FeedbackDuration
}

// Update advances the feedback timer by dt seconds and removes the message
// once the configured duration has elapsed. Call once per frame.
func (r *Recognizer) Update(dt float32) {
	if r.feedbackLeft <= 0 {
		return
	}
	r.feedbackLeft -= time.Duration(float64(dt) * float64(time.Second))
	if r.feedbackLeft <= 0 {
		r.feedbackLeft = 0
		if r.feedback != nil {
			r.feedback.ClearFeedback()
		}
	}
}

// FeedbackPending reports whether a message is currently shown and waiting
// to be removed.
func (r *Recognizer) FeedbackPending() bool {
	return r.feedbackLeft > 0
}
