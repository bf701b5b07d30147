package touchkit

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// PointerID identifies one input pointer. Pointer 0 is the mouse; touch
// contacts occupy slots 1 through maxPointers-1.
type PointerID int

const (
	maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

	// MousePointer is the pointer slot used for mouse input.
	MousePointer PointerID = 0
)

// Action is the outcome of a recognized swipe.
type Action uint8

const (
	ActionNone   Action = iota // no swipe recognized
	ActionDelete               // swipe left
	ActionCopy                 // swipe right
)

func (a Action) String() string {
	switch a {
	case ActionDelete:
		return "delete"
	case ActionCopy:
		return "copy"
	default:
		return "none"
	}
}

// TouchPoint is a single pointer sample in logical pixels. Target is the
// host's notion of what the pointer is over (a node, a row index, nil); the
// recognizer passes it through to the Resolver untouched.
type TouchPoint struct {
	Pointer PointerID
	X, Y    float64
	Target  any
}

// Line is the set of actions a swipe can trigger on a resolved line
// container. Implementations are supplied by the host.
type Line interface {
	Delete()
	Copy()
}

// LineFuncs adapts two plain functions to the Line interface. Nil fields are
// skipped.
type LineFuncs struct {
	OnDelete func()
	OnCopy   func()
}

// Delete calls OnDelete if set.
func (f LineFuncs) Delete() {
	if f.OnDelete != nil {
		f.OnDelete()
	}
}

// Copy calls OnCopy if set.
func (f LineFuncs) Copy() {
	if f.OnCopy != nil {
		f.OnCopy()
	}
}

// Resolver finds the line container enclosing a touch. It returns false when
// the touch is not over any line.
type Resolver interface {
	ResolveLine(pt TouchPoint) (Line, bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(pt TouchPoint) (Line, bool)

// ResolveLine calls f(pt).
func (f ResolverFunc) ResolveLine(pt TouchPoint) (Line, bool) {
	return f(pt)
}

// Feedback displays a short confirmation message. The recognizer decides
// when a message appears and when it is removed; rendering is up to the
// implementation.
type Feedback interface {
	ShowFeedback(text string)
	ClearFeedback()
}

// SwipeEvent describes one dispatched swipe.
type SwipeEvent struct {
	Pointer PointerID
	Action  Action
	OriginX float64
	OriginY float64
	// Displacement from origin to the sample that crossed the threshold,
	// measured as origin minus current (positive DeltaX = leftward).
	DeltaX float64
	DeltaY float64
	Line   Line
}

// EventSink is the interface for optional event forwarding. When set on a
// Recognizer, every dispatched swipe is also emitted here.
type EventSink interface {
	EmitSwipe(event SwipeEvent)
}
