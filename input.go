package touchkit

import "github.com/hajimehoshi/ebiten/v2"

// --- Per-pointer state ---

type pointerState struct {
	down  bool
	lastX float64
	lastY float64
}

// TouchInput polls Ebitengine mouse and touch input once per tick and feeds
// the samples to a Recognizer. Pointer 0 is the left mouse button; touch
// contacts are mapped to slots 1-9 in arrival order.
type TouchInput struct {
	rec      *Recognizer
	resolver Resolver

	// MouseEnabled lets the left mouse button act as a touch, for desktop
	// testing of the mobile layout. Defaults to true.
	MouseEnabled bool
	// ScreenToWorld, when set, converts screen coordinates before they reach
	// the resolver and recognizer.
	ScreenToWorld func(sx, sy float64) (float64, float64)

	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
	script       *Script
}

// NewTouchInput creates an input adapter feeding rec, resolving lines with
// resolver.
func NewTouchInput(rec *Recognizer, resolver Resolver) *TouchInput {
	return &TouchInput{rec: rec, resolver: resolver, MouseEnabled: true}
}

// SetResolver replaces the line resolver. Sessions already open keep the
// line they resolved at touch start.
func (in *TouchInput) SetResolver(resolver Resolver) {
	in.resolver = resolver
}

// Update processes one tick of input. Call from ebiten.Game.Update.
// Injected events take precedence over the real mouse for the tick they are
// consumed in.
func (in *TouchInput) Update() {
	if in.script != nil {
		in.script.step(in)
	}
	if !in.processInjectedInput() && in.MouseEnabled {
		in.processMousePointer()
	}
	in.processTouchPointers()
}

func (in *TouchInput) toWorld(sx, sy float64) (float64, float64) {
	if in.ScreenToWorld != nil {
		return in.ScreenToWorld(sx, sy)
	}
	return sx, sy
}

// processMousePointer handles mouse input (pointer 0).
func (in *TouchInput) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	wx, wy := in.toWorld(float64(mx), float64(my))
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.processPointer(MousePointer, wx, wy, pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (in *TouchInput) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		wx, wy := in.toWorld(float64(tx), float64(ty))
		in.processPointer(PointerID(slot), wx, wy, true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && !activeSlots[i] {
			ps := &in.pointers[i]
			if ps.down {
				in.processPointer(PointerID(i), ps.lastX, ps.lastY, false)
			}
			in.touchUsed[i] = false
			in.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (in *TouchInput) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the press/move/release edge detection for one pointer
// and forwards transitions to the recognizer.
func (in *TouchInput) processPointer(id PointerID, wx, wy float64, pressed bool) {
	ps := &in.pointers[id]
	pt := TouchPoint{Pointer: id, X: wx, Y: wy}

	switch {
	case pressed && !ps.down:
		ps.down = true
		in.rec.TouchStart(pt, in.resolver)
	case pressed && ps.down:
		if wx != ps.lastX || wy != ps.lastY {
			in.rec.TouchMove(pt)
		}
	case !pressed && ps.down:
		ps.down = false
		in.rec.TouchEnd(id)
	}
	ps.lastX = wx
	ps.lastY = wy
}

// Down reports whether pointer is currently pressed.
func (in *TouchInput) Down(pointer PointerID) bool {
	if !validPointer(pointer) {
		return false
	}
	return in.pointers[pointer].down
}
