package touchkit

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates, converted through ScreenToWorld like real input.
type syntheticPointerEvent struct {
	pointer          PointerID
	screenX, screenY float64
	pressed          bool
}

// InjectTouch queues a raw sample for pointer. The event is consumed on a
// later Update, one event per tick.
func (in *TouchInput) InjectTouch(pointer PointerID, x, y float64, pressed bool) {
	if !validPointer(pointer) {
		return
	}
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{
		pointer: pointer,
		screenX: x, screenY: y,
		pressed: pressed,
	})
}

// InjectPress queues a mouse-pointer press at the given screen coordinates.
func (in *TouchInput) InjectPress(x, y float64) {
	in.InjectTouch(MousePointer, x, y, true)
}

// InjectMove queues a mouse-pointer move with the button held down.
func (in *TouchInput) InjectMove(x, y float64) {
	in.InjectTouch(MousePointer, x, y, true)
}

// InjectRelease queues a mouse-pointer release.
func (in *TouchInput) InjectRelease(x, y float64) {
	in.InjectTouch(MousePointer, x, y, false)
}

// InjectSwipe queues a full gesture on pointer: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and release
// at (toX, toY). The final position is delivered as a move before the
// release so the recognizer sees it, so the sequence consumes frames+1
// ticks. Minimum frames is 2.
func (in *TouchInput) InjectSwipe(pointer PointerID, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectTouch(pointer, fromX, fromY, true)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		in.InjectTouch(pointer, x, y, true)
	}
	in.InjectTouch(pointer, toX, toY, true)
	in.InjectTouch(pointer, toX, toY, false)
}

// Pending returns the number of queued synthetic events.
func (in *TouchInput) Pending() int {
	return len(in.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed.
func (in *TouchInput) processInjectedInput() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	wx, wy := in.toWorld(evt.screenX, evt.screenY)
	in.processPointer(evt.pointer, wx, wy, evt.pressed)
	return true
}
