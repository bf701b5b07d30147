package touchkit

// DeviceClass buckets a viewport width.
type DeviceClass uint8

const (
	DeviceDesktop    DeviceClass = iota // wider than the mobile breakpoint
	DeviceMobile                        // at or below the mobile breakpoint
	DeviceSmallPhone                    // at or below the small-phone breakpoint
)

func (c DeviceClass) String() string {
	switch c {
	case DeviceMobile:
		return "mobile"
	case DeviceSmallPhone:
		return "small-phone"
	default:
		return "desktop"
	}
}

// Viewport is a classified window size.
type Viewport struct {
	Width, Height int
	Class         DeviceClass
	Landscape     bool
}

// Mobile reports whether the mobile layout applies (mobile or small phone).
func (v Viewport) Mobile() bool {
	return v.Class != DeviceDesktop
}

// SwipeEnabled reports whether swipe actions should be wired for this
// viewport. Swipes only add shortcuts on touch-sized layouts; every action
// stays reachable through regular controls.
func (v Viewport) SwipeEnabled() bool {
	return v.Mobile()
}

// Classify buckets a window size using cfg's breakpoints. Breakpoints are
// inclusive: a width equal to the mobile breakpoint is mobile.
func Classify(width, height int, cfg Config) Viewport {
	v := Viewport{Width: width, Height: height, Landscape: width > height}
	switch {
	case width <= cfg.SmallPhoneBreakpoint:
		v.Class = DeviceSmallPhone
	case width <= cfg.MobileBreakpoint:
		v.Class = DeviceMobile
	default:
		v.Class = DeviceDesktop
	}
	return v
}

// ViewportWatcher re-classifies the window on every size report and notifies
// listeners only when the device class or orientation changes.
type ViewportWatcher struct {
	cfg       Config
	current   Viewport
	known     bool
	listeners []func(prev, next Viewport)
}

// NewViewportWatcher creates a watcher with no size reported yet.
func NewViewportWatcher(cfg Config) *ViewportWatcher {
	return &ViewportWatcher{cfg: cfg}
}

// OnChange registers fn to run when the class or orientation changes. The
// first reported size always counts as a change.
func (w *ViewportWatcher) OnChange(fn func(prev, next Viewport)) {
	w.listeners = append(w.listeners, fn)
}

// Current returns the last classified viewport.
func (w *ViewportWatcher) Current() Viewport {
	return w.current
}

// Resize reports a new window size. Returns true if listeners fired.
func (w *ViewportWatcher) Resize(width, height int) bool {
	next := Classify(width, height, w.cfg)
	prev := w.current
	changed := !w.known || prev.Class != next.Class || prev.Landscape != next.Landscape
	w.current = next
	w.known = true
	if !changed {
		return false
	}
	for _, fn := range w.listeners {
		fn(prev, next)
	}
	return true
}
