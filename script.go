package touchkit

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action  string  `json:"action"`
	Pointer int     `json:"pointer,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for a gesture script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected touches across frames for automated gesture
// testing and demos. Attach to a TouchInput via SetScript.
//
// Supported actions: "press", "move", "release" (x, y, pointer),
// "swipe" (fromX, fromY, toX, toY, frames, pointer) and "wait" (frames).
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON gesture script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("touchkit: parse gesture script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("touchkit: parse gesture script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "press", "move", "release", "swipe", "wait":
		default:
			return nil, fmt.Errorf("touchkit: parse gesture script: step %d: unknown action %q", i, st.Action)
		}
		if !validPointer(PointerID(st.Pointer)) {
			return nil, fmt.Errorf("touchkit: parse gesture script: step %d: pointer %d out of range", i, st.Pointer)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches a script. Its steps are issued from Update before input
// is processed each frame.
func (in *TouchInput) SetScript(s *Script) {
	in.script = s
}

// Done reports whether all steps have been issued and their events consumed.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one frame.
func (s *Script) step(in *TouchInput) {
	if s.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(in.injectQueue) > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++
	p := PointerID(st.Pointer)

	switch st.Action {
	case "press", "move":
		in.InjectTouch(p, st.X, st.Y, true)
	case "release":
		in.InjectTouch(p, st.X, st.Y, false)
	case "swipe":
		in.InjectSwipe(p, st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
