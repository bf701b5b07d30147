package touchkit

import (
	"strings"
	"testing"
)

func TestLoadScript(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps":[
		{"action":"swipe","fromX":100,"fromY":50,"toX":40,"toY":52,"frames":3},
		{"action":"wait","frames":2},
		{"action":"press","pointer":2,"x":10,"y":10},
		{"action":"release","pointer":2,"x":10,"y":10}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if len(s.steps) != 4 {
		t.Errorf("steps = %d, want 4", len(s.steps))
	}
}

func TestLoadScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"malformed", `{"steps":`, "parse gesture script"},
		{"empty", `{"steps":[]}`, "no steps"},
		{"unknown action", `{"steps":[{"action":"pinch"}]}`, `unknown action "pinch"`},
		{"bad pointer", `{"steps":[{"action":"press","pointer":12}]}`, "pointer 12 out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.json))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadScript error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestScript_Replay(t *testing.T) {
	r := NewRecognizer(DefaultConfig())
	toast := NewToast()
	r.SetFeedback(toast)
	l, clip := newSpecimen()
	in := NewTouchInput(r, l)

	// Delete row 0, then copy what becomes row 0, then a vertical scroll.
	s, err := LoadScript([]byte(`{"steps":[
		{"action":"swipe","pointer":1,"fromX":300,"fromY":110,"toX":200,"toY":112,"frames":4},
		{"action":"wait","frames":3},
		{"action":"press","pointer":1,"x":20,"y":120},
		{"action":"move","pointer":1,"x":60,"y":121},
		{"action":"move","pointer":1,"x":95,"y":119},
		{"action":"release","pointer":1,"x":95,"y":119},
		{"action":"swipe","pointer":1,"fromX":40,"fromY":110,"toX":70,"toY":200,"frames":5}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	in.SetScript(s)

	for i := 0; i < 200 && !s.Done(); i++ {
		tick(in)
		r.Update(1.0 / 60)
	}
	if !s.Done() {
		t.Fatal("script did not finish")
	}

	if l.Len() != 2 {
		t.Errorf("Len = %d, want 2", l.Len())
	}
	if clip.Text != "The quick brown fox" {
		t.Errorf("clipboard = %q, want second line text", clip.Text)
	}
	if clip.Writes != 1 {
		t.Errorf("clipboard writes = %d, want 1", clip.Writes)
	}
	if toast.Text != "Text Copied" {
		t.Errorf("toast = %q, want last confirmation", toast.Text)
	}
}
