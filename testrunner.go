package wezzle

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences waits, manager pause/resume and screenshots across
// frames for automated visual checks. Attach it to a Scene via SetScript.
//
// Supported actions: "wait" (frames), "pause", "resume", "clear" and
// "screenshot" (label).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script such as
//
//	{"steps": [{"action": "wait", "frames": 30}, {"action": "screenshot", "label": "fade"}]}
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "wait", "pause", "resume", "clear", "screenshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
		if st.Frames < 0 {
			return nil, fmt.Errorf("parse script: step %d: negative frames", i)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScript attaches r to the scene. It steps once per Advance, before the
// animations run.
func (s *Scene) SetScript(r *ScriptRunner) {
	s.runner = r
}

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool {
	return r.done
}

func (r *ScriptRunner) step(s *Scene) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "pause":
		s.animations.SetPaused(true)
	case "resume":
		s.animations.SetPaused(false)
	case "clear":
		s.animations.Clear()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
