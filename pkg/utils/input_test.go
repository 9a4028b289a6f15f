package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestAxisIntent(t *testing.T) {
	tests := []struct {
		name  string
		held  []Action
		wantX float64
		wantY float64
	}{
		{"idle", nil, 0, 0},
		{"up", []Action{ActionUp}, 0, -1},
		{"down right", []Action{ActionDown, ActionRight}, 1, 1},
		{"left up", []Action{ActionLeft, ActionUp}, -1, -1},
		{"opposite cancel", []Action{ActionLeft, ActionRight}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewScriptedInput()
			for _, a := range tt.held {
				in.Hold(a, true)
			}
			x, y := AxisIntent(in)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("AxisIntent() = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestScriptedInputPressLastsOneFrame(t *testing.T) {
	in := NewScriptedInput()
	in.Press(ActionFire)

	if !in.IsJustPressed(ActionFire) {
		t.Error("Fire should be just pressed in the current frame")
	}

	in.Advance()

	if in.IsJustPressed(ActionFire) {
		t.Error("Fire should be cleared after Advance")
	}
}

func TestDefaultKeyBindings(t *testing.T) {
	kb := NewKeyboardInput(nil)

	wantKeys := map[Action]ebiten.Key{
		ActionUp:      ebiten.KeyW,
		ActionDown:    ebiten.KeyS,
		ActionLeft:    ebiten.KeyA,
		ActionRight:   ebiten.KeyD,
		ActionFire:    ebiten.KeySpace,
		ActionConfirm: ebiten.KeyEnter,
	}
	for action, key := range wantKeys {
		found := false
		for _, k := range kb.Keys(action) {
			if k == key {
				found = true
			}
		}
		if !found {
			t.Errorf("Action %d should be bound to %v", action, key)
		}
	}
}
