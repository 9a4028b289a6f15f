package components

import "testing"

func TestHealthComponent(t *testing.T) {
	h := &HealthComponent{Current: 50, Max: 100}
	if h.IsDead() {
		t.Error("50 HP should not be dead")
	}
	if h.Ratio() != 0.5 {
		t.Errorf("Ratio() = %f, want 0.5", h.Ratio())
	}

	h.Current = 0
	if !h.IsDead() {
		t.Error("0 HP should be dead")
	}

	empty := &HealthComponent{}
	if empty.Ratio() != 0 {
		t.Error("Ratio with zero max should be 0")
	}
}

func TestZoneContains(t *testing.T) {
	z := &ZoneComponent{CenterX: 400, CenterY: 300, CurrentRadius: 100}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 400, 300, true},
		{"on boundary", 500, 300, true},
		{"just outside", 500.01, 300, false},
		{"diagonal inside", 460, 360, true}, // 距离约 84.9
		{"diagonal outside", 480, 380, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := z.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
