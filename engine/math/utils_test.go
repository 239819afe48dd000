package math

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name         string
		f, low, high float32
		want         float32
	}{
		{name: "below", f: -1, low: 0, high: 1, want: 0},
		{name: "inside", f: 0.25, low: 0, high: 1, want: 0.25},
		{name: "above", f: 2, low: 0, high: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.f, tt.low, tt.high); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.f, tt.low, tt.high, got, tt.want)
			}
		})
	}

	if got := Clamp(5, 1, 3); got != 3 {
		t.Errorf("Clamp(5, 1, 3) = %d, want 3", got)
	}
}

func TestClampColor(t *testing.T) {
	got := ClampColor(Vec4{X: -0.5, Y: 0.5, Z: 2, W: 1})
	want := Vec4{X: 0, Y: 0.5, Z: 1, W: 1}
	if got != want {
		t.Errorf("ClampColor() = %v, want %v", got, want)
	}
}
