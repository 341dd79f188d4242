package vmath

import (
	"math"
	"testing"
)

func TestHitRequiresBoxAndDistance(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		r      float64
		want   bool
	}{
		{"centre", 0, 0, 35, true},
		{"inside circle", 20, 20, 35, true},
		{"box corner outside circle", 30, 30, 35, false},
		{"outside box", 36, 0, 35, false},
		{"on edge", 35, 0, 35, false},
		{"negative deltas", -10, -25, 35, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hit(tt.dx, tt.dy, tt.r); got != tt.want {
				t.Errorf("Hit(%v, %v, %v) = %v, want %v", tt.dx, tt.dy, tt.r, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 20, 580); got != 20 {
		t.Errorf("Clamp low = %v, want 20", got)
	}
	if got := Clamp(700, 20, 580); got != 580 {
		t.Errorf("Clamp high = %v, want 580", got)
	}
	if got := Clamp(300, 20, 580); got != 300 {
		t.Errorf("Clamp mid = %v, want 300", got)
	}
}

func TestWobble(t *testing.T) {
	if got := Wobble(0, 0.02, 2); got != 0 {
		t.Errorf("Wobble at y=0 = %v, want 0", got)
	}
	y := math.Pi / 2 / 0.02
	if got := Wobble(y, 0.02, 1.5); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("Wobble at peak = %v, want 1.5", got)
	}
}

func TestFastRandFloat64Range(t *testing.T) {
	r := NewFastRand(42)
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v outside [0,1)", v)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("zero seed must not produce a stuck generator")
	}
}

func TestRange(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		v := Range(r, 30, 570)
		if v < 30 || v >= 570 {
			t.Fatalf("Range = %v outside [30,570)", v)
		}
	}
}
