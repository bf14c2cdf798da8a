package heart

import (
	"math"
	"testing"
)

func TestDisintegrationAmountKeyPoints(t *testing.T) {
	tests := []struct {
		progress, want float64
	}{
		{0, 0},
		{0.25, 0},
		{0.5, 0},
		{0.6, 0.5},
		{0.7, 1},
		{0.75, 1},
		{0.8, 1},
		{0.9, 0.5},
	}
	for _, tt := range tests {
		if got := DisintegrationAmount(tt.progress); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DisintegrationAmount(%v) = %v, want %v", tt.progress, got, tt.want)
		}
	}
	if got := DisintegrationAmount(1 - 1e-9); got > 1e-6 {
		t.Errorf("amount near 1.0 = %v, want -> 0", got)
	}
}

func TestDisintegrationAmountShape(t *testing.T) {
	const steps = 10000
	prev := DisintegrationAmount(0)
	for i := 1; i < steps; i++ {
		p := float64(i) / steps
		a := DisintegrationAmount(p)
		if a < 0 || a > 1 {
			t.Fatalf("amount(%v) = %v out of [0,1]", p, a)
		}
		// continuity: bounded slope of 1/0.2 per unit progress
		if math.Abs(a-prev) > 5.0/steps+1e-9 {
			t.Fatalf("discontinuity at %v: %v -> %v", p, prev, a)
		}
		switch {
		case p > 0.5 && p < 0.7:
			if a < prev {
				t.Fatalf("break ramp decreasing at %v", p)
			}
		case p > 0.7 && p < 0.8:
			if a != 1 {
				t.Fatalf("hold phase amount(%v) = %v", p, a)
			}
		case p > 0.8:
			if a > prev {
				t.Fatalf("return ramp increasing at %v", p)
			}
		}
		prev = a
	}
}

func TestEasedDisintegrationBounds(t *testing.T) {
	for i := 0; i <= 100; i++ {
		p := float64(i) / 101
		e := EasedDisintegration(p)
		if e < 0 || e > 1 {
			t.Fatalf("eased(%v) = %v", p, e)
		}
	}
	if got := EasedDisintegration(0.6); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("eased(0.6) = %v, want 0.5", got)
	}
}

func TestCycleProgressRangeAndOffset(t *testing.T) {
	const total = 8
	for step := 0; step < 2000; step++ {
		tm := float64(step) * 0.02
		for i := 0; i < total; i++ {
			p := CycleProgress(tm, i, total)
			if p < 0 || p >= 1 {
				t.Fatalf("progress(%v, %d) = %v", tm, i, p)
			}
		}
	}
	// last particle leads the first by (7/8)*6 time units of cycle
	p0 := CycleProgress(0, 0, total)
	p7 := CycleProgress(0, 7, total)
	if want := 7.0 / 8 * 6 / 12; math.Abs(p7-p0-want) > 1e-12 {
		t.Errorf("phase spread = %v, want %v", p7-p0, want)
	}
}

func TestPulseRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		tm := float64(i) * 0.013
		p := Pulse(tm)
		if p < 0.92-1e-12 || p > 1.08+1e-12 {
			t.Fatalf("Pulse(%v) = %v", tm, p)
		}
		m := PulseMix(tm)
		if m < 0 || m > 1 {
			t.Fatalf("PulseMix(%v) = %v", tm, m)
		}
	}
}
