package scanner

import (
	"math"
	"testing"
	"time"
)

func TestSweep_AngleFromElapsedTime(t *testing.T) {
	s := NewSweep(60, 0) // 60 RPM = один оборот в секунду

	quarter := s.start.Add(250 * time.Millisecond)
	if got := s.Angle(quarter); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Errorf("Expected quarter turn %v, got %v", math.Pi/2, got)
	}

	// Полный оборот возвращает угол к нулю
	full := s.start.Add(time.Second)
	if got := s.Angle(full); math.Abs(got) > 1e-9 {
		t.Errorf("Expected wrap to 0 after full turn, got %v", got)
	}
}

func TestSweep_AngleStaysInRange(t *testing.T) {
	s := NewSweep(47, 3)
	for i := 0; i < 500; i++ {
		now := s.start.Add(time.Duration(i) * 137 * time.Millisecond)
		if a := s.Angle(now); a < 0 || a >= 2*math.Pi {
			t.Fatalf("Sweep angle %v out of [0, 2π)", a)
		}
		if a := s.DisplayAngle(now); a < 0 || a >= 2*math.Pi {
			t.Fatalf("Display angle %v out of [0, 2π)", a)
		}
	}
}

func TestSweep_PulseBounded(t *testing.T) {
	s := NewSweep(12, 0.5)
	for i := 0; i < 200; i++ {
		now := s.start.Add(time.Duration(i) * 53 * time.Millisecond)
		if p := s.Pulse(now); p < 0 || p > 1 {
			t.Fatalf("Pulse %v out of [0,1]", p)
		}
	}
}

func TestSweep_DefaultsOnBadInput(t *testing.T) {
	s := NewSweep(0, -1)
	if s.sweepRPM != DefaultSweepRPM {
		t.Errorf("Expected default sweep RPM %v, got %v", DefaultSweepRPM, s.sweepRPM)
	}
	if s.displayRPM != DefaultDisplayRPM {
		t.Errorf("Expected default display RPM %v, got %v", DefaultDisplayRPM, s.displayRPM)
	}
}
