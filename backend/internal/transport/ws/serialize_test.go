package ws

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"elite-scanner/backend/internal/scanner"
	"elite-scanner/backend/internal/theme"
)

func TestBuildFrame_ContactMapping(t *testing.T) {
	th := theme.Default()
	fs := NewFrameSerializer(th)
	sweep := scanner.NewSweep(12, 0.5)

	contacts := []scanner.ProjectedContact{
		{
			ID:                 "h1",
			Category:           scanner.CategoryHostile,
			DisplayPosition:    mgl64.Vec3{1.5, 0.7, -2.5},
			BasePosition:       mgl64.Vec3{1.5, 0, -2.5},
			NormalizedDistance: 0.6,
			IsAbove:            true,
		},
		{
			ID:       "f1",
			Category: scanner.CategoryFriendly,
			Selected: true,
		},
	}

	frame := fs.BuildFrame(contacts, sweep, time.Now())

	if frame.Type != MessageTypeFrame {
		t.Errorf("Expected type %s, got %s", MessageTypeFrame, frame.Type)
	}
	if len(frame.Contacts) != 2 {
		t.Fatalf("Expected 2 contacts, got %d", len(frame.Contacts))
	}

	hostile := frame.Contacts[0]
	if hostile.Color != th.Color(scanner.CategoryHostile) {
		t.Errorf("Expected hostile color %s, got %s", th.Color(scanner.CategoryHostile), hostile.Color)
	}
	if hostile.X != 1.5 || hostile.Y != 0.7 || hostile.Z != -2.5 {
		t.Errorf("Unexpected display position: (%v, %v, %v)", hostile.X, hostile.Y, hostile.Z)
	}
	if hostile.BaseX != 1.5 || hostile.BaseZ != -2.5 {
		t.Errorf("Unexpected base position: (%v, %v)", hostile.BaseX, hostile.BaseZ)
	}
	if hostile.Distance != 0.6 || !hostile.Above {
		t.Errorf("Unexpected distance/above: %v, %v", hostile.Distance, hostile.Above)
	}

	// Выделенный контакт получает цвет подсветки, а не цвет категории
	selected := frame.Contacts[1]
	if selected.Color != th.SelectedColor() {
		t.Errorf("Expected selected color %s, got %s", th.SelectedColor(), selected.Color)
	}
	if !selected.Selected {
		t.Error("Expected selected flag set")
	}
}

func TestBuildFrame_GuardsNonFiniteValues(t *testing.T) {
	fs := NewFrameSerializer(theme.Default())
	sweep := scanner.NewSweep(12, 0.5)

	contacts := []scanner.ProjectedContact{
		{
			ID:              "bad",
			Category:        scanner.CategoryNeutral,
			DisplayPosition: mgl64.Vec3{math.NaN(), math.Inf(1), 0},
		},
	}

	frame := fs.BuildFrame(contacts, sweep, time.Now())
	c := frame.Contacts[0]
	if c.X != 0 || c.Y != 0 {
		t.Errorf("Expected non-finite values replaced with 0, got (%v, %v)", c.X, c.Y)
	}
}

func TestBuildHello(t *testing.T) {
	fs := NewFrameSerializer(theme.Default())
	cfg := scanner.Config{
		MaxRange:            1500,
		DisplayRadius:       6,
		OrientationRelative: true,
		HeightScale:         0.5,
	}

	hello := fs.BuildHello(cfg)
	if hello.Type != MessageTypeHello {
		t.Errorf("Expected type %s, got %s", MessageTypeHello, hello.Type)
	}
	if hello.MaxRange != 1500 || hello.DisplayRadius != 6 || !hello.OrientationRelative {
		t.Errorf("Unexpected hello config: %+v", hello)
	}
	if len(hello.Palette) == 0 {
		t.Error("Expected palette in hello message")
	}
	if hello.ServerTime == 0 {
		t.Error("Expected ServerTime to be set, got 0")
	}
}
