package world

import (
	"testing"

	"elite-scanner/backend/internal/scanner"
)

func TestSimulator_SpawnCountAndBounds(t *testing.T) {
	m := NewManager()
	sim := NewSimulator(m, 1000, SimulatorSettings{ContactCount: 20, Seed: 7})
	sim.Spawn(20)

	all := m.AllContacts()
	if len(all) != 20 {
		t.Fatalf("Expected 20 contacts, got %d", len(all))
	}
	for _, c := range all {
		if c.Position.Len() > 1000*1.2+1e-9 {
			t.Errorf("Contact %s spawned outside sphere: %v", c.ID, c.Position)
		}
		if c.Category == "" {
			t.Errorf("Contact %s has empty category", c.ID)
		}
	}
}

func TestSimulator_Deterministic(t *testing.T) {
	m1 := NewManager()
	m2 := NewManager()
	NewSimulator(m1, 500, SimulatorSettings{Seed: 42}).Spawn(10)
	NewSimulator(m2, 500, SimulatorSettings{Seed: 42}).Spawn(10)

	a := m1.AllContacts()
	b := m2.AllContacts()
	if len(a) != len(b) {
		t.Fatalf("Contact counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Contact %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSimulator_TickStaysWithinLimit(t *testing.T) {
	m := NewManager()
	sim := NewSimulator(m, 100, SimulatorSettings{Seed: 3, Jitter: 50})
	sim.Spawn(15)

	for i := 0; i < 200; i++ {
		sim.Tick()
	}

	limit := 100 * 1.5
	for _, c := range m.AllContacts() {
		for axis := 0; axis < 3; axis++ {
			if c.Position[axis] > limit || c.Position[axis] < -limit {
				t.Errorf("Contact %s escaped limit on axis %d: %v", c.ID, axis, c.Position)
			}
		}
	}
}

func TestSimulator_TickMovesContacts(t *testing.T) {
	m := NewManager()
	sim := NewSimulator(m, 1000, SimulatorSettings{Seed: 11})
	m.AddContact(scanner.TrackedObject{ID: "a"})

	before, _ := m.GetContact("a")
	sim.Tick()
	after, _ := m.GetContact("a")

	if before.Position == after.Position {
		t.Error("Expected tick to displace the contact")
	}
}
