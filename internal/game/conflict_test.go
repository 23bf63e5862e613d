package game

import "testing"

func TestConflictSwingsAccumulate(t *testing.T) {
	c := NewConflictController()
	c.UpdateStatus(3)
	c.UpdateStatus(-5)

	if c.Value() != -2 {
		t.Fatalf("value = %d, want -2", c.Value())
	}
	if c.Terminal() != ConflictActive {
		t.Fatal("track unexpectedly terminal")
	}
}

func TestConflictTerminalIsSticky(t *testing.T) {
	c := NewConflictController()
	c.UpdateStatus(9)

	if c.Terminal() != ConflictAVictory {
		t.Fatalf("terminal = %d, want A victory", c.Terminal())
	}
	if c.Value() != 8 {
		t.Fatalf("value = %d, want clamp at 8", c.Value())
	}

	c.UpdateStatus(-20)
	if c.Terminal() != ConflictAVictory || c.Value() != 8 {
		t.Fatal("terminal track accepted a further swing")
	}
}

func TestConflictTerminalTowardB(t *testing.T) {
	c := NewConflictController()
	c.UpdateStatus(-9)
	if c.Terminal() != ConflictBVictory {
		t.Fatalf("terminal = %d, want B victory", c.Terminal())
	}
}

func TestConflictVictoryPointTiers(t *testing.T) {
	tests := []struct {
		value  int
		side   Side
		points int
	}{
		{0, SideA, 0},
		{1, SideA, 2},
		{2, SideA, 2},
		{3, SideA, 5},
		{5, SideA, 5},
		{6, SideA, 10},
		{8, SideA, 10},
		{4, SideB, 0},
		{-4, SideB, 5},
		{-4, SideA, 0},
		{-7, SideB, 10},
	}

	for _, tt := range tests {
		c := NewConflictController()
		c.UpdateStatus(tt.value)
		if got := c.VictoryPointsFor(tt.side); got != tt.points {
			t.Fatalf("value %d side %s: points = %d, want %d", tt.value, tt.side, got, tt.points)
		}
	}
}

func TestConflictTerminalAwardsNoPoints(t *testing.T) {
	c := NewConflictController()
	c.UpdateStatus(9)

	if c.VictoryPointsFor(SideA) != 0 || c.VictoryPointsFor(SideB) != 0 {
		t.Fatal("terminal track should award no end-game points")
	}
}
