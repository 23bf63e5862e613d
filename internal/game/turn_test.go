package game

import "testing"

func TestTurnToggleAlternatesSides(t *testing.T) {
	turn := NewTurnController("p1", "p2", nil)

	if turn.Active() != SideA || turn.ActivePlayerID() != "p1" {
		t.Fatal("side A should open the game")
	}

	turn.Toggle()
	if turn.Active() != SideB || !turn.IsTurn("p2") {
		t.Fatal("toggle should hand the turn to side B")
	}

	turn.Toggle()
	if !turn.IsTurn("p1") {
		t.Fatal("second toggle should hand the turn back to side A")
	}
}

func TestTurnHookFiresOnSetAndToggle(t *testing.T) {
	fired := 0
	turn := NewTurnController("p1", "p2", func() { fired++ })

	turn.Reset()
	turn.Toggle()
	turn.Toggle()

	if fired != 3 {
		t.Fatalf("hook fired %d times, want 3", fired)
	}
}

func TestConfirmTurnTracksLiveState(t *testing.T) {
	turn := NewTurnController("p1", "p2", nil)
	confirm := turn.ConfirmTurn()

	if !confirm("p1") || confirm("p2") {
		t.Fatal("predicate should accept only the active player")
	}

	turn.Toggle()
	if confirm("p1") || !confirm("p2") {
		t.Fatal("predicate should follow the toggle, not snapshot it")
	}
}
