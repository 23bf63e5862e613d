package game

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestStateHidesFaceDownCards(t *testing.T) {
	g := newTestGame(t, 1)

	var hidden []Card
	for _, row := range g.stage.rows {
		for _, cl := range row {
			if cl.kind == CellFaceDown {
				hidden = append(hidden, cl.card)
			}
		}
	}
	if len(hidden) == 0 {
		t.Fatal("opening layout has no face-down cards")
	}

	raw, err := json.Marshal(g.State())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	encoded := string(raw)

	for _, card := range hidden {
		if strings.Contains(encoded, card.UID) {
			t.Fatalf("projection leaks hidden card %q", card.Name)
		}
	}
}

func TestStateFaceDownCellsCarryOnlyTheBack(t *testing.T) {
	g := newTestGame(t, 1)
	view := g.State()

	sawFaceDown := false
	for _, row := range view.Stage {
		for _, cl := range row {
			if cl.Kind != cellKindFaceDown {
				continue
			}
			sawFaceDown = true
			if cl.Card != nil {
				t.Fatal("face-down cell carries a card payload")
			}
			if cl.Back != "AGE_1" {
				t.Fatalf("face-down back = %q, want AGE_1", cl.Back)
			}
		}
	}
	if !sawFaceDown {
		t.Fatal("no face-down cells in the projection")
	}
}

func TestStateReflectsProgress(t *testing.T) {
	g := newTestGame(t, 1)

	view := g.State()
	if !view.InProgress {
		t.Fatal("fresh game not in progress")
	}
	if view.Turn != "A" {
		t.Fatalf("turn = %q, want A", view.Turn)
	}
	if view.PlayerA.Name != "Alice" || view.PlayerB.Name != "Bob" {
		t.Fatal("player names missing from the projection")
	}
	if len(view.ScienceTokenBoard) != 5 {
		t.Fatalf("token board size = %d, want 5", len(view.ScienceTokenBoard))
	}

	g.conflict.UpdateStatus(9)
	view = g.State()
	if view.InProgress {
		t.Fatal("terminal conflict still reported in progress")
	}
}

func TestConflictStatusEncoding(t *testing.T) {
	active, err := json.Marshal(ConflictStatus{Terminal: ConflictActive, Value: -3})
	if err != nil {
		t.Fatalf("marshal active: %v", err)
	}
	if string(active) != "-3" {
		t.Fatalf("active encoding = %s, want -3", active)
	}

	terminal, err := json.Marshal(ConflictStatus{Terminal: ConflictAVictory, Value: 8})
	if err != nil {
		t.Fatalf("marshal terminal: %v", err)
	}
	if string(terminal) != `"A_FAVORED_TERMINAL"` {
		t.Fatalf("terminal encoding = %s", terminal)
	}

	var decoded ConflictStatus
	if err := json.Unmarshal(terminal, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Terminal != ConflictAVictory {
		t.Fatalf("decoded terminal = %d, want A victory", decoded.Terminal)
	}
}
