package game

import (
	"math/rand"
	"testing"
)

func TestDeckResetSizePerAge(t *testing.T) {
	deck := NewDeckController(rand.New(rand.NewSource(1)))

	for _, age := range []Age{Age1, Age2, Age3} {
		if err := deck.Reset(age); err != nil {
			t.Fatalf("reset for %s: %v", age, err)
		}
		if deck.Size() != 20 {
			t.Fatalf("deck size for %s = %d, want 20", age, deck.Size())
		}
	}
}

func TestDeckAssignsUniqueIdentifiers(t *testing.T) {
	deck := NewDeckController(rand.New(rand.NewSource(1)))
	if err := deck.Reset(Age1); err != nil {
		t.Fatalf("reset: %v", err)
	}

	seen := make(map[string]bool)
	for deck.Size() > 0 {
		card, err := deck.Draw()
		if err != nil {
			t.Fatalf("draw: %v", err)
		}
		if card.UID == "" {
			t.Fatalf("card %q has no identifier", card.Name)
		}
		if seen[card.UID] {
			t.Fatalf("duplicate identifier %s", card.UID)
		}
		if card.Back != AgeBackOne {
			t.Fatalf("card %q has back %s, want AGE_1", card.Name, card.Back)
		}
		seen[card.UID] = true
	}
}

func TestDeckThreeGuildsInFinalAge(t *testing.T) {
	deck := NewDeckController(rand.New(rand.NewSource(7)))
	if err := deck.Reset(Age3); err != nil {
		t.Fatalf("reset: %v", err)
	}

	guilds := 0
	for deck.Size() > 0 {
		card, err := deck.Draw()
		if err != nil {
			t.Fatalf("draw: %v", err)
		}
		if card.Type == CardTypePurpleGuild {
			guilds++
		}
	}
	if guilds != 3 {
		t.Fatalf("final age deck holds %d guild cards, want 3", guilds)
	}
}

func TestDeckDrawFromEmptyFails(t *testing.T) {
	deck := NewDeckController(rand.New(rand.NewSource(1)))
	if err := deck.Reset(Age1); err != nil {
		t.Fatalf("reset: %v", err)
	}

	for deck.Size() > 0 {
		if _, err := deck.Draw(); err != nil {
			t.Fatalf("draw: %v", err)
		}
	}

	_, err := deck.Draw()
	if err == nil {
		t.Fatal("expected error drawing from an empty deck")
	}
	if _, ok := err.(*InvariantError); !ok {
		t.Fatalf("expected invariant error, got %T", err)
	}
}

func TestDeckShuffleIsSeedDeterministic(t *testing.T) {
	drawAll := func(seed int64) []string {
		deck := NewDeckController(rand.New(rand.NewSource(seed)))
		if err := deck.Reset(Age2); err != nil {
			t.Fatalf("reset: %v", err)
		}
		var names []string
		for deck.Size() > 0 {
			card, err := deck.Draw()
			if err != nil {
				t.Fatalf("draw: %v", err)
			}
			names = append(names, card.Name)
		}
		return names
	}

	first := drawAll(42)
	second := drawAll(42)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("draw %d differs: %s vs %s", i, first[i], second[i])
		}
	}
}
