package game

import (
	"errors"
	"math/rand"
	"testing"

	"go.uber.org/zap/zaptest"
)

func newTestGame(t *testing.T, seed int64) *GameController {
	t.Helper()

	g, err := NewGameController(
		"room-1",
		Seat{ID: "p1", Name: "Alice"},
		Seat{ID: "p2", Name: "Bob"},
		rand.New(rand.NewSource(seed)),
		zaptest.NewLogger(t),
	)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g
}

func TestNewGameSetsUpAgeOne(t *testing.T) {
	g := newTestGame(t, 1)

	if g.Age() != Age1 {
		t.Fatalf("age = %s, want AGE_1", g.Age())
	}
	if !g.IsTurn("p1") {
		t.Fatal("side A should open the game")
	}
	if g.Winner() != WinnerNone {
		t.Fatalf("winner = %q on a fresh game", g.Winner())
	}
	if g.stage.IsEmpty() {
		t.Fatal("stage empty after setup")
	}
}

func TestOnCardClickedRejectsOutOfTurn(t *testing.T) {
	g := newTestGame(t, 1)
	uid := clickableCards(g.stage)[0]

	err := g.OnCardClicked(uid, "p2")
	var tv *TurnViolationError
	if !errors.As(err, &tv) {
		t.Fatalf("expected turn violation, got %v", err)
	}
	if ErrorCode(err) != "NOT_YOUR_TURN" {
		t.Fatalf("error code = %q, want NOT_YOUR_TURN", ErrorCode(err))
	}
	if _, ok := g.stage.GetCard(uid); !ok {
		t.Fatal("rejected action mutated the stage")
	}
}

func TestOnCardClickedRejectsUnknownCard(t *testing.T) {
	g := newTestGame(t, 1)

	err := g.OnCardClicked("no-such-card", "p1")
	if ErrorCode(err) != "CARD_NOT_FOUND" {
		t.Fatalf("error code = %q, want CARD_NOT_FOUND", ErrorCode(err))
	}
}

func TestOnCardClickedRejectsCoveredCard(t *testing.T) {
	g := newTestGame(t, 1)

	var covered string
	for _, row := range g.stage.rows {
		for _, cl := range row {
			if cl.kind == CellFaceUp && !g.stage.IsClickable(cl.card.UID) {
				covered = cl.card.UID
			}
		}
	}
	if covered == "" {
		t.Fatal("no covered face-up card in the opening layout")
	}

	err := g.OnCardClicked(covered, "p1")
	if ErrorCode(err) != "CARD_NOT_CLICKABLE" {
		t.Fatalf("error code = %q, want CARD_NOT_CLICKABLE", ErrorCode(err))
	}
}

func TestOnCardClickedTransfersCardAndTogglesTurn(t *testing.T) {
	g := newTestGame(t, 1)
	uid := clickableCards(g.stage)[0]

	if err := g.OnCardClicked(uid, "p1"); err != nil {
		t.Fatalf("click: %v", err)
	}

	cards := g.Player("p1").Cards()
	if len(cards) != 1 || cards[0].UID != uid {
		t.Fatalf("player holdings = %v, want the clicked card", cards)
	}
	if _, ok := g.stage.GetCard(uid); ok {
		t.Fatal("acquired card still on the stage")
	}
	if !g.IsTurn("p2") {
		t.Fatal("turn did not pass to the opponent")
	}
}

// setSingleCardStage replaces the stage with one exposed card so age and
// win-condition transitions can be driven directly.
func setSingleCardStage(g *GameController, card Card) {
	g.stage.rows = [][]cell{{{kind: CellFaceUp, card: card}}}
}

func TestClearingStageAdvancesAge(t *testing.T) {
	g := newTestGame(t, 1)
	setSingleCardStage(g, Card{UID: "last", Name: "Last", Type: CardTypeBlueVictory})

	if err := g.OnCardClicked("last", "p1"); err != nil {
		t.Fatalf("click: %v", err)
	}

	if g.Age() != Age2 {
		t.Fatalf("age = %s, want AGE_2", g.Age())
	}
	if g.stage.IsEmpty() {
		t.Fatal("next age's stage not laid out")
	}
	if !g.IsTurn("p2") {
		t.Fatal("turn did not pass across the age boundary")
	}
}

func TestClearingFinalAgeEndsGame(t *testing.T) {
	g := newTestGame(t, 1)
	g.age = Age3
	setSingleCardStage(g, Card{UID: "last", Name: "Last", Type: CardTypeBlueVictory, VictoryPoints: 4})

	if err := g.OnCardClicked("last", "p1"); err != nil {
		t.Fatalf("click: %v", err)
	}

	if g.Age() != Age3 {
		t.Fatalf("age advanced past the final one: %s", g.Age())
	}
	if g.Winner() != WinnerA {
		t.Fatalf("winner = %q, want A", g.Winner())
	}
}

func TestWinnerTieOnEqualPoints(t *testing.T) {
	g := newTestGame(t, 1)
	g.age = Age3
	g.stage.rows = nil

	if g.Winner() != WinnerTie {
		t.Fatalf("winner = %q, want Tie for symmetric holdings", g.Winner())
	}
}

func TestConflictVictoryPrecedesScoring(t *testing.T) {
	g := newTestGame(t, 1)
	g.conflict.UpdateStatus(9)

	if g.Winner() != WinnerA {
		t.Fatalf("winner = %q, want A by military", g.Winner())
	}
}

func TestScienceVictoryAtSixCategories(t *testing.T) {
	g := newTestGame(t, 1)
	for _, science := range []ScienceType{
		ScienceWheel, ScienceMortar, ScienceQuill, ScienceGyroscope, ScienceSunDial,
	} {
		g.playerB.AddCard(Card{Type: CardTypeGreenScience, Science: science})
	}

	if g.Winner() != WinnerNone {
		t.Fatalf("winner = %q with five categories", g.Winner())
	}

	g.playerB.AddCard(Card{Type: CardTypeGreenScience, Science: SciencePendulum})
	if g.Winner() != WinnerB {
		t.Fatalf("winner = %q, want B by science", g.Winner())
	}
}

func TestArmyPointsSwingByPurchaserSide(t *testing.T) {
	g := newTestGame(t, 1)

	g.ProcessArmyPoints("p1", 2)
	if g.conflict.Value() != 2 {
		t.Fatalf("value = %d after side A swing, want 2", g.conflict.Value())
	}

	g.ProcessArmyPoints("p2", 3)
	if g.conflict.Value() != -1 {
		t.Fatalf("value = %d after side B swing, want -1", g.conflict.Value())
	}
}

func TestArmySwingTriggersLootingPenalty(t *testing.T) {
	g := newTestGame(t, 1)

	g.ProcessArmyPoints("p1", 3)

	if g.playerB.WarPenaltyTier() != 2 || g.playerB.Coins() != 5 {
		t.Fatalf("loser: tier=%d coins=%d, want 2 and 5",
			g.playerB.WarPenaltyTier(), g.playerB.Coins())
	}
	if g.playerA.WarPenaltyTier() != 0 || g.playerA.Coins() != 7 {
		t.Fatal("favored side was penalized")
	}
}

func TestArmySwingPastTerminalSkipsPenalties(t *testing.T) {
	g := newTestGame(t, 1)

	g.ProcessArmyPoints("p1", 9)

	if g.conflict.Terminal() != ConflictAVictory {
		t.Fatal("track not terminal")
	}
	if g.playerB.WarPenaltyTier() != 0 {
		t.Fatal("penalty applied on a game-ending swing")
	}
}

func TestCoinEffects(t *testing.T) {
	g := newTestGame(t, 1)

	g.ProcessCoinCard("p1", 4)
	if g.playerA.Coins() != 11 {
		t.Fatalf("coins = %d after flat grant, want 11", g.playerA.Coins())
	}

	g.playerA.AddCard(Card{Type: CardTypeYellowCommercial})
	g.playerA.AddCard(Card{Type: CardTypeYellowCommercial})
	g.ProcessCoinsPerCardTypeCard("p1", CardTypeYellowCommercial, 2)
	if g.playerA.Coins() != 15 {
		t.Fatalf("coins = %d after per-type grant, want 15", g.playerA.Coins())
	}
}

func TestResourceDiscountEffectFixesTradeRate(t *testing.T) {
	g := newTestGame(t, 1)

	g.ApplyResourceDiscount("p1", []Resource{ResourceStone, ResourceClay})

	card := Card{Name: "aqueduct", ResourceCost: []Resource{ResourceStone, ResourceClay}}
	if cost := g.playerA.TradingCostForCard(card, g.playerB); cost != 2 {
		t.Fatalf("trading cost = %d, want 2 with both rates fixed at 1", cost)
	}
}

func TestNextAgePastFinalFails(t *testing.T) {
	g := newTestGame(t, 1)

	if err := g.NextAge(); err != nil {
		t.Fatalf("to age two: %v", err)
	}
	if err := g.NextAge(); err != nil {
		t.Fatalf("to age three: %v", err)
	}

	err := g.NextAge()
	var inv *InvariantError
	if !errors.As(err, &inv) {
		t.Fatalf("expected invariant error, got %v", err)
	}
}
