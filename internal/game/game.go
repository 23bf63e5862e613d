package game

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// scienceWinCount is the number of distinct science categories that ends the
// game instantly.
const scienceWinCount = 6

// Winner is the outcome of a finished match.
type Winner string

const (
	WinnerNone Winner = ""
	WinnerA    Winner = "A"
	WinnerB    Winner = "B"
	WinnerTie  Winner = "Tie"
)

// Seat identifies one player joining a match.
type Seat struct {
	ID   string
	Name string
}

// GameController composes the sub-controllers of one match and is the single
// source of truth for its state. It is a cooperative state machine: exactly
// one action mutates it at a time, serialization is the caller's concern.
type GameController struct {
	roomID   string
	playerA  *PlayerController
	playerB  *PlayerController
	turn     *TurnController
	conflict *ConflictController
	tokens   *ScienceTokenController
	deck     *DeckController
	stage    *StageController
	age      Age
	logger   *zap.Logger
}

// NewGameController creates a match for two seated players and sets up age
// one. A nil rng falls back to a time-seeded source; a nil logger is
// replaced with a no-op one.
func NewGameController(roomID string, seatA, seatB Seat, rng *rand.Rand, logger *zap.Logger) (*GameController, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	deck := NewDeckController(rng)
	g := &GameController{
		roomID:   roomID,
		playerA:  NewPlayerController(seatA.ID, seatA.Name, SideA),
		playerB:  NewPlayerController(seatB.ID, seatB.Name, SideB),
		turn:     NewTurnController(seatA.ID, seatB.ID, nil),
		conflict: NewConflictController(),
		tokens:   NewScienceTokenController(rng),
		deck:     deck,
		stage:    NewStageController(deck),
		logger:   logger,
	}

	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// RoomID returns the identity of the room owning this match.
func (g *GameController) RoomID() string {
	return g.roomID
}

// Age returns the age currently being played.
func (g *GameController) Age() Age {
	return g.age
}

// SetTurnChangedHook registers the one-shot notification fired whenever the
// turn changes hands.
func (g *GameController) SetTurnChangedHook(fn func()) {
	g.turn.SetTurnChangedHook(fn)
}

// IsTurn reports whether the given player is the active one.
func (g *GameController) IsTurn(playerID string) bool {
	return g.turn.IsTurn(playerID)
}

// Player returns the controller for the given player identity. Any unknown
// identity resolves to player B, mirroring the two-seat model.
func (g *GameController) Player(playerID string) *PlayerController {
	if playerID == g.playerA.ID() {
		return g.playerA
	}
	return g.playerB
}

// Opponent returns the controller for the other player.
func (g *GameController) Opponent(playerID string) *PlayerController {
	if playerID == g.playerB.ID() {
		return g.playerA
	}
	return g.playerB
}

// Reset transitions the match into age one: fresh deck and stage, balanced
// conflict track, newly revealed science tokens, side A to act.
func (g *GameController) Reset() error {
	g.age = Age1
	g.turn.Reset()
	g.conflict.Reset()
	if err := g.tokens.Reset(); err != nil {
		return err
	}
	if err := g.deck.Reset(g.age); err != nil {
		return err
	}
	if err := g.stage.Set(g.age); err != nil {
		return err
	}

	g.logger.Info("game reset",
		zap.String("room_id", g.roomID),
		zap.String("age", g.age.String()),
	)
	return nil
}

// NextAge regenerates the deck and stage for the following age. Advancing
// past the final age is an invariant failure: correct win-condition
// sequencing ends the match first.
func (g *GameController) NextAge() error {
	switch g.age {
	case Age1:
		g.age = Age2
	case Age2:
		g.age = Age3
	default:
		return invariant("no more ages after %s", g.age)
	}

	if err := g.deck.Reset(g.age); err != nil {
		return err
	}
	if err := g.stage.Set(g.age); err != nil {
		return err
	}

	g.logger.Info("advanced to next age",
		zap.String("room_id", g.roomID),
		zap.String("age", g.age.String()),
	)
	return nil
}

// Winner evaluates the win conditions in fixed precedence: a terminal
// conflict track, then six unique science categories, then end-of-game
// scoring once the final age's stage is empty. A tie is a valid outcome.
func (g *GameController) Winner() Winner {
	switch g.conflict.Terminal() {
	case ConflictAVictory:
		return WinnerA
	case ConflictBVictory:
		return WinnerB
	}

	if len(g.playerA.UniqueScienceTypes()) >= scienceWinCount {
		return WinnerA
	}
	if len(g.playerB.UniqueScienceTypes()) >= scienceWinCount {
		return WinnerB
	}

	if g.age == Age3 && g.stage.IsEmpty() {
		pointsA := g.playerA.VictoryPoints() + g.conflict.VictoryPointsFor(SideA)
		pointsB := g.playerB.VictoryPoints() + g.conflict.VictoryPointsFor(SideB)

		switch {
		case pointsA == pointsB:
			return WinnerTie
		case pointsA > pointsB:
			return WinnerA
		default:
			return WinnerB
		}
	}

	return WinnerNone
}

// OnCardClicked handles the acting player taking an exposed stage card.
// Acquisition is resolved in fixed precedence: free through a matching link
// symbol, then outright purchase, then trading through the opponent. On
// success the card moves to the player's holdings, its effect (if any) is
// dispatched, and the turn passes. The effect runs strictly after the
// transfer commits; an effect failure is reported but not rolled back.
func (g *GameController) OnCardClicked(cardID, playerID string) error {
	if !g.turn.IsTurn(playerID) {
		return &TurnViolationError{PlayerID: playerID}
	}

	card, ok := g.stage.GetCard(cardID)
	if !ok {
		return ruleViolation("CARD_NOT_FOUND", "cannot find that card")
	}
	if !g.stage.IsClickable(cardID) {
		return ruleViolation("CARD_NOT_CLICKABLE", "cannot click that card")
	}

	player := g.Player(playerID)
	opponent := g.Opponent(playerID)

	switch {
	case card.BuyWithLink != LinkNone && player.HasLinkSymbol(card.BuyWithLink):
		// Free through the link symbol.
	case player.CanAffordCard(card):
		player.ChargeCoins(card.CoinCost)
	case player.CanTradeForCard(card, opponent):
		player.ChargeCoins(card.CoinCost + player.TradingCostForCard(card, opponent))
	default:
		return ruleViolation("CANNOT_AFFORD", "cannot pay for that card")
	}

	if _, err := g.stage.Remove(cardID); err != nil {
		return err
	}
	player.AddCard(card)

	g.logger.Debug("card acquired",
		zap.String("room_id", g.roomID),
		zap.String("player_id", playerID),
		zap.String("card", card.Name),
	)

	var effectErr error
	if card.Effect != nil {
		if err := g.applyEffect(card, playerID); err != nil {
			effectErr = &EffectError{CardName: card.Name, Err: err}
			g.logger.Error("card effect failed",
				zap.String("room_id", g.roomID),
				zap.String("card", card.Name),
				zap.Error(err),
			)
		}
	}

	if g.stage.IsEmpty() && g.age != Age3 {
		if err := g.NextAge(); err != nil {
			return err
		}
	}

	g.turn.Toggle()

	return effectErr
}

// applyEffect dispatches a card's tagged purchase effect through the fixed
// effect table.
func (g *GameController) applyEffect(card Card, playerID string) error {
	switch card.Effect.Kind {
	case EffectArmyPoints:
		g.ProcessArmyPoints(playerID, card.Effect.ArmyPoints)
	case EffectResourceDiscount:
		g.ApplyResourceDiscount(playerID, card.Effect.Discounted)
	case EffectCoins:
		g.ProcessCoinCard(playerID, card.Effect.Coins)
	case EffectCoinsPerCardType:
		for _, cardType := range card.Effect.CardTypes {
			g.ProcessCoinsPerCardTypeCard(playerID, cardType, card.Effect.CoinsPerCardType)
		}
	case EffectCoinsPerWonder:
		g.ProcessCoinsPerWonderCard(playerID, card.Effect.CoinsPerWonder)
	default:
		return invariant("unknown effect kind %d", card.Effect.Kind)
	}
	return nil
}

// ProcessArmyPoints pushes the conflict track toward the purchaser's
// opponent and applies looting penalties to whoever the swing now
// disadvantages. Terminal tracks ignore the swing entirely.
func (g *GameController) ProcessArmyPoints(playerID string, points int) {
	player := g.Player(playerID)

	multiplier := 1
	if player.Side() == SideB {
		multiplier = -1
	}

	g.conflict.UpdateStatus(multiplier * points)

	if g.conflict.Terminal() == ConflictActive {
		value := g.conflict.Value()
		g.playerA.UpdateWarProgress(value)
		g.playerB.UpdateWarProgress(value)
	}
}

// ApplyResourceDiscount grants the purchaser a fixed one-coin trade rate for
// each listed resource.
func (g *GameController) ApplyResourceDiscount(playerID string, resources []Resource) {
	player := g.Player(playerID)
	for _, resource := range resources {
		player.ApplyResourceDiscount(resource, 1)
	}
}

// ProcessCoinCard grants the purchaser a flat number of coins.
func (g *GameController) ProcessCoinCard(playerID string, coins int) {
	g.Player(playerID).GiveCoins(coins)
}

// ProcessCoinsPerCardTypeCard grants coins per owned card of the given
// category.
func (g *GameController) ProcessCoinsPerCardTypeCard(playerID string, cardType CardType, coinsPer int) {
	player := g.Player(playerID)
	player.GiveCoins(player.CardTypeCount(cardType) * coinsPer)
}

// ProcessCoinsPerWonderCard grants coins per claimed wonder.
func (g *GameController) ProcessCoinsPerWonderCard(playerID string, coinsPer int) {
	player := g.Player(playerID)
	player.GiveCoins(len(player.WondersClaimed()) * coinsPer)
}
