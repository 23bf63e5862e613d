package game

// TurnController tracks which side is active and gates actions to that
// side's player.
type TurnController struct {
	turn      Side
	playerA   string
	playerB   string
	onTurnSet func()
}

// NewTurnController creates a controller for the two seat identities. The
// optional hook fires whenever the turn is set or toggled.
func NewTurnController(playerA, playerB string, onTurnSet func()) *TurnController {
	if onTurnSet == nil {
		onTurnSet = func() {}
	}
	return &TurnController{
		turn:      SideA,
		playerA:   playerA,
		playerB:   playerB,
		onTurnSet: onTurnSet,
	}
}

// SetTurnChangedHook replaces the turn-changed hook.
func (t *TurnController) SetTurnChangedHook(fn func()) {
	if fn == nil {
		fn = func() {}
	}
	t.onTurnSet = fn
}

// Reset hands the turn back to side A.
func (t *TurnController) Reset() {
	t.turn = SideA
	t.onTurnSet()
}

// Toggle flips the active side and fires the turn-changed hook.
func (t *TurnController) Toggle() {
	t.turn = t.turn.Other()
	t.onTurnSet()
}

// Active returns the active side.
func (t *TurnController) Active() Side {
	return t.turn
}

// ActivePlayerID returns the identity of the active side's player.
func (t *TurnController) ActivePlayerID() string {
	if t.turn == SideA {
		return t.playerA
	}
	return t.playerB
}

// IsTurn reports whether the given player is the active one.
func (t *TurnController) IsTurn(playerID string) bool {
	return t.ActivePlayerID() == playerID
}

// ConfirmTurn returns a predicate gating any pending action to the player
// who is active at the time the action arrives.
func (t *TurnController) ConfirmTurn() func(playerID string) bool {
	return func(playerID string) bool {
		return t.IsTurn(playerID)
	}
}
