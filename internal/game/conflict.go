package game

// conflictLimit bounds the track; a swing past it ends the game.
const conflictLimit = 8

// ConflictTerminal marks a track that has reached a military victory.
type ConflictTerminal int

const (
	ConflictActive ConflictTerminal = iota
	ConflictAVictory
	ConflictBVictory
)

// ConflictController is the shared military-balance counter. Positive values
// favor side A, negative favor side B. Once terminal it never changes again.
type ConflictController struct {
	value    int
	terminal ConflictTerminal
}

// NewConflictController creates a balanced track.
func NewConflictController() *ConflictController {
	return &ConflictController{}
}

// Reset returns the track to balance.
func (c *ConflictController) Reset() {
	c.value = 0
	c.terminal = ConflictActive
}

// Value returns the current counter. Meaningless once terminal.
func (c *ConflictController) Value() int {
	return c.value
}

// Terminal returns the track's terminal state, if any.
func (c *ConflictController) Terminal() ConflictTerminal {
	return c.terminal
}

// UpdateStatus applies a swing. A value beyond the limit snaps to the
// corresponding terminal marker; once terminal every further call is a
// no-op.
func (c *ConflictController) UpdateStatus(delta int) {
	if c.terminal != ConflictActive {
		return
	}

	c.value += delta
	if c.value > conflictLimit {
		c.terminal = ConflictAVictory
		c.value = conflictLimit
	} else if c.value < -conflictLimit {
		c.terminal = ConflictBVictory
		c.value = -conflictLimit
	}
}

// VictoryPointsFor returns the tiered end-game bonus for the given side: 10,
// 5 or 2 points at magnitude 6, 3 or 1 when the counter leans that side's
// way, and 0 once the track is terminal.
func (c *ConflictController) VictoryPointsFor(side Side) int {
	if c.terminal != ConflictActive {
		return 0
	}

	if (side == SideA && c.value <= 0) || (side == SideB && c.value >= 0) {
		return 0
	}

	magnitude := c.value
	if magnitude < 0 {
		magnitude = -magnitude
	}

	switch {
	case magnitude >= 6:
		return 10
	case magnitude >= 3:
		return 5
	case magnitude >= 1:
		return 2
	default:
		return 0
	}
}
