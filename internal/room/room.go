package room

import (
	"errors"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openduel/duel-server-go/internal/game"
)

// Conn is the transport handle of a seated player. *websocket.Conn satisfies
// it; the rules engine never sees one.
type Conn interface {
	WriteJSON(v any) error
	Close() error
}

// Phase is the explicit lifecycle state of a room. Actions are gated on the
// phase instead of a registry of one-shot listeners.
type Phase int

const (
	PhaseAwaitingSeats Phase = iota
	PhaseAwaitingStart
	PhaseInProgress
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingSeats:
		return "AWAITING_SEATS"
	case PhaseAwaitingStart:
		return "AWAITING_START"
	case PhaseInProgress:
		return "IN_PROGRESS"
	case PhaseFinished:
		return "FINISHED"
	default:
		return "UNKNOWN"
	}
}

// ErrRoomFull is returned when a third player tries to join.
var ErrRoomFull = errors.New("room already has two players")

type seat struct {
	id   string
	name string
	conn Conn
}

// Controller owns one match session: two seats, the lifecycle phase, and the
// engine once the game starts. All access is serialized through one mutex so
// the engine itself stays single-threaded.
type Controller struct {
	id     string
	logger *zap.Logger

	mu      sync.Mutex
	phase   Phase
	playerA *seat
	playerB *seat
	match   *game.GameController

	// rng seeds the engine; nil means time-seeded. Set by tests.
	rng *rand.Rand
}

// NewController creates an empty room.
func NewController(id string, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		id:     id,
		logger: logger,
		phase:  PhaseAwaitingSeats,
	}
}

// ID returns the room identifier.
func (c *Controller) ID() string {
	return c.id
}

// Phase returns the room's lifecycle phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// PlayerCount returns the number of occupied seats.
func (c *Controller) PlayerCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	if c.playerA != nil {
		count++
	}
	if c.playerB != nil {
		count++
	}
	return count
}

// Join seats a player and broadcasts the updated room state. The returned
// identity tags every subsequent action from this connection.
func (c *Controller) Join(name string, conn Conn) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.playerA != nil && c.playerB != nil {
		return "", ErrRoomFull
	}

	player := &seat{id: uuid.NewString(), name: name, conn: conn}
	if c.playerA == nil {
		c.playerA = player
	} else {
		c.playerB = player
	}

	if c.playerA != nil && c.playerB != nil {
		c.phase = PhaseAwaitingStart
	}

	c.logger.Info("player joined room",
		zap.String("room_id", c.id),
		zap.String("player_id", player.id),
		zap.String("player_name", name),
		zap.String("phase", c.phase.String()),
	)

	c.broadcastStateLocked()
	return player.id, nil
}

// StartGame creates the engine and enters play. Both seats must be occupied
// and the room must not already be in progress.
func (c *Controller) StartGame(playerID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == PhaseInProgress {
		return &game.RuleViolationError{Code: "GAME_ALREADY_STARTED", Message: "the game has already started"}
	}
	if c.playerA == nil || c.playerB == nil {
		return &game.RuleViolationError{Code: "NOT_ENOUGH_PLAYERS", Message: "both seats must be occupied to start"}
	}

	match, err := game.NewGameController(
		c.id,
		game.Seat{ID: c.playerA.id, Name: c.playerA.name},
		game.Seat{ID: c.playerB.id, Name: c.playerB.name},
		c.rng,
		c.logger,
	)
	if err != nil {
		return err
	}

	c.match = match
	c.phase = PhaseInProgress

	c.logger.Info("game started",
		zap.String("room_id", c.id),
		zap.String("started_by", playerID),
	)

	c.broadcastStateLocked()
	return nil
}

// StageCardClicked routes a card click to the engine. On any outcome that
// changed state the projection is broadcast; rejections leave state alone
// and are only returned for unicast to the offender.
func (c *Controller) StageCardClicked(playerID, cardUID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseInProgress || c.match == nil {
		return &game.RuleViolationError{Code: "GAME_NOT_STARTED", Message: "the game has not started"}
	}

	err := c.match.OnCardClicked(cardUID, playerID)
	if err != nil && game.IsRuleViolation(err) {
		return err
	}

	// The purchase committed even when a later step failed; let both
	// players see it.
	if winner := c.match.Winner(); winner != game.WinnerNone {
		c.phase = PhaseFinished
		c.logger.Info("game finished",
			zap.String("room_id", c.id),
			zap.String("winner", string(winner)),
		)
	}

	c.broadcastStateLocked()
	return err
}

// Disconnect discards the match for both players and frees the seat. There
// are no resume semantics.
func (c *Controller) Disconnect(playerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.playerA != nil && c.playerA.id == playerID {
		c.playerA = nil
	} else if c.playerB != nil && c.playerB.id == playerID {
		c.playerB = nil
	} else {
		return
	}

	c.match = nil
	c.phase = PhaseAwaitingSeats

	c.logger.Info("player disconnected, match discarded",
		zap.String("room_id", c.id),
		zap.String("player_id", playerID),
	)

	c.broadcastStateLocked()
}

// State returns the current projection: the engine's once a game is running,
// a seats-only placeholder before that.
func (c *Controller) State() game.GameView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) stateLocked() game.GameView {
	if c.match != nil {
		return c.match.State()
	}

	view := game.GameView{
		RoomID:     c.id,
		InProgress: false,
		Turn:       string(game.SideA),
	}
	if c.playerA != nil {
		view.PlayerA = &game.PlayerView{Name: c.playerA.name}
	}
	if c.playerB != nil {
		view.PlayerB = &game.PlayerView{Name: c.playerB.name}
	}
	return view
}

func (c *Controller) broadcastStateLocked() {
	view := c.stateLocked()
	for _, player := range []*seat{c.playerA, c.playerB} {
		if player == nil || player.conn == nil {
			continue
		}
		if err := player.conn.WriteJSON(view); err != nil {
			c.logger.Warn("failed to send state",
				zap.String("room_id", c.id),
				zap.String("player_id", player.id),
				zap.Error(err),
			)
		}
	}
}
