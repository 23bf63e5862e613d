package game

import (
	"encoding/json"
	"fmt"
)

// GameView is the outbound state projection. It is recomputed fresh on every
// read, never mutated, and never carries a transport handle. Face-down cells
// expose only their age back, never the hidden card.
type GameView struct {
	RoomID            string         `json:"room_id"`
	InProgress        bool           `json:"in_progress"`
	PlayerA           *PlayerView    `json:"player_a"`
	PlayerB           *PlayerView    `json:"player_b"`
	Turn              string         `json:"turn"`
	Stage             [][]CellView   `json:"stage"`
	Conflict          ConflictStatus `json:"conflict"`
	ScienceTokenBoard []string       `json:"science_token_board"`
}

// PlayerView is the sanitized per-player projection.
type PlayerView struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Cards          []CardView `json:"cards"`
	Coins          int        `json:"coins"`
	ScienceTokens  []string   `json:"science_tokens"`
	Wonders        []Wonder   `json:"wonders"`
	WarPenaltyTier int        `json:"war_penalty_tier"`
}

// CardView is the projection of a face-up or owned card.
type CardView struct {
	UID           string   `json:"uid"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	CoinCost      int      `json:"coin_cost"`
	ResourceCost  []string `json:"resource_cost"`
	Produces      []string `json:"produces,omitempty"`
	Science       string   `json:"science,omitempty"`
	ProvidesLink  string   `json:"provides_link,omitempty"`
	BuyWithLink   string   `json:"buy_with_link,omitempty"`
	VictoryPoints int      `json:"victory_points"`
}

// CellView is the projection of one stage cell.
type CellView struct {
	Kind string    `json:"kind"`
	Card *CardView `json:"card,omitempty"`
	Back string    `json:"back,omitempty"`
}

const (
	cellKindFaceUp   = "FACE_UP"
	cellKindFaceDown = "FACE_DOWN"
	cellKindEmpty    = "EMPTY"
)

// ConflictStatus is the projection of the conflict track: the signed counter
// while active, a terminal marker string once decided.
type ConflictStatus struct {
	Terminal ConflictTerminal
	Value    int
}

const (
	conflictMarkerA = "A_FAVORED_TERMINAL"
	conflictMarkerB = "B_FAVORED_TERMINAL"
)

// MarshalJSON encodes the counter as a number while the track is active and
// as the terminal marker once it is not.
func (c ConflictStatus) MarshalJSON() ([]byte, error) {
	switch c.Terminal {
	case ConflictAVictory:
		return json.Marshal(conflictMarkerA)
	case ConflictBVictory:
		return json.Marshal(conflictMarkerB)
	default:
		return json.Marshal(c.Value)
	}
}

// UnmarshalJSON decodes either encoding.
func (c *ConflictStatus) UnmarshalJSON(data []byte) error {
	var marker string
	if err := json.Unmarshal(data, &marker); err == nil {
		switch marker {
		case conflictMarkerA:
			c.Terminal = ConflictAVictory
			return nil
		case conflictMarkerB:
			c.Terminal = ConflictBVictory
			return nil
		default:
			return fmt.Errorf("unknown conflict marker %q", marker)
		}
	}

	c.Terminal = ConflictActive
	return json.Unmarshal(data, &c.Value)
}

// State builds the current projection of the match.
func (g *GameController) State() GameView {
	return GameView{
		RoomID:     g.roomID,
		InProgress: g.Winner() == WinnerNone,
		PlayerA:    buildPlayerView(g.playerA),
		PlayerB:    buildPlayerView(g.playerB),
		Turn:       string(g.turn.Active()),
		Stage:      g.buildStageView(),
		Conflict: ConflictStatus{
			Terminal: g.conflict.Terminal(),
			Value:    g.conflict.Value(),
		},
		ScienceTokenBoard: tokenNames(g.tokens.Board()),
	}
}

func buildPlayerView(p *PlayerController) *PlayerView {
	if p == nil {
		return nil
	}

	cards := p.Cards()
	views := make([]CardView, len(cards))
	for i, card := range cards {
		views[i] = buildCardView(card)
	}

	return &PlayerView{
		ID:             p.ID(),
		Name:           p.Name(),
		Cards:          views,
		Coins:          p.Coins(),
		ScienceTokens:  tokenNames(p.ScienceTokens()),
		Wonders:        p.Wonders(),
		WarPenaltyTier: p.WarPenaltyTier(),
	}
}

func buildCardView(card Card) CardView {
	view := CardView{
		UID:           card.UID,
		Name:          card.Name,
		Type:          card.Type.String(),
		CoinCost:      card.CoinCost,
		ResourceCost:  resourceNamesOf(card.ResourceCost),
		Produces:      resourceNamesOf(card.Produces),
		ProvidesLink:  card.ProvidesLink.String(),
		BuyWithLink:   card.BuyWithLink.String(),
		VictoryPoints: card.VictoryPoints,
	}
	if card.Type == CardTypeGreenScience {
		view.Science = card.Science.String()
	}
	return view
}

func (g *GameController) buildStageView() [][]CellView {
	rows := make([][]CellView, len(g.stage.rows))
	for r, row := range g.stage.rows {
		cells := make([]CellView, len(row))
		for c, cl := range row {
			switch cl.kind {
			case CellFaceUp:
				card := buildCardView(cl.card)
				cells[c] = CellView{Kind: cellKindFaceUp, Card: &card}
			case CellFaceDown:
				cells[c] = CellView{Kind: cellKindFaceDown, Back: cl.card.Back.String()}
			default:
				cells[c] = CellView{Kind: cellKindEmpty}
			}
		}
		rows[r] = cells
	}
	return rows
}

func resourceNamesOf(resources []Resource) []string {
	if len(resources) == 0 {
		return nil
	}
	names := make([]string, len(resources))
	for i, resource := range resources {
		names[i] = resource.String()
	}
	return names
}

func tokenNames(tokens []ScienceToken) []string {
	names := make([]string, len(tokens))
	for i, token := range tokens {
		names[i] = token.String()
	}
	return names
}
